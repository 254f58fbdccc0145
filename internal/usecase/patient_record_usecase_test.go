package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/delivery/http/middleware"
	"healthcare-portal/internal/domain/entity"
	domainRepo "healthcare-portal/internal/domain/repository"
	"healthcare-portal/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRecordUsecase_SubmitRecord(t *testing.T) {
	events := &fakeEventService{}
	now := time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)
	repo := repository.NewMemoryHealthRecordRepository(func() time.Time { return now }, repository.DemoHealthRecords()...)
	uc := NewPatientRecordUsecase(newTestLogger(), repo, events)

	resp, err := uc.SubmitRecord(asUser(demoPatient), &dto.CreateHealthRecordRequest{Problem: "  Back pain  "})
	require.NoError(t, err)

	assert.Equal(t, "3", resp.ID)
	assert.Equal(t, "2", resp.PatientID)
	assert.Equal(t, "John Doe", resp.PatientName)
	assert.Equal(t, "Back pain", resp.Problem)
	assert.Equal(t, "2024-06-01", resp.DateSubmitted)
	assert.Equal(t, "pending", resp.Status)
	assert.Empty(t, resp.Prescription)

	require.Len(t, events.created, 1)
	assert.Equal(t, "3", events.created[0].ID)
}

func TestPatientRecordUsecase_SubmitRecordRejects(t *testing.T) {
	events := &fakeEventService{}
	repo := repository.NewMemoryHealthRecordRepository(nil)
	uc := NewPatientRecordUsecase(newTestLogger(), repo, events)

	_, err := uc.SubmitRecord(asUser(demoPatient), &dto.CreateHealthRecordRequest{Problem: "   "})
	assert.ErrorIs(t, err, ErrEmptyProblem)

	_, err = uc.SubmitRecord(asUser(demoDoctor), &dto.CreateHealthRecordRequest{Problem: "x"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.SubmitRecord(context.Background(), &dto.CreateHealthRecordRequest{Problem: "x"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, events.created)
}

func TestPatientRecordUsecase_GetMyRecordsSortedNewestFirst(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	seed := []entity.HealthRecord{
		{ID: "1", PatientID: "2", PatientName: "John Doe", Problem: "a", DateSubmitted: day(5), Status: entity.RecordStatusPending},
		{ID: "2", PatientID: "9", PatientName: "Other", Problem: "b", DateSubmitted: day(9), Status: entity.RecordStatusPending},
		{ID: "3", PatientID: "2", PatientName: "John Doe", Problem: "c", DateSubmitted: day(7), Status: entity.RecordStatusResponded, Prescription: "rest", DoctorID: "1", DoctorName: "Dr. Smith"},
		{ID: "4", PatientID: "2", PatientName: "John Doe", Problem: "d", DateSubmitted: day(5), Status: entity.RecordStatusPending},
	}
	repo := repository.NewMemoryHealthRecordRepository(nil, seed...)
	uc := NewPatientRecordUsecase(newTestLogger(), repo, &fakeEventService{})

	resp, err := uc.GetMyRecords(asUser(demoPatient))
	require.NoError(t, err)

	ids := make([]string, len(resp.Records))
	for i, r := range resp.Records {
		ids[i] = r.ID
	}
	// ties on day 5 keep insertion order
	assert.Equal(t, []string{"3", "1", "4"}, ids)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.PendingCount)
}

func TestPatientRecordUsecase_GetMyRecordsEmpty(t *testing.T) {
	repo := repository.NewMemoryHealthRecordRepository(nil, repository.DemoHealthRecords()...)
	uc := NewPatientRecordUsecase(newTestLogger(), repo, &fakeEventService{})

	stranger := &entity.User{ID: "7", Name: "New Patient", UserType: entity.UserTypePatient}
	resp, err := uc.GetMyRecords(asUser(stranger))
	require.NoError(t, err)
	assert.Empty(t, resp.Records)
	assert.Equal(t, 0, resp.Total)
}

type failingRecordRepository struct {
	domainRepo.HealthRecordRepository
	err error
}

func (f failingRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.HealthRecord, error) {
	return nil, f.err
}

func TestPatientRecordUsecase_StoreFailureLogsRequestID(t *testing.T) {
	storeErr := errors.New("connection refused")
	logs := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(logs)

	uc := NewPatientRecordUsecase(log, failingRecordRepository{err: storeErr}, &fakeEventService{})
	ctx := context.WithValue(asUser(demoPatient), middleware.RequestIDKey, "req-1")

	_, err := uc.GetMyRecords(ctx)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, logs.String(), "request_id=req-1")
	assert.Contains(t, logs.String(), "connection refused")
}
