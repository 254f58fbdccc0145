package usecase

import (
	"context"
	"errors"
	"strings"

	"healthcare-portal/internal/converter"
	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/domain/entity"
	"healthcare-portal/internal/domain/repository"
	"healthcare-portal/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrEmptyProblem = errors.New("problem description is required")

type PatientRecordUsecase interface {
	SubmitRecord(ctx context.Context, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	GetMyRecords(ctx context.Context) (*dto.HealthRecordListResponse, error)
}

type patientRecordUsecase struct {
	log          *logrus.Logger
	recordRepo   repository.HealthRecordRepository
	eventService service.EventService
}

func NewPatientRecordUsecase(
	log *logrus.Logger,
	recordRepo repository.HealthRecordRepository,
	eventService service.EventService,
) PatientRecordUsecase {
	return &patientRecordUsecase{
		log:          log,
		recordRepo:   recordRepo,
		eventService: eventService,
	}
}

// SubmitRecord stores a new pending record for the logged-in patient
func (u *patientRecordUsecase) SubmitRecord(ctx context.Context, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	patient, err := callerWithType(ctx, entity.UserTypePatient)
	if err != nil {
		return nil, err
	}

	problem := strings.TrimSpace(req.Problem)
	if problem == "" {
		return nil, ErrEmptyProblem
	}

	record := &entity.HealthRecord{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Problem:     problem,
	}
	if err := u.recordRepo.Create(ctx, record); err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to create health record for patient %s: %+v", patient.ID, err)
		return nil, err
	}

	u.eventService.RecordCreated(ctx, record)

	return converter.HealthRecordToResponse(record), nil
}

// GetMyRecords returns the logged-in patient's records, newest first
func (u *patientRecordUsecase) GetMyRecords(ctx context.Context) (*dto.HealthRecordListResponse, error) {
	patient, err := callerWithType(ctx, entity.UserTypePatient)
	if err != nil {
		return nil, err
	}

	records, err := u.recordRepo.FindByPatientID(ctx, patient.ID)
	if err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to find health records for patient %s: %+v", patient.ID, err)
		return nil, err
	}

	sortByDateDesc(records)

	return converter.HealthRecordsToListResponse(records, countPending(records)), nil
}
