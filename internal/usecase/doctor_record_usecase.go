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

var (
	ErrRecordNotFound      = errors.New("health record not found")
	ErrEmptyPrescription   = errors.New("prescription is required")
	ErrInvalidStatusFilter = errors.New("status must be pending, responded or all")
)

// Status filters accepted by GetRecords
const (
	FilterPending   = "pending"
	FilterResponded = "responded"
	FilterAll       = "all"
)

type DoctorRecordUsecase interface {
	GetRecords(ctx context.Context, filter *dto.RecordFilter) (*dto.HealthRecordListResponse, error)
	RespondToRecord(ctx context.Context, recordID string, req *dto.RespondRecordRequest) (*dto.HealthRecordResponse, error)
}

type doctorRecordUsecase struct {
	log          *logrus.Logger
	recordRepo   repository.HealthRecordRepository
	eventService service.EventService
}

func NewDoctorRecordUsecase(
	log *logrus.Logger,
	recordRepo repository.HealthRecordRepository,
	eventService service.EventService,
) DoctorRecordUsecase {
	return &doctorRecordUsecase{
		log:          log,
		recordRepo:   recordRepo,
		eventService: eventService,
	}
}

// GetRecords lists every patient's records matching the status filter, newest first.
// PendingCount counts pending records across the whole store, whatever the filter.
func (u *doctorRecordUsecase) GetRecords(ctx context.Context, filter *dto.RecordFilter) (*dto.HealthRecordListResponse, error) {
	if _, err := callerWithType(ctx, entity.UserTypeDoctor); err != nil {
		return nil, err
	}

	status := FilterPending
	if filter != nil && filter.Status != "" {
		status = filter.Status
	}
	if status != FilterPending && status != FilterResponded && status != FilterAll {
		return nil, ErrInvalidStatusFilter
	}

	records, err := u.recordRepo.FindAll(ctx)
	if err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to find health records: %+v", err)
		return nil, err
	}

	pending := countPending(records)

	if status != FilterAll {
		filtered := make([]entity.HealthRecord, 0, len(records))
		for _, record := range records {
			if string(record.Status) == status {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	sortByDateDesc(records)

	return converter.HealthRecordsToListResponse(records, pending), nil
}

// RespondToRecord attaches the logged-in doctor's prescription and marks the record responded
func (u *doctorRecordUsecase) RespondToRecord(ctx context.Context, recordID string, req *dto.RespondRecordRequest) (*dto.HealthRecordResponse, error) {
	doctor, err := callerWithType(ctx, entity.UserTypeDoctor)
	if err != nil {
		return nil, err
	}

	prescription := strings.TrimSpace(req.Prescription)
	if prescription == "" {
		return nil, ErrEmptyPrescription
	}

	record, err := u.recordRepo.Update(ctx, recordID, entity.RecordUpdate{
		Prescription: prescription,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		Status:       entity.RecordStatusResponded,
	})
	if err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to update health record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	u.eventService.RecordResponded(ctx, record)

	return converter.HealthRecordToResponse(record), nil
}
