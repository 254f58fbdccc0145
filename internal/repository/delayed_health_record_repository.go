package repository

import (
	"context"

	"healthcare-portal/internal/domain/entity"
	domainRepo "healthcare-portal/internal/domain/repository"
	"healthcare-portal/pkg/latency"
)

// delayedHealthRecordRepository waits on a latency strategy before every
// operation, modelling the round-trip of a remote database.
type delayedHealthRecordRepository struct {
	next    domainRepo.HealthRecordRepository
	latency latency.Strategy
}

func NewDelayedHealthRecordRepository(next domainRepo.HealthRecordRepository, strategy latency.Strategy) domainRepo.HealthRecordRepository {
	if strategy == nil {
		strategy = latency.None()
	}
	return &delayedHealthRecordRepository{next: next, latency: strategy}
}

func (r *delayedHealthRecordRepository) Create(ctx context.Context, record *entity.HealthRecord) error {
	r.latency.Wait()
	return r.next.Create(ctx, record)
}

func (r *delayedHealthRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.HealthRecord, error) {
	r.latency.Wait()
	return r.next.FindByPatientID(ctx, patientID)
}

func (r *delayedHealthRecordRepository) FindAll(ctx context.Context) ([]entity.HealthRecord, error) {
	r.latency.Wait()
	return r.next.FindAll(ctx)
}

func (r *delayedHealthRecordRepository) Update(ctx context.Context, id string, update entity.RecordUpdate) (*entity.HealthRecord, error) {
	r.latency.Wait()
	return r.next.Update(ctx, id, update)
}
