package repository

import (
	"context"

	"healthcare-portal/internal/domain/entity"
)

// HealthRecordRepository is the record store. Records are never deleted and
// are returned in insertion order.
type HealthRecordRepository interface {
	// Create assigns ID, DateSubmitted and the pending status to record before storing it.
	Create(ctx context.Context, record *entity.HealthRecord) error
	FindByPatientID(ctx context.Context, patientID string) ([]entity.HealthRecord, error)
	FindAll(ctx context.Context) ([]entity.HealthRecord, error)
	// Update returns nil, nil when no record has the given id, and
	// entity.ErrIncompleteResponse, storing nothing, when the merged record would
	// lack its prescription, doctor id or doctor name.
	Update(ctx context.Context, id string, update entity.RecordUpdate) (*entity.HealthRecord, error)
}
