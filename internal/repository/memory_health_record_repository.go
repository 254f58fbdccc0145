package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"healthcare-portal/internal/domain/entity"
	domainRepo "healthcare-portal/internal/domain/repository"
)

// memoryHealthRecordRepository keeps records in insertion order. The mutex
// gives the store exclusive write access, so ids derived from the collection
// size stay unique.
type memoryHealthRecordRepository struct {
	mu      sync.Mutex
	records []entity.HealthRecord
	now     func() time.Time
}

// NewMemoryHealthRecordRepository creates an in-process record store preloaded with seed.
// A nil now defaults to time.Now.
func NewMemoryHealthRecordRepository(now func() time.Time, seed ...entity.HealthRecord) domainRepo.HealthRecordRepository {
	if now == nil {
		now = time.Now
	}
	records := make([]entity.HealthRecord, 0, len(seed))
	for i, record := range seed {
		record.Seq = int64(i + 1)
		records = append(records, record)
	}
	return &memoryHealthRecordRepository{
		records: records,
		now:     now,
	}
}

func (r *memoryHealthRecordRepository) Create(ctx context.Context, record *entity.HealthRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	record.ID = strconv.Itoa(len(r.records) + 1)
	record.Seq = int64(len(r.records) + 1)
	record.DateSubmitted = entity.DateOf(now)
	record.Status = entity.RecordStatusPending
	record.Prescription = ""
	record.DoctorID = ""
	record.DoctorName = ""
	record.CreatedAt = now
	record.UpdatedAt = now

	r.records = append(r.records, *record)
	return nil
}

func (r *memoryHealthRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.HealthRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]entity.HealthRecord, 0)
	for _, record := range r.records {
		if record.PatientID == patientID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *memoryHealthRecordRepository) FindAll(ctx context.Context) ([]entity.HealthRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]entity.HealthRecord, len(r.records))
	copy(records, r.records)
	return records, nil
}

func (r *memoryHealthRecordRepository) Update(ctx context.Context, id string, update entity.RecordUpdate) (*entity.HealthRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		updated, err := r.records[i].Responded(update)
		if err != nil {
			return nil, err
		}
		updated.UpdatedAt = r.now()
		r.records[i] = updated
		return &updated, nil
	}
	return nil, nil
}
