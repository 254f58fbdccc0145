package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"healthcare-portal/internal/domain/entity"
	domainRepo "healthcare-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type healthRecordRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewHealthRecordRepository(db *gorm.DB) domainRepo.HealthRecordRepository {
	return &healthRecordRepository{db: db, now: time.Now}
}

// Create locks the table so that COUNT(*)+1 stays unique across concurrent writers.
func (r *healthRecordRepository) Create(ctx context.Context, record *entity.HealthRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE health_records IN EXCLUSIVE MODE").Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&entity.HealthRecord{}).Count(&total).Error; err != nil {
			return err
		}

		record.ID = strconv.FormatInt(total+1, 10)
		record.DateSubmitted = entity.DateOf(r.now())
		record.Status = entity.RecordStatusPending
		record.Prescription = ""
		record.DoctorID = ""
		record.DoctorName = ""

		return tx.Create(record).Error
	})
}

func (r *healthRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.HealthRecord, error) {
	var records []entity.HealthRecord
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("seq ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) FindAll(ctx context.Context) ([]entity.HealthRecord, error) {
	var records []entity.HealthRecord
	err := r.db.WithContext(ctx).Order("seq ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) Update(ctx context.Context, id string, update entity.RecordUpdate) (*entity.HealthRecord, error) {
	var record entity.HealthRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&record).Error; err != nil {
			return err
		}

		updated, err := record.Responded(update)
		if err != nil {
			return err
		}
		record = updated

		return tx.Model(&record).
			Select("prescription", "doctor_id", "doctor_name", "status", "updated_at").
			Updates(&record).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
