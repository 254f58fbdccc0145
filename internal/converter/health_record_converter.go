package converter

import (
	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// HealthRecordToResponse converts a HealthRecord entity to HealthRecordResponse DTO
func HealthRecordToResponse(record *entity.HealthRecord) *dto.HealthRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.HealthRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		PatientName:   record.PatientName,
		Problem:       record.Problem,
		DateSubmitted: record.DateSubmitted.Format(dateLayout),
		Status:        string(record.Status),
		Prescription:  record.Prescription,
		DoctorID:      record.DoctorID,
		DoctorName:    record.DoctorName,
	}
}

// HealthRecordsToListResponse converts records to a listing with totals
func HealthRecordsToListResponse(records []entity.HealthRecord, pendingCount int) *dto.HealthRecordListResponse {
	responses := make([]dto.HealthRecordResponse, len(records))
	for i := range records {
		responses[i] = *HealthRecordToResponse(&records[i])
	}

	return &dto.HealthRecordListResponse{
		Records:      responses,
		Total:        len(records),
		PendingCount: pendingCount,
	}
}
