package dto

// Request DTOs

type CreateHealthRecordRequest struct {
	Problem string `json:"problem" validate:"required,notblank"`
}

type RespondRecordRequest struct {
	Prescription string `json:"prescription" validate:"required,notblank"`
}

// RecordFilter selects doctor-visible records by status
type RecordFilter struct {
	Status string `validate:"omitempty,oneof=pending responded all"`
}

// Response DTOs

type HealthRecordResponse struct {
	ID            string `json:"id"`
	PatientID     string `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	Problem       string `json:"problem"`
	DateSubmitted string `json:"date_submitted"` // Format: YYYY-MM-DD
	Status        string `json:"status"`
	Prescription  string `json:"prescription,omitempty"`
	DoctorID      string `json:"doctor_id,omitempty"`
	DoctorName    string `json:"doctor_name,omitempty"`
}

type HealthRecordListResponse struct {
	Records      []HealthRecordResponse `json:"records"`
	Total        int                    `json:"total"`
	PendingCount int                    `json:"pending_count"`
}
