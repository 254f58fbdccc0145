package entity

import (
	"errors"
	"time"
)

// RecordStatus represents the lifecycle state of a health record
type RecordStatus string

// ErrIncompleteResponse is returned when an update would leave a responded
// record without its prescription, doctor id or doctor name.
var ErrIncompleteResponse = errors.New("prescription, doctor id and doctor name are required")

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusResponded RecordStatus = "responded"
)

// HealthRecord is a patient-submitted health concern and the doctor's response to it.
// Prescription, DoctorID and DoctorName stay empty while the record is pending.
type HealthRecord struct {
	ID            string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	Seq           int64        `gorm:"column:seq;<-:false" json:"-"`
	PatientID     string       `gorm:"type:varchar(36);not null;index" json:"patient_id"`
	PatientName   string       `gorm:"type:varchar(255);not null" json:"patient_name"`
	Problem       string       `gorm:"type:text;not null" json:"problem"`
	DateSubmitted time.Time    `gorm:"type:date;not null;index" json:"date_submitted"`
	Status        RecordStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Prescription  string       `gorm:"type:text" json:"prescription,omitempty"`
	DoctorID      string       `gorm:"type:varchar(36)" json:"doctor_id,omitempty"`
	DoctorName    string       `gorm:"type:varchar(255)" json:"doctor_name,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}

// RecordUpdate carries the fields a doctor sends when responding to a record.
// Status is accepted for shape compatibility but never honored: an update
// always moves the record to responded.
type RecordUpdate struct {
	Prescription string
	DoctorID     string
	DoctorName   string
	Status       RecordStatus
}

// IsPending checks if the record still awaits a doctor
func (r *HealthRecord) IsPending() bool {
	return r.Status == RecordStatusPending
}

// IsResponded checks if a doctor has answered the record
func (r *HealthRecord) IsResponded() bool {
	return r.Status == RecordStatusResponded
}

// Apply merges the non-empty fields of u and forces the responded status.
func (r *HealthRecord) Apply(u RecordUpdate) {
	if u.Prescription != "" {
		r.Prescription = u.Prescription
	}
	if u.DoctorID != "" {
		r.DoctorID = u.DoctorID
	}
	if u.DoctorName != "" {
		r.DoctorName = u.DoctorName
	}
	r.Status = RecordStatusResponded
}

// HasCompleteResponse reports whether prescription, doctor id and doctor name are all set
func (r *HealthRecord) HasCompleteResponse() bool {
	return r.Prescription != "" && r.DoctorID != "" && r.DoctorName != ""
}

// Responded returns a copy of r with u applied. It fails with
// ErrIncompleteResponse, leaving r untouched, when the result would be a
// responded record with missing response fields.
func (r *HealthRecord) Responded(u RecordUpdate) (HealthRecord, error) {
	next := *r
	next.Apply(u)
	if !next.HasCompleteResponse() {
		return HealthRecord{}, ErrIncompleteResponse
	}
	return next, nil
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
