package repository

import (
	"time"

	"healthcare-portal/internal/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every demo account.
const DemoPassword = "password"

// DemoUsers returns the demo doctor and patient accounts used by the memory store.
func DemoUsers() ([]entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return []entity.User{
		{ID: "1", Email: "doctor@example.com", Password: string(hashed), Name: "Dr. Smith", UserType: entity.UserTypeDoctor},
		{ID: "2", Email: "patient@example.com", Password: string(hashed), Name: "John Doe", UserType: entity.UserTypePatient},
	}, nil
}

// DemoHealthRecords returns one responded and one pending record for the demo patient.
func DemoHealthRecords() []entity.HealthRecord {
	return []entity.HealthRecord{
		{
			ID:            "1",
			PatientID:     "2",
			PatientName:   "John Doe",
			Problem:       "Severe headache and fever for 3 days",
			DateSubmitted: time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC),
			Status:        entity.RecordStatusResponded,
			Prescription:  "Paracetamol 500mg 3 times daily for 5 days",
			DoctorID:      "1",
			DoctorName:    "Dr. Smith",
		},
		{
			ID:            "2",
			PatientID:     "2",
			PatientName:   "John Doe",
			Problem:       "Sore throat and cough",
			DateSubmitted: time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC),
			Status:        entity.RecordStatusPending,
		},
	}
}
