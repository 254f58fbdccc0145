package entity

import "time"

// UserType is the portal role a user signs up with
type UserType string

const (
	UserTypePatient UserType = "patient"
	UserTypeDoctor  UserType = "doctor"
)

// User represents an account that can log in to the portal
type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	UserType  UserType  `gorm:"type:varchar(20);not null;index" json:"user_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsPatient checks if the user signed up as a patient
func (u *User) IsPatient() bool {
	return u.UserType == UserTypePatient
}

// IsDoctor checks if the user signed up as a doctor
func (u *User) IsDoctor() bool {
	return u.UserType == UserTypeDoctor
}
