package dto

import "time"

type ContactRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

type ContactResponse struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ReceivedAt time.Time `json:"received_at"`
}
