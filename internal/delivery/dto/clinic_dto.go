package dto

import "time"

// Request DTOs

type CreateClinicRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	PhoneNo string `json:"phone_no" validate:"omitempty,min=7,max=20"`
	Address string `json:"address" validate:"omitempty"`
}

type UpdateClinicRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	PhoneNo string `json:"phone_no" validate:"omitempty,min=7,max=20"`
	Address string `json:"address" validate:"omitempty"`
}

// Response DTOs

type ClinicResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PhoneNo   string    `json:"phone_no,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClinicListResponse struct {
	Clinics []ClinicResponse `json:"clinics"`
	Total   int              `json:"total"`
}
