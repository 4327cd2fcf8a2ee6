package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	Datetime       string `json:"datetime" validate:"required"` // RFC3339 or "YYYY-MM-DD HH:MM"
	PetID          int64  `json:"pet_id" validate:"required,min=1"`
	ClinicID       int64  `json:"clinic_id" validate:"required,min=1"`
	VeterinarianID int64  `json:"veterinarian_id" validate:"required,min=1"`
	Notes          string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	Datetime string `json:"datetime" validate:"required"`
	Notes    string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           int64                 `json:"id"`
	Datetime     time.Time             `json:"datetime"`
	Status       string                `json:"status"`
	Notes        string                `json:"notes,omitempty"`
	Pet          *PetResponse          `json:"pet,omitempty"`
	Clinic       *ClinicResponse       `json:"clinic,omitempty"`
	Veterinarian *VeterinarianResponse `json:"veterinarian,omitempty"`
	Treatment    *TreatmentResponse    `json:"treatment,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
