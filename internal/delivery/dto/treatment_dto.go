package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTreatmentRequest struct {
	AppointmentID int64           `json:"appointment_id" validate:"required,min=1"`
	Date          string          `json:"date" validate:"required"` // YYYY-MM-DD
	Diagnosis     string          `json:"diagnosis" validate:"required,min=2"`
	Note          string          `json:"note" validate:"omitempty"`
	Cost          decimal.Decimal `json:"cost" validate:"omitempty"`
}

type UpdateTreatmentRequest struct {
	Date      string          `json:"date" validate:"required"`
	Diagnosis string          `json:"diagnosis" validate:"required,min=2"`
	Note      string          `json:"note" validate:"omitempty"`
	Cost      decimal.Decimal `json:"cost" validate:"omitempty"`
}

// Response DTOs

type TreatmentResponse struct {
	ID            int64                `json:"id"`
	Date          string               `json:"date"`
	Diagnosis     string               `json:"diagnosis"`
	Note          string               `json:"note,omitempty"`
	Cost          decimal.Decimal      `json:"cost"`
	AppointmentID int64                `json:"appointment_id"`
	Appointment   *AppointmentResponse `json:"appointment,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	Total      int                 `json:"total"`
}
