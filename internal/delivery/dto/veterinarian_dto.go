package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateVeterinarianRequest struct {
	LicenseNo string     `json:"license_no" validate:"required,min=3,max=50"`
	ClinicID  int64      `json:"clinic_id" validate:"required,min=1"`
	UserID    *uuid.UUID `json:"user_id" validate:"omitempty"`
}

type CreateVetScheduleRequest struct {
	VeterinarianID int64  `json:"veterinarian_id" validate:"required,min=1"`
	Day            string `json:"day" validate:"required"`
	StartTime      string `json:"time_start" validate:"required,hhmm"`
	EndTime        string `json:"time_end" validate:"required,hhmm"`
}

// Response DTOs

type VeterinarianResponse struct {
	ID         int64      `json:"id"`
	LicenseNo  string     `json:"license_no"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	ClinicID   int64      `json:"clinic_id"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	ClinicName string     `json:"clinic_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type VeterinarianListResponse struct {
	Veterinarians []VeterinarianResponse `json:"veterinarians"`
	Total         int                    `json:"total"`
}

type VetScheduleResponse struct {
	ID             int64  `json:"id"`
	VeterinarianID int64  `json:"veterinarian_id"`
	Day            string `json:"day"`
	StartTime      string `json:"time_start"`
	EndTime        string `json:"time_end"`
}

type VetScheduleListResponse struct {
	Schedules []VetScheduleResponse `json:"schedules"`
	Total     int                   `json:"total"`
}
