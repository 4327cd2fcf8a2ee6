package entity

import (
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus resolves a client-supplied status value, ignoring
// case. Returns false when the value is not a known status.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(strings.ToLower(s)) {
	case AppointmentStatusPending:
		return AppointmentStatusPending, true
	case AppointmentStatusScheduled:
		return AppointmentStatusScheduled, true
	case AppointmentStatusCompleted:
		return AppointmentStatusCompleted, true
	case AppointmentStatusCancelled:
		return AppointmentStatusCancelled, true
	}
	return "", false
}

// statusTransitions lists the valid successor states for each status.
// Completed and cancelled are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusScheduled, AppointmentStatusCancelled},
	AppointmentStatusScheduled: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusCompleted: {},
	AppointmentStatusCancelled: {},
}

// CanTransitionTo reports whether moving from s to target is allowed.
// A transition to the current status is always allowed so that repeated
// identical updates stay idempotent.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if s == target {
		return true
	}
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Appointment represents a booked visit of a pet to a veterinarian at a clinic
type Appointment struct {
	ID             int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Datetime       time.Time         `gorm:"not null;index" json:"datetime"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	PetID          int64             `gorm:"not null;index" json:"pet_id"`
	ClinicID       int64             `gorm:"not null;index" json:"clinic_id"`
	VeterinarianID int64             `gorm:"not null;index" json:"veterinarian_id"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet          Pet              `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Clinic       Clinic           `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Veterinarian Veterinarian     `gorm:"foreignKey:VeterinarianID" json:"veterinarian,omitempty"`
	Treatment    *TreatmentRecord `gorm:"foreignKey:AppointmentID" json:"treatment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
