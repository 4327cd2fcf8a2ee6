package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreatmentRecord is a diagnosis/notes entry tied to a completed appointment.
// At most one record exists per appointment.
type TreatmentRecord struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Date          time.Time       `gorm:"type:date;not null" json:"date"`
	Diagnosis     string          `gorm:"type:text;not null" json:"diagnosis"`
	Note          string          `gorm:"type:text" json:"note,omitempty"`
	Cost          decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"cost"`
	AppointmentID int64           `gorm:"not null;uniqueIndex" json:"appointment_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (TreatmentRecord) TableName() string {
	return "treatment_records"
}
