package entity

import (
	"time"

	"github.com/google/uuid"
)

// Veterinarian represents clinic staff authorized to manage appointments and
// treatments. UserID is nullable: a license can be pre-registered by an admin
// and claimed later when the vet creates an account.
type Veterinarian struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	LicenseNo string     `gorm:"column:license_no;type:varchar(50);uniqueIndex;not null" json:"license_no"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ClinicID  int64      `gorm:"not null;index" json:"clinic_id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User      *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Clinic    Clinic        `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Schedules []VetSchedule `gorm:"foreignKey:VeterinarianID" json:"schedules,omitempty"`
}

func (Veterinarian) TableName() string {
	return "veterinarians"
}
