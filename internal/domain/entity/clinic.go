package entity

import "time"

// Clinic represents a veterinary clinic location
type Clinic struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	PhoneNo   string    `gorm:"type:varchar(20)" json:"phone_no,omitempty"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Veterinarians []Veterinarian `gorm:"foreignKey:ClinicID" json:"veterinarians,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}
