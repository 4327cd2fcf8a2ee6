package entity

import (
	"time"

	"github.com/google/uuid"
)

// PetOwner links a user account to a pet it owns
type PetOwner struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PetID     int64     `gorm:"not null;index" json:"pet_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Pet  Pet  `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (PetOwner) TableName() string {
	return "pet_owners"
}
