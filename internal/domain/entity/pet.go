package entity

import "time"

// Pet represents an animal registered in the system.
// Ownership is tracked through pet_owner rows linking a user account to a pet.
type Pet struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Species   string    `gorm:"type:varchar(50);not null" json:"species"`
	Breed     string    `gorm:"type:varchar(100)" json:"breed,omitempty"`
	Gender    string    `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BirthDate time.Time `gorm:"type:date" json:"birth_date"`
	Age       int       `json:"age"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owners       []PetOwner    `gorm:"foreignKey:PetID" json:"owners,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PetID" json:"appointments,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}
