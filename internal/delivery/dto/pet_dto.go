package dto

import "time"

// Request DTOs

type CreatePetRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Species   string `json:"species" validate:"required,min=2,max=50"`
	Breed     string `json:"breed" validate:"omitempty,max=100"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate string `json:"birth_date" validate:"omitempty"` // YYYY-MM-DD
	Age       int    `json:"age" validate:"omitempty,gte=0,lte=100"`
	Address   string `json:"address" validate:"omitempty"`
}

type UpdatePetRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Species   string `json:"species" validate:"required,min=2,max=50"`
	Breed     string `json:"breed" validate:"omitempty,max=100"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate string `json:"birth_date" validate:"omitempty"`
	Age       int    `json:"age" validate:"omitempty,gte=0,lte=100"`
}

// Response DTOs

type PetResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Species   string          `json:"species"`
	Breed     string          `json:"breed,omitempty"`
	Gender    string          `json:"gender,omitempty"`
	BirthDate string          `json:"birth_date,omitempty"`
	Age       int             `json:"age"`
	Owners    []OwnerResponse `json:"owners,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
