package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateOwnerRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	PetID   int64     `json:"pet_id" validate:"required,min=1"`
	Address string    `json:"address" validate:"omitempty"`
}

// Response DTOs

type OwnerResponse struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PetID     int64     `json:"pet_id"`
	Address   string    `json:"address,omitempty"`
	OwnerName string    `json:"owner_name,omitempty"`
	PetName   string    `json:"pet_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type OwnerListResponse struct {
	Owners []OwnerResponse `json:"owners"`
	Total  int             `json:"total"`
}
