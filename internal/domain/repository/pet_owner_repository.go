package repository

import (
	"context"

	"pawpoint/internal/domain/entity"

	"github.com/google/uuid"
)

type PetOwnerRepository interface {
	Create(ctx context.Context, owner *entity.PetOwner) error
	FindAll(ctx context.Context) ([]entity.PetOwner, error)
	ExistsByPetAndUser(ctx context.Context, petID int64, userID uuid.UUID) (bool, error)
}
