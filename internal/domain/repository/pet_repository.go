package repository

import (
	"context"

	"pawpoint/internal/domain/entity"

	"github.com/google/uuid"
)

type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	FindByID(ctx context.Context, id int64) (*entity.Pet, error)
	FindAll(ctx context.Context) ([]entity.Pet, error)
	FindByOwnerUserID(ctx context.Context, userID uuid.UUID) ([]entity.Pet, error)
	Update(ctx context.Context, pet *entity.Pet) error
	Delete(ctx context.Context, id int64) (int64, error)
}
