package repository

import (
	"context"

	"pawpoint/internal/domain/entity"

	"github.com/google/uuid"
)

type VeterinarianRepository interface {
	Create(ctx context.Context, vet *entity.Veterinarian) error
	FindByID(ctx context.Context, id int64) (*entity.Veterinarian, error)
	FindAll(ctx context.Context) ([]entity.Veterinarian, error)
	FindByClinicID(ctx context.Context, clinicID int64) ([]entity.Veterinarian, error)
	FindByLicense(ctx context.Context, licenseNo string) (*entity.Veterinarian, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Veterinarian, error)
	Update(ctx context.Context, vet *entity.Veterinarian) error
}
