package repository

import (
	"context"

	"pawpoint/internal/domain/entity"
)

type ClinicRepository interface {
	Create(ctx context.Context, clinic *entity.Clinic) error
	FindByID(ctx context.Context, id int64) (*entity.Clinic, error)
	FindAll(ctx context.Context) ([]entity.Clinic, error)
	Update(ctx context.Context, clinic *entity.Clinic) error
}
