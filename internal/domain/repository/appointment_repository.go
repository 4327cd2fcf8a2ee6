package repository

import (
	"context"

	"pawpoint/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByOwnerUserID(ctx context.Context, userID uuid.UUID) ([]entity.Appointment, error)
	FindByVetUserID(ctx context.Context, userID uuid.UUID) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, id int64, status entity.AppointmentStatus) error
}
