package repository

import (
	"context"

	"pawpoint/internal/domain/entity"

	"github.com/google/uuid"
)

type TreatmentRepository interface {
	Create(ctx context.Context, record *entity.TreatmentRecord) error
	FindByID(ctx context.Context, id int64) (*entity.TreatmentRecord, error)
	FindAll(ctx context.Context) ([]entity.TreatmentRecord, error)
	FindByVetUserID(ctx context.Context, userID uuid.UUID) ([]entity.TreatmentRecord, error)
	ExistsByAppointmentID(ctx context.Context, appointmentID int64) (bool, error)
	Update(ctx context.Context, record *entity.TreatmentRecord) error
}
