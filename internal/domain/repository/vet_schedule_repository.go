package repository

import (
	"context"

	"pawpoint/internal/domain/entity"
)

type VetScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.VetSchedule) error
	FindByVeterinarianID(ctx context.Context, vetID int64) ([]entity.VetSchedule, error)
	ExistsForDay(ctx context.Context, vetID int64, day string) (bool, error)
}
