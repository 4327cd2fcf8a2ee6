package repository

import (
	"context"
	"strings"

	"pawpoint/internal/domain/entity"
	domainRepo "pawpoint/internal/domain/repository"

	"gorm.io/gorm"
)

type vetScheduleRepository struct {
	db *gorm.DB
}

func NewVetScheduleRepository(db *gorm.DB) domainRepo.VetScheduleRepository {
	return &vetScheduleRepository{db: db}
}

func (r *vetScheduleRepository) Create(ctx context.Context, schedule *entity.VetSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

// FindByVeterinarianID returns windows ordered by calendar day, then start time.
func (r *vetScheduleRepository) FindByVeterinarianID(ctx context.Context, vetID int64) ([]entity.VetSchedule, error) {
	var schedules []entity.VetSchedule
	err := r.db.WithContext(ctx).
		Where("veterinarian_id = ?", vetID).
		Order(weekdayOrderExpr + ", time_start ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *vetScheduleRepository) ExistsForDay(ctx context.Context, vetID int64, day string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.VetSchedule{}).
		Where("veterinarian_id = ? AND LOWER(day) = ?", vetID, strings.ToLower(day)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

const weekdayOrderExpr = `CASE LOWER(day)
	WHEN 'monday' THEN 1
	WHEN 'tuesday' THEN 2
	WHEN 'wednesday' THEN 3
	WHEN 'thursday' THEN 4
	WHEN 'friday' THEN 5
	WHEN 'saturday' THEN 6
	WHEN 'sunday' THEN 7
	ELSE 8
END`
