package repository

import (
	"context"
	"errors"

	"pawpoint/internal/domain/entity"
	domainRepo "pawpoint/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) domainRepo.TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) Create(ctx context.Context, record *entity.TreatmentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *treatmentRepository) FindByID(ctx context.Context, id int64) (*entity.TreatmentRecord, error) {
	var record entity.TreatmentRecord
	err := r.preloaded(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *treatmentRepository) FindAll(ctx context.Context) ([]entity.TreatmentRecord, error) {
	var records []entity.TreatmentRecord
	err := r.preloaded(ctx).Order("date DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *treatmentRepository) FindByVetUserID(ctx context.Context, userID uuid.UUID) ([]entity.TreatmentRecord, error) {
	var records []entity.TreatmentRecord
	err := r.preloaded(ctx).
		Joins("JOIN appointments ON appointments.id = treatment_records.appointment_id").
		Joins("JOIN veterinarians ON veterinarians.id = appointments.veterinarian_id").
		Where("veterinarians.user_id = ?", userID).
		Order("treatment_records.date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *treatmentRepository) ExistsByAppointmentID(ctx context.Context, appointmentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.TreatmentRecord{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *treatmentRepository) Update(ctx context.Context, record *entity.TreatmentRecord) error {
	return r.db.WithContext(ctx).Omit("Appointment").Save(record).Error
}

func (r *treatmentRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Appointment.Pet").
		Preload("Appointment.Veterinarian.User")
}
