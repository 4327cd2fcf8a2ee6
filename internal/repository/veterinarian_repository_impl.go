package repository

import (
	"context"
	"errors"

	"pawpoint/internal/domain/entity"
	domainRepo "pawpoint/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type veterinarianRepository struct {
	db *gorm.DB
}

func NewVeterinarianRepository(db *gorm.DB) domainRepo.VeterinarianRepository {
	return &veterinarianRepository{db: db}
}

func (r *veterinarianRepository) Create(ctx context.Context, vet *entity.Veterinarian) error {
	return r.db.WithContext(ctx).Create(vet).Error
}

func (r *veterinarianRepository) FindByID(ctx context.Context, id int64) (*entity.Veterinarian, error) {
	var vet entity.Veterinarian
	err := r.db.WithContext(ctx).Preload("User").Preload("Clinic").Where("id = ?", id).First(&vet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vet, nil
}

func (r *veterinarianRepository) FindAll(ctx context.Context) ([]entity.Veterinarian, error) {
	var vets []entity.Veterinarian
	err := r.db.WithContext(ctx).Preload("User").Preload("Clinic").Order("license_no ASC").Find(&vets).Error
	if err != nil {
		return nil, err
	}
	return vets, nil
}

func (r *veterinarianRepository) FindByClinicID(ctx context.Context, clinicID int64) ([]entity.Veterinarian, error) {
	var vets []entity.Veterinarian
	err := r.db.WithContext(ctx).Preload("User").
		Where("clinic_id = ?", clinicID).
		Order("license_no ASC").
		Find(&vets).Error
	if err != nil {
		return nil, err
	}
	return vets, nil
}

func (r *veterinarianRepository) FindByLicense(ctx context.Context, licenseNo string) (*entity.Veterinarian, error) {
	var vet entity.Veterinarian
	err := r.db.WithContext(ctx).Where("license_no = ?", licenseNo).First(&vet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vet, nil
}

func (r *veterinarianRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Veterinarian, error) {
	var vet entity.Veterinarian
	err := r.db.WithContext(ctx).Preload("Clinic").Where("user_id = ?", userID).First(&vet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vet, nil
}

func (r *veterinarianRepository) Update(ctx context.Context, vet *entity.Veterinarian) error {
	return r.db.WithContext(ctx).Omit("User", "Clinic").Save(vet).Error
}
