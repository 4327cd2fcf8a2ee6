package repository

import (
	"context"
	"errors"

	"pawpoint/internal/domain/entity"
	domainRepo "pawpoint/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) domainRepo.PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *petRepository) FindByID(ctx context.Context, id int64) (*entity.Pet, error) {
	var pet entity.Pet
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindAll(ctx context.Context) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindByOwnerUserID(ctx context.Context, userID uuid.UUID) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := r.db.WithContext(ctx).
		Joins("JOIN pet_owners ON pet_owners.pet_id = pets.id").
		Where("pet_owners.user_id = ?", userID).
		Order("pets.created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}

func (r *petRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Pet{})
	return result.RowsAffected, result.Error
}
