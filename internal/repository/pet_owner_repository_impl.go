package repository

import (
	"context"

	"pawpoint/internal/domain/entity"
	domainRepo "pawpoint/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petOwnerRepository struct {
	db *gorm.DB
}

func NewPetOwnerRepository(db *gorm.DB) domainRepo.PetOwnerRepository {
	return &petOwnerRepository{db: db}
}

func (r *petOwnerRepository) Create(ctx context.Context, owner *entity.PetOwner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *petOwnerRepository) FindAll(ctx context.Context) ([]entity.PetOwner, error) {
	var owners []entity.PetOwner
	err := r.db.WithContext(ctx).Preload("User").Preload("Pet").Find(&owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *petOwnerRepository) ExistsByPetAndUser(ctx context.Context, petID int64, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PetOwner{}).
		Where("pet_id = ? AND user_id = ?", petID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
