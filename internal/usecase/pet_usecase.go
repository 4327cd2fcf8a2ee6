package usecase

import (
	"context"
	"errors"

	"pawpoint/internal/converter"
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
	"pawpoint/internal/domain/repository"
	"pawpoint/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPetNotFound     = errors.New("pet not found")
	ErrPetAccessDenied = errors.New("pet does not belong to this account")
)

type PetUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	List(ctx context.Context, userID uuid.UUID, roleID int) (*dto.PetListResponse, error)
	Get(ctx context.Context, userID uuid.UUID, roleID int, petID int64) (*dto.PetResponse, error)
	Update(ctx context.Context, userID uuid.UUID, roleID int, petID int64, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, roleID int, petID int64) error
}

type petUsecase struct {
	log          *logrus.Logger
	petRepo      repository.PetRepository
	ownerRepo    repository.PetOwnerRepository
	auditService service.AuditService
}

func NewPetUsecase(
	log *logrus.Logger,
	petRepo repository.PetRepository,
	ownerRepo repository.PetOwnerRepository,
	auditService service.AuditService,
) PetUsecase {
	return &petUsecase{
		log:          log,
		petRepo:      petRepo,
		ownerRepo:    ownerRepo,
		auditService: auditService,
	}
}

// Create registers a pet. For pet owners an ownership row is created as well,
// so the pet immediately shows up in their scoped lists.
func (u *petUsecase) Create(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	pet := &entity.Pet{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Gender:  req.Gender,
		Age:     req.Age,
	}

	if req.BirthDate != "" {
		birthDate, err := parseDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		pet.BirthDate = birthDate
	}

	if err := u.petRepo.Create(ctx, pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	if roleID == entity.RoleIDPetOwner {
		owner := &entity.PetOwner{
			UserID:  userID,
			PetID:   pet.ID,
			Address: req.Address,
		}
		if err := u.ownerRepo.Create(ctx, owner); err != nil {
			u.log.Warnf("Failed to create ownership row: %+v", err)
			return nil, err
		}
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionPetCreate, entity.JSON{
		"pet_id": pet.ID,
		"name":   pet.Name,
	})

	return converter.PetToResponse(pet), nil
}

// List returns all pets for admins and veterinarians, and only owned pets for
// pet owners.
func (u *petUsecase) List(ctx context.Context, userID uuid.UUID, roleID int) (*dto.PetListResponse, error) {
	var (
		pets []entity.Pet
		err  error
	)
	if roleID == entity.RoleIDPetOwner {
		pets, err = u.petRepo.FindByOwnerUserID(ctx, userID)
	} else {
		pets, err = u.petRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list pets: %+v", err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) Get(ctx context.Context, userID uuid.UUID, roleID int, petID int64) (*dto.PetResponse, error) {
	pet, err := u.findOwnedPet(ctx, userID, roleID, petID)
	if err != nil {
		return nil, err
	}
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) Update(ctx context.Context, userID uuid.UUID, roleID int, petID int64, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	pet, err := u.findOwnedPet(ctx, userID, roleID, petID)
	if err != nil {
		return nil, err
	}

	pet.Name = req.Name
	pet.Species = req.Species
	pet.Breed = req.Breed
	pet.Gender = req.Gender
	pet.Age = req.Age
	if req.BirthDate != "" {
		birthDate, err := parseDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		pet.BirthDate = birthDate
	}

	if err := u.petRepo.Update(ctx, pet); err != nil {
		u.log.Warnf("Failed to update pet: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionPetUpdate, entity.JSON{
		"pet_id": pet.ID,
	})

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) Delete(ctx context.Context, userID uuid.UUID, roleID int, petID int64) error {
	if _, err := u.findOwnedPet(ctx, userID, roleID, petID); err != nil {
		return err
	}

	affected, err := u.petRepo.Delete(ctx, petID)
	if err != nil {
		u.log.Warnf("Failed to delete pet: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPetNotFound
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionPetDelete, entity.JSON{
		"pet_id": petID,
	})

	return nil
}

// findOwnedPet loads a pet and enforces the owner scope: pet owners can only
// reach pets linked to their account.
func (u *petUsecase) findOwnedPet(ctx context.Context, userID uuid.UUID, roleID int, petID int64) (*entity.Pet, error) {
	pet, err := u.petRepo.FindByID(ctx, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet %d: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if roleID == entity.RoleIDPetOwner {
		owned, err := u.ownerRepo.ExistsByPetAndUser(ctx, petID, userID)
		if err != nil {
			u.log.Warnf("Failed to check pet ownership: %+v", err)
			return nil, err
		}
		if !owned {
			return nil, ErrPetAccessDenied
		}
	}

	return pet, nil
}
