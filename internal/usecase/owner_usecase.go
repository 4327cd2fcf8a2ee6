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

var ErrOwnershipExists = errors.New("user already owns this pet")

type OwnerUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateOwnerRequest) (*dto.OwnerResponse, error)
	List(ctx context.Context) (*dto.OwnerListResponse, error)
}

type ownerUsecase struct {
	log          *logrus.Logger
	ownerRepo    repository.PetOwnerRepository
	userRepo     repository.UserRepository
	petRepo      repository.PetRepository
	auditService service.AuditService
}

func NewOwnerUsecase(
	log *logrus.Logger,
	ownerRepo repository.PetOwnerRepository,
	userRepo repository.UserRepository,
	petRepo repository.PetRepository,
	auditService service.AuditService,
) OwnerUsecase {
	return &ownerUsecase{
		log:          log,
		ownerRepo:    ownerRepo,
		userRepo:     userRepo,
		petRepo:      petRepo,
		auditService: auditService,
	}
}

// Create links a user account to a pet it owns.
func (u *ownerUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	user, err := u.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", req.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	pet, err := u.petRepo.FindByID(ctx, req.PetID)
	if err != nil {
		u.log.Warnf("Failed to find pet %d: %+v", req.PetID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	exists, err := u.ownerRepo.ExistsByPetAndUser(ctx, req.PetID, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to check ownership: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrOwnershipExists
	}

	owner := &entity.PetOwner{
		UserID:  req.UserID,
		PetID:   req.PetID,
		Address: req.Address,
	}

	if err := u.ownerRepo.Create(ctx, owner); err != nil {
		u.log.Warnf("Failed to create ownership row: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &actorID, entity.AuditActionOwnerCreate, entity.JSON{
		"user_id": req.UserID,
		"pet_id":  req.PetID,
	})

	owner.User = *user
	owner.Pet = *pet
	return converter.OwnerToResponse(owner), nil
}

func (u *ownerUsecase) List(ctx context.Context) (*dto.OwnerListResponse, error) {
	owners, err := u.ownerRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list owners: %+v", err)
		return nil, err
	}

	return &dto.OwnerListResponse{
		Owners: converter.OwnersToResponses(owners),
		Total:  len(owners),
	}, nil
}
