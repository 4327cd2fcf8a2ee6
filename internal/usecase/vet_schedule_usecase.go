package usecase

import (
	"context"
	"errors"
	"strings"

	"pawpoint/internal/converter"
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
	"pawpoint/internal/domain/repository"
	"pawpoint/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDay           = errors.New("day must be a weekday name")
	ErrInvalidWindow        = errors.New("time_start must not be after time_end")
	ErrScheduleDayTaken     = errors.New("a schedule window already exists for that day")
	ErrScheduleAccessDenied = errors.New("schedule does not belong to this account")
)

type VetScheduleUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreateVetScheduleRequest) (*dto.VetScheduleResponse, error)
}

type vetScheduleUsecase struct {
	log          *logrus.Logger
	scheduleRepo repository.VetScheduleRepository
	vetRepo      repository.VeterinarianRepository
	auditService service.AuditService
}

func NewVetScheduleUsecase(
	log *logrus.Logger,
	scheduleRepo repository.VetScheduleRepository,
	vetRepo repository.VeterinarianRepository,
	auditService service.AuditService,
) VetScheduleUsecase {
	return &vetScheduleUsecase{
		log:          log,
		scheduleRepo: scheduleRepo,
		vetRepo:      vetRepo,
		auditService: auditService,
	}
}

// Create adds a weekly working window. Vets may only manage their own
// schedule; admins may manage anyone's. One window per weekday per vet.
func (u *vetScheduleUsecase) Create(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreateVetScheduleRequest) (*dto.VetScheduleResponse, error) {
	day := strings.ToLower(req.Day)
	if !entity.ValidDay(day) {
		return nil, ErrInvalidDay
	}
	if req.StartTime > req.EndTime {
		return nil, ErrInvalidWindow
	}

	vet, err := u.vetRepo.FindByID(ctx, req.VeterinarianID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian %d: %+v", req.VeterinarianID, err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVetNotFound
	}

	if roleID == entity.RoleIDVeterinarian {
		if vet.UserID == nil || *vet.UserID != userID {
			return nil, ErrScheduleAccessDenied
		}
	}

	taken, err := u.scheduleRepo.ExistsForDay(ctx, vet.ID, day)
	if err != nil {
		u.log.Warnf("Failed to check schedule day: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrScheduleDayTaken
	}

	schedule := &entity.VetSchedule{
		Day:            day,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		VeterinarianID: vet.ID,
	}

	if err := u.scheduleRepo.Create(ctx, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionScheduleCreate, entity.JSON{
		"veterinarian_id": vet.ID,
		"day":             day,
	})

	return converter.VetScheduleToResponse(schedule), nil
}
