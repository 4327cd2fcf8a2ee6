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

var ErrLicenseAlreadyExists = errors.New("license number already exists")

type VeterinarianUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateVeterinarianRequest) (*dto.VeterinarianResponse, error)
	List(ctx context.Context) (*dto.VeterinarianListResponse, error)
	Get(ctx context.Context, id int64) (*dto.VeterinarianResponse, error)
	ListByClinic(ctx context.Context, clinicID int64) (*dto.VeterinarianListResponse, error)
	ListSchedules(ctx context.Context, vetID int64) (*dto.VetScheduleListResponse, error)
}

type veterinarianUsecase struct {
	log          *logrus.Logger
	vetRepo      repository.VeterinarianRepository
	clinicRepo   repository.ClinicRepository
	scheduleRepo repository.VetScheduleRepository
	auditService service.AuditService
}

func NewVeterinarianUsecase(
	log *logrus.Logger,
	vetRepo repository.VeterinarianRepository,
	clinicRepo repository.ClinicRepository,
	scheduleRepo repository.VetScheduleRepository,
	auditService service.AuditService,
) VeterinarianUsecase {
	return &veterinarianUsecase{
		log:          log,
		vetRepo:      vetRepo,
		clinicRepo:   clinicRepo,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

// Create pre-registers a license at a clinic. The row may be created without a
// user account; a vet claims it later at registration.
func (u *veterinarianUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateVeterinarianRequest) (*dto.VeterinarianResponse, error) {
	clinic, err := u.clinicRepo.FindByID(ctx, req.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", req.ClinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	vet := &entity.Veterinarian{
		LicenseNo: req.LicenseNo,
		ClinicID:  req.ClinicID,
		UserID:    req.UserID,
	}

	if err := u.vetRepo.Create(ctx, vet); err != nil {
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create veterinarian: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionVeterinarianCreate, entity.JSON{
		"veterinarian_id": vet.ID,
		"license_no":      vet.LicenseNo,
		"clinic_id":       vet.ClinicID,
	})

	return converter.VeterinarianToResponse(vet), nil
}

func (u *veterinarianUsecase) List(ctx context.Context) (*dto.VeterinarianListResponse, error) {
	vets, err := u.vetRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list veterinarians: %+v", err)
		return nil, err
	}

	return &dto.VeterinarianListResponse{
		Veterinarians: converter.VeterinariansToResponses(vets),
		Total:         len(vets),
	}, nil
}

func (u *veterinarianUsecase) Get(ctx context.Context, id int64) (*dto.VeterinarianResponse, error) {
	vet, err := u.vetRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian %d: %+v", id, err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVetNotFound
	}

	return converter.VeterinarianToResponse(vet), nil
}

func (u *veterinarianUsecase) ListByClinic(ctx context.Context, clinicID int64) (*dto.VeterinarianListResponse, error) {
	vets, err := u.vetRepo.FindByClinicID(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to list veterinarians for clinic %d: %+v", clinicID, err)
		return nil, err
	}

	return &dto.VeterinarianListResponse{
		Veterinarians: converter.VeterinariansToResponses(vets),
		Total:         len(vets),
	}, nil
}

func (u *veterinarianUsecase) ListSchedules(ctx context.Context, vetID int64) (*dto.VetScheduleListResponse, error) {
	vet, err := u.vetRepo.FindByID(ctx, vetID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian %d: %+v", vetID, err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVetNotFound
	}

	schedules, err := u.scheduleRepo.FindByVeterinarianID(ctx, vetID)
	if err != nil {
		u.log.Warnf("Failed to list schedules for vet %d: %+v", vetID, err)
		return nil, err
	}

	return &dto.VetScheduleListResponse{
		Schedules: converter.VetSchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}
