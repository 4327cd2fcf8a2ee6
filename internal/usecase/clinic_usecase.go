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

var ErrClinicNotFound = errors.New("clinic not found")

type ClinicUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	List(ctx context.Context) (*dto.ClinicListResponse, error)
	Get(ctx context.Context, id int64) (*dto.ClinicResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
}

type clinicUsecase struct {
	log          *logrus.Logger
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
}

func NewClinicUsecase(
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
) ClinicUsecase {
	return &clinicUsecase{
		log:          log,
		clinicRepo:   clinicRepo,
		auditService: auditService,
	}
}

func (u *clinicUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	clinic := &entity.Clinic{
		Name:    req.Name,
		PhoneNo: req.PhoneNo,
		Address: req.Address,
	}

	if err := u.clinicRepo.Create(ctx, clinic); err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionClinicCreate, entity.JSON{
		"clinic_id": clinic.ID,
		"name":      clinic.Name,
	})

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) List(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list clinics: %+v", err)
		return nil, err
	}

	return &dto.ClinicListResponse{
		Clinics: converter.ClinicsToResponses(clinics),
		Total:   len(clinics),
	}, nil
}

func (u *clinicUsecase) Get(ctx context.Context, id int64) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Update(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	clinic.Name = req.Name
	clinic.PhoneNo = req.PhoneNo
	clinic.Address = req.Address

	if err := u.clinicRepo.Update(ctx, clinic); err != nil {
		u.log.Warnf("Failed to update clinic: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionClinicUpdate, entity.JSON{
		"clinic_id": clinic.ID,
	})

	return converter.ClinicToResponse(clinic), nil
}
