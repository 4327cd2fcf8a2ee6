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
	ErrTreatmentNotFound     = errors.New("treatment record not found")
	ErrTreatmentExists       = errors.New("appointment already has a treatment record")
	ErrTreatmentAccessDenied = errors.New("treatment record does not belong to this account")
)

type TreatmentUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error)
	List(ctx context.Context, userID uuid.UUID, roleID int) (*dto.TreatmentListResponse, error)
	Get(ctx context.Context, userID uuid.UUID, roleID int, id int64) (*dto.TreatmentResponse, error)
	Update(ctx context.Context, userID uuid.UUID, roleID int, id int64, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error)
}

type treatmentUsecase struct {
	log             *logrus.Logger
	treatmentRepo   repository.TreatmentRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewTreatmentUsecase(
	log *logrus.Logger,
	treatmentRepo repository.TreatmentRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) TreatmentUsecase {
	return &treatmentUsecase{
		log:             log,
		treatmentRepo:   treatmentRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Create writes the diagnosis for an appointment. Vets may only document
// their own appointments, and each appointment takes at most one record.
func (u *treatmentUsecase) Create(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if roleID == entity.RoleIDVeterinarian {
		if appointment.Veterinarian.UserID == nil || *appointment.Veterinarian.UserID != userID {
			return nil, ErrTreatmentAccessDenied
		}
	}

	exists, err := u.treatmentRepo.ExistsByAppointmentID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing treatment: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrTreatmentExists
	}

	record := &entity.TreatmentRecord{
		Date:          date,
		Diagnosis:     req.Diagnosis,
		Note:          req.Note,
		Cost:          req.Cost,
		AppointmentID: req.AppointmentID,
	}

	if err := u.treatmentRepo.Create(ctx, record); err != nil {
		if isDuplicateKeyError(err, "appointment") {
			return nil, ErrTreatmentExists
		}
		u.log.Warnf("Failed to create treatment record: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionTreatmentCreate, entity.JSON{
		"treatment_id":   record.ID,
		"appointment_id": record.AppointmentID,
	})

	return converter.TreatmentToResponse(record), nil
}

// List returns all records for admins and only the vet's own for vets.
func (u *treatmentUsecase) List(ctx context.Context, userID uuid.UUID, roleID int) (*dto.TreatmentListResponse, error) {
	var (
		records []entity.TreatmentRecord
		err     error
	)
	if roleID == entity.RoleIDVeterinarian {
		records, err = u.treatmentRepo.FindByVetUserID(ctx, userID)
	} else {
		records, err = u.treatmentRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list treatment records: %+v", err)
		return nil, err
	}

	return &dto.TreatmentListResponse{
		Treatments: converter.TreatmentsToResponses(records),
		Total:      len(records),
	}, nil
}

func (u *treatmentUsecase) Get(ctx context.Context, userID uuid.UUID, roleID int, id int64) (*dto.TreatmentResponse, error) {
	record, err := u.findScopedTreatment(ctx, userID, roleID, id)
	if err != nil {
		return nil, err
	}
	return converter.TreatmentToResponse(record), nil
}

func (u *treatmentUsecase) Update(ctx context.Context, userID uuid.UUID, roleID int, id int64, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error) {
	record, err := u.findScopedTreatment(ctx, userID, roleID, id)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	record.Date = date
	record.Diagnosis = req.Diagnosis
	record.Note = req.Note
	record.Cost = req.Cost

	if err := u.treatmentRepo.Update(ctx, record); err != nil {
		u.log.Warnf("Failed to update treatment record: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionTreatmentUpdate, entity.JSON{
		"treatment_id": record.ID,
	})

	return converter.TreatmentToResponse(record), nil
}

func (u *treatmentUsecase) findScopedTreatment(ctx context.Context, userID uuid.UUID, roleID int, id int64) (*entity.TreatmentRecord, error) {
	record, err := u.treatmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrTreatmentNotFound
	}

	if roleID == entity.RoleIDVeterinarian {
		vetUserID := record.Appointment.Veterinarian.UserID
		if vetUserID == nil || *vetUserID != userID {
			return nil, ErrTreatmentAccessDenied
		}
	}

	return record, nil
}
