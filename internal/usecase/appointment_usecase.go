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
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentAccessDenied = errors.New("appointment does not belong to this account")
	ErrVetNotFound             = errors.New("veterinarian not found")
	ErrVetClinicMismatch       = errors.New("veterinarian does not work at the given clinic")
	ErrVetNotAvailable         = errors.New("veterinarian is not available at the requested time")
	ErrInvalidStatus           = errors.New("unknown appointment status")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, userID uuid.UUID, roleID int) (*dto.AppointmentListResponse, error)
	Get(ctx context.Context, userID uuid.UUID, roleID int, id int64) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, userID uuid.UUID, roleID int, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, roleID int, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	vetRepo         repository.VeterinarianRepository
	scheduleRepo    repository.VetScheduleRepository
	petRepo         repository.PetRepository
	ownerRepo       repository.PetOwnerRepository
	availability    service.AvailabilityService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	vetRepo repository.VeterinarianRepository,
	scheduleRepo repository.VetScheduleRepository,
	petRepo repository.PetRepository,
	ownerRepo repository.PetOwnerRepository,
	availability service.AvailabilityService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		vetRepo:         vetRepo,
		scheduleRepo:    scheduleRepo,
		petRepo:         petRepo,
		ownerRepo:       ownerRepo,
		availability:    availability,
		auditService:    auditService,
	}
}

// Create books an appointment. Pet owners may only book for their own pets.
// The veterinarian must work at the target clinic and the requested time must
// fall inside one of their schedule windows.
func (u *appointmentUsecase) Create(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	datetime, err := parseDatetime(req.Datetime)
	if err != nil {
		return nil, err
	}

	pet, err := u.petRepo.FindByID(ctx, req.PetID)
	if err != nil {
		u.log.Warnf("Failed to find pet %d: %+v", req.PetID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if roleID == entity.RoleIDPetOwner {
		owned, err := u.ownerRepo.ExistsByPetAndUser(ctx, req.PetID, userID)
		if err != nil {
			u.log.Warnf("Failed to check pet ownership: %+v", err)
			return nil, err
		}
		if !owned {
			return nil, ErrPetAccessDenied
		}
	}

	vet, err := u.vetRepo.FindByID(ctx, req.VeterinarianID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian %d: %+v", req.VeterinarianID, err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVetNotFound
	}
	if vet.ClinicID != req.ClinicID {
		return nil, ErrVetClinicMismatch
	}

	schedules, err := u.scheduleRepo.FindByVeterinarianID(ctx, vet.ID)
	if err != nil {
		u.log.Warnf("Failed to load vet schedules: %+v", err)
		return nil, err
	}
	if !u.availability.IsBookable(datetime, schedules) {
		return nil, ErrVetNotAvailable
	}

	appointment := &entity.Appointment{
		Datetime:       datetime,
		Status:         entity.AppointmentStatusScheduled,
		Notes:          req.Notes,
		PetID:          req.PetID,
		ClinicID:       req.ClinicID,
		VeterinarianID: req.VeterinarianID,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isForeignKeyError(err, "clinic") {
			return nil, ErrClinicNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id":  appointment.ID,
		"pet_id":          appointment.PetID,
		"veterinarian_id": appointment.VeterinarianID,
		"datetime":        appointment.Datetime,
	})

	return converter.AppointmentToResponse(appointment), nil
}

// List returns appointments scoped by role: owners see appointments for their
// pets, vets see their own calendar, admins see everything.
func (u *appointmentUsecase) List(ctx context.Context, userID uuid.UUID, roleID int) (*dto.AppointmentListResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)
	switch roleID {
	case entity.RoleIDPetOwner:
		appointments, err = u.appointmentRepo.FindByOwnerUserID(ctx, userID)
	case entity.RoleIDVeterinarian:
		appointments, err = u.appointmentRepo.FindByVetUserID(ctx, userID)
	default:
		appointments, err = u.appointmentRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, userID uuid.UUID, roleID int, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.findScopedAppointment(ctx, userID, roleID, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// Update reschedules an appointment. The new time is validated against the
// assigned veterinarian's schedule the same way as at creation.
func (u *appointmentUsecase) Update(ctx context.Context, userID uuid.UUID, roleID int, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findScopedAppointment(ctx, userID, roleID, id)
	if err != nil {
		return nil, err
	}

	datetime, err := parseDatetime(req.Datetime)
	if err != nil {
		return nil, err
	}

	schedules, err := u.scheduleRepo.FindByVeterinarianID(ctx, appointment.VeterinarianID)
	if err != nil {
		u.log.Warnf("Failed to load vet schedules: %+v", err)
		return nil, err
	}
	if !u.availability.IsBookable(datetime, schedules) {
		return nil, ErrVetNotAvailable
	}

	appointment.Datetime = datetime
	appointment.Notes = req.Notes

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, &userID, entity.AuditActionAppointmentUpdate, entity.JSON{
		"appointment_id": appointment.ID,
		"datetime":       appointment.Datetime,
	})

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus moves an appointment through its lifecycle. Setting the current
// status again is a no-op so repeated identical requests stay idempotent.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, userID uuid.UUID, roleID int, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status, ok := entity.ParseAppointmentStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.findScopedAppointment(ctx, userID, roleID, id)
	if err != nil {
		return nil, err
	}

	if appointment.Status == status {
		return converter.AppointmentToResponse(appointment), nil
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, ErrInvalidStatusTransition
	}

	if err := u.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	previous := appointment.Status
	appointment.Status = status

	u.auditService.Log(ctx, &userID, entity.AuditActionAppointmentStatus, entity.JSON{
		"appointment_id": appointment.ID,
		"from":           string(previous),
		"to":             string(status),
	})

	return converter.AppointmentToResponse(appointment), nil
}

// findScopedAppointment loads an appointment and enforces role scoping:
// owners reach appointments for their pets only, vets their own only.
func (u *appointmentUsecase) findScopedAppointment(ctx context.Context, userID uuid.UUID, roleID int, id int64) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	switch roleID {
	case entity.RoleIDPetOwner:
		owned, err := u.ownerRepo.ExistsByPetAndUser(ctx, appointment.PetID, userID)
		if err != nil {
			u.log.Warnf("Failed to check pet ownership: %+v", err)
			return nil, err
		}
		if !owned {
			return nil, ErrAppointmentAccessDenied
		}
	case entity.RoleIDVeterinarian:
		if appointment.Veterinarian.UserID == nil || *appointment.Veterinarian.UserID != userID {
			return nil, ErrAppointmentAccessDenied
		}
	}

	return appointment, nil
}
