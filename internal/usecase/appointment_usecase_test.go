package usecase

import (
	"context"
	"testing"

	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
	"pawpoint/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type appointmentMocks struct {
	appointmentRepo *mockAppointmentRepository
	vetRepo         *mockVeterinarianRepository
	scheduleRepo    *mockVetScheduleRepository
	petRepo         *mockPetRepository
	ownerRepo       *mockPetOwnerRepository
}

func newAppointmentUsecaseForTest() (AppointmentUsecase, *appointmentMocks) {
	mocks := &appointmentMocks{
		appointmentRepo: &mockAppointmentRepository{},
		vetRepo:         &mockVeterinarianRepository{},
		scheduleRepo:    &mockVetScheduleRepository{},
		petRepo:         &mockPetRepository{},
		ownerRepo:       &mockPetOwnerRepository{},
	}
	u := NewAppointmentUsecase(
		newTestLogger(),
		mocks.appointmentRepo,
		mocks.vetRepo,
		mocks.scheduleRepo,
		mocks.petRepo,
		mocks.ownerRepo,
		service.NewAvailabilityService(),
		noopAuditService{},
	)
	return u, mocks
}

func TestAppointmentUsecase_Create_Success(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()
	userID := uuid.New()

	mocks.petRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Pet, error) {
		return &entity.Pet{ID: id, Name: "Rex"}, nil
	}
	mocks.ownerRepo.ExistsByPetAndUserFunc = func(_ context.Context, _ int64, _ uuid.UUID) (bool, error) {
		return true, nil
	}
	mocks.vetRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: id, ClinicID: 5}, nil
	}
	mocks.scheduleRepo.FindByVetIDFunc = func(_ context.Context, _ int64) ([]entity.VetSchedule, error) {
		return []entity.VetSchedule{{Day: "monday", StartTime: "09:00", EndTime: "17:00"}}, nil
	}
	mocks.appointmentRepo.CreateFunc = func(_ context.Context, appointment *entity.Appointment) error {
		appointment.ID = 42
		return nil
	}

	resp, err := u.Create(context.Background(), userID, entity.RoleIDPetOwner, &dto.CreateAppointmentRequest{
		Datetime:       "2025-12-22 10:00",
		PetID:          1,
		ClinicID:       5,
		VeterinarianID: 7,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
	assert.Equal(t, mondayMorning, resp.Datetime)
}

func TestAppointmentUsecase_Create_OwnerMustOwnPet(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()

	mocks.petRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Pet, error) {
		return &entity.Pet{ID: id}, nil
	}
	mocks.ownerRepo.ExistsByPetAndUserFunc = func(_ context.Context, _ int64, _ uuid.UUID) (bool, error) {
		return false, nil
	}

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDPetOwner, &dto.CreateAppointmentRequest{
		Datetime:       "2025-12-22 10:00",
		PetID:          1,
		ClinicID:       5,
		VeterinarianID: 7,
	})

	assert.ErrorIs(t, err, ErrPetAccessDenied)
}

func TestAppointmentUsecase_Create_VetClinicMismatch(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()

	mocks.petRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Pet, error) {
		return &entity.Pet{ID: id}, nil
	}
	mocks.vetRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: id, ClinicID: 99}, nil
	}

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreateAppointmentRequest{
		Datetime:       "2025-12-22 10:00",
		PetID:          1,
		ClinicID:       5,
		VeterinarianID: 7,
	})

	assert.ErrorIs(t, err, ErrVetClinicMismatch)
}

func TestAppointmentUsecase_Create_OutsideSchedule(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()

	mocks.petRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Pet, error) {
		return &entity.Pet{ID: id}, nil
	}
	mocks.vetRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: id, ClinicID: 5}, nil
	}
	mocks.scheduleRepo.FindByVetIDFunc = func(_ context.Context, _ int64) ([]entity.VetSchedule, error) {
		return []entity.VetSchedule{{Day: "tuesday", StartTime: "09:00", EndTime: "17:00"}}, nil
	}

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreateAppointmentRequest{
		Datetime:       "2025-12-22 10:00",
		PetID:          1,
		ClinicID:       5,
		VeterinarianID: 7,
	})

	assert.ErrorIs(t, err, ErrVetNotAvailable)
}

func TestAppointmentUsecase_Create_EmptyScheduleNotBookable(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()

	mocks.petRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Pet, error) {
		return &entity.Pet{ID: id}, nil
	}
	mocks.vetRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: id, ClinicID: 5}, nil
	}

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreateAppointmentRequest{
		Datetime:       "2025-12-22 10:00",
		PetID:          1,
		ClinicID:       5,
		VeterinarianID: 7,
	})

	assert.ErrorIs(t, err, ErrVetNotAvailable)
}

func TestAppointmentUsecase_Create_BadDatetime(t *testing.T) {
	u, _ := newAppointmentUsecaseForTest()

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreateAppointmentRequest{
		Datetime:       "next tuesday",
		PetID:          1,
		ClinicID:       5,
		VeterinarianID: 7,
	})

	assert.ErrorIs(t, err, ErrInvalidDatetimeFormat)
}

func TestAppointmentUsecase_UpdateStatus_ValidTransition(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()

	mocks.appointmentRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, Status: entity.AppointmentStatusScheduled}, nil
	}

	resp, err := u.UpdateStatus(context.Background(), uuid.New(), entity.RoleIDAdmin, 1, &dto.UpdateAppointmentStatusRequest{
		Status: "completed",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
	assert.Equal(t, 1, mocks.appointmentRepo.UpdateStatusCalls)
}

func TestAppointmentUsecase_UpdateStatus_SameStatusIsNoOp(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()

	mocks.appointmentRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, Status: entity.AppointmentStatusCompleted}, nil
	}

	resp, err := u.UpdateStatus(context.Background(), uuid.New(), entity.RoleIDAdmin, 1, &dto.UpdateAppointmentStatusRequest{
		Status: "completed",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
	assert.Zero(t, mocks.appointmentRepo.UpdateStatusCalls)
}

func TestAppointmentUsecase_UpdateStatus_TerminalStateRejected(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()

	mocks.appointmentRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, Status: entity.AppointmentStatusCompleted}, nil
	}

	_, err := u.UpdateStatus(context.Background(), uuid.New(), entity.RoleIDAdmin, 1, &dto.UpdateAppointmentStatusRequest{
		Status: "cancelled",
	})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Zero(t, mocks.appointmentRepo.UpdateStatusCalls)
}

func TestAppointmentUsecase_UpdateStatus_UnknownStatus(t *testing.T) {
	u, _ := newAppointmentUsecaseForTest()

	_, err := u.UpdateStatus(context.Background(), uuid.New(), entity.RoleIDAdmin, 1, &dto.UpdateAppointmentStatusRequest{
		Status: "archived",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppointmentUsecase_Get_VetScopedToOwnCalendar(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()
	vetUserID := uuid.New()
	otherUserID := uuid.New()

	mocks.appointmentRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Appointment, error) {
		return &entity.Appointment{
			ID:           id,
			Status:       entity.AppointmentStatusScheduled,
			Veterinarian: entity.Veterinarian{ID: 7, UserID: &vetUserID},
		}, nil
	}

	_, err := u.Get(context.Background(), vetUserID, entity.RoleIDVeterinarian, 1)
	assert.NoError(t, err)

	_, err = u.Get(context.Background(), otherUserID, entity.RoleIDVeterinarian, 1)
	assert.ErrorIs(t, err, ErrAppointmentAccessDenied)
}

func TestAppointmentUsecase_Get_NotFound(t *testing.T) {
	u, _ := newAppointmentUsecaseForTest()

	_, err := u.Get(context.Background(), uuid.New(), entity.RoleIDAdmin, 123)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentUsecase_Update_RevalidatesAvailability(t *testing.T) {
	u, mocks := newAppointmentUsecaseForTest()

	mocks.appointmentRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, Status: entity.AppointmentStatusScheduled, VeterinarianID: 7}, nil
	}
	mocks.scheduleRepo.FindByVetIDFunc = func(_ context.Context, _ int64) ([]entity.VetSchedule, error) {
		return []entity.VetSchedule{{Day: "monday", StartTime: "09:00", EndTime: "17:00"}}, nil
	}

	// Saturday is outside the schedule.
	_, err := u.Update(context.Background(), uuid.New(), entity.RoleIDAdmin, 1, &dto.UpdateAppointmentRequest{
		Datetime: "2025-12-27 10:00",
	})
	assert.ErrorIs(t, err, ErrVetNotAvailable)

	resp, err := u.Update(context.Background(), uuid.New(), entity.RoleIDAdmin, 1, &dto.UpdateAppointmentRequest{
		Datetime: "2025-12-22 10:00",
		Notes:    "rescheduled",
	})
	assert.NoError(t, err)
	assert.Equal(t, mondayMorning, resp.Datetime)
	assert.Equal(t, "rescheduled", resp.Notes)
}
