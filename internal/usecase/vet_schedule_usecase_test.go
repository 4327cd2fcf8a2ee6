package usecase

import (
	"context"
	"testing"

	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newVetScheduleUsecaseForTest() (VetScheduleUsecase, *mockVetScheduleRepository, *mockVeterinarianRepository) {
	scheduleRepo := &mockVetScheduleRepository{}
	vetRepo := &mockVeterinarianRepository{}
	u := NewVetScheduleUsecase(newTestLogger(), scheduleRepo, vetRepo, noopAuditService{})
	return u, scheduleRepo, vetRepo
}

func TestVetScheduleUsecase_Create_Success(t *testing.T) {
	u, scheduleRepo, vetRepo := newVetScheduleUsecaseForTest()
	vetUserID := uuid.New()

	vetRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: id, UserID: &vetUserID}, nil
	}

	var created *entity.VetSchedule
	scheduleRepo.CreateFunc = func(_ context.Context, schedule *entity.VetSchedule) error {
		schedule.ID = 3
		created = schedule
		return nil
	}

	resp, err := u.Create(context.Background(), vetUserID, entity.RoleIDVeterinarian, &dto.CreateVetScheduleRequest{
		VeterinarianID: 7,
		Day:            "Monday",
		StartTime:      "09:00",
		EndTime:        "17:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	// Day names are stored lowercase.
	assert.Equal(t, "monday", created.Day)
}

func TestVetScheduleUsecase_Create_InvalidDay(t *testing.T) {
	u, _, _ := newVetScheduleUsecaseForTest()

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreateVetScheduleRequest{
		VeterinarianID: 7,
		Day:            "someday",
		StartTime:      "09:00",
		EndTime:        "17:00",
	})

	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestVetScheduleUsecase_Create_InvalidWindow(t *testing.T) {
	u, _, _ := newVetScheduleUsecaseForTest()

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreateVetScheduleRequest{
		VeterinarianID: 7,
		Day:            "monday",
		StartTime:      "17:00",
		EndTime:        "09:00",
	})

	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestVetScheduleUsecase_Create_DayAlreadyTaken(t *testing.T) {
	u, scheduleRepo, vetRepo := newVetScheduleUsecaseForTest()

	vetRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: id}, nil
	}
	scheduleRepo.ExistsForDayFunc = func(_ context.Context, _ int64, _ string) (bool, error) {
		return true, nil
	}

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreateVetScheduleRequest{
		VeterinarianID: 7,
		Day:            "monday",
		StartTime:      "09:00",
		EndTime:        "17:00",
	})

	assert.ErrorIs(t, err, ErrScheduleDayTaken)
}

func TestVetScheduleUsecase_Create_VetManagesOwnScheduleOnly(t *testing.T) {
	u, _, vetRepo := newVetScheduleUsecaseForTest()
	ownerUserID := uuid.New()

	vetRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: id, UserID: &ownerUserID}, nil
	}

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDVeterinarian, &dto.CreateVetScheduleRequest{
		VeterinarianID: 7,
		Day:            "monday",
		StartTime:      "09:00",
		EndTime:        "17:00",
	})

	assert.ErrorIs(t, err, ErrScheduleAccessDenied)
}

func TestVetScheduleUsecase_Create_VetNotFound(t *testing.T) {
	u, _, _ := newVetScheduleUsecaseForTest()

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreateVetScheduleRequest{
		VeterinarianID: 99,
		Day:            "monday",
		StartTime:      "09:00",
		EndTime:        "17:00",
	})

	assert.ErrorIs(t, err, ErrVetNotFound)
}
