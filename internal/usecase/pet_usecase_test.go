package usecase

import (
	"context"
	"testing"

	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newPetUsecaseForTest() (PetUsecase, *mockPetRepository, *mockPetOwnerRepository) {
	petRepo := &mockPetRepository{}
	ownerRepo := &mockPetOwnerRepository{}
	u := NewPetUsecase(newTestLogger(), petRepo, ownerRepo, noopAuditService{})
	return u, petRepo, ownerRepo
}

func TestPetUsecase_Create_OwnerGetsOwnershipRow(t *testing.T) {
	u, petRepo, ownerRepo := newPetUsecaseForTest()
	userID := uuid.New()

	petRepo.CreateFunc = func(_ context.Context, pet *entity.Pet) error {
		pet.ID = 9
		return nil
	}

	var ownership *entity.PetOwner
	ownerRepo.CreateFunc = func(_ context.Context, owner *entity.PetOwner) error {
		ownership = owner
		return nil
	}

	resp, err := u.Create(context.Background(), userID, entity.RoleIDPetOwner, &dto.CreatePetRequest{
		Name:    "Rex",
		Species: "dog",
		Address: "12 Elm St",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
	assert.NotNil(t, ownership)
	assert.Equal(t, userID, ownership.UserID)
	assert.Equal(t, int64(9), ownership.PetID)
	assert.Equal(t, "12 Elm St", ownership.Address)
}

func TestPetUsecase_Create_AdminSkipsOwnershipRow(t *testing.T) {
	u, petRepo, ownerRepo := newPetUsecaseForTest()

	petRepo.CreateFunc = func(_ context.Context, pet *entity.Pet) error {
		pet.ID = 9
		return nil
	}

	called := false
	ownerRepo.CreateFunc = func(_ context.Context, _ *entity.PetOwner) error {
		called = true
		return nil
	}

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreatePetRequest{
		Name:    "Rex",
		Species: "dog",
	})

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestPetUsecase_Create_BadBirthDate(t *testing.T) {
	u, _, _ := newPetUsecaseForTest()

	_, err := u.Create(context.Background(), uuid.New(), entity.RoleIDAdmin, &dto.CreatePetRequest{
		Name:      "Rex",
		Species:   "dog",
		BirthDate: "22/12/2020",
	})

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestPetUsecase_Get_OwnerScoped(t *testing.T) {
	u, petRepo, ownerRepo := newPetUsecaseForTest()
	ownerID := uuid.New()

	petRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Pet, error) {
		return &entity.Pet{ID: id, Name: "Rex"}, nil
	}
	ownerRepo.ExistsByPetAndUserFunc = func(_ context.Context, _ int64, userID uuid.UUID) (bool, error) {
		return userID == ownerID, nil
	}

	_, err := u.Get(context.Background(), ownerID, entity.RoleIDPetOwner, 9)
	assert.NoError(t, err)

	_, err = u.Get(context.Background(), uuid.New(), entity.RoleIDPetOwner, 9)
	assert.ErrorIs(t, err, ErrPetAccessDenied)
}

func TestPetUsecase_Get_NotFound(t *testing.T) {
	u, _, _ := newPetUsecaseForTest()

	_, err := u.Get(context.Background(), uuid.New(), entity.RoleIDAdmin, 9)
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestPetUsecase_List_OwnerSeesOwnPetsOnly(t *testing.T) {
	u, petRepo, _ := newPetUsecaseForTest()
	ownerID := uuid.New()

	petRepo.FindByOwnerUserIDFunc = func(_ context.Context, userID uuid.UUID) ([]entity.Pet, error) {
		assert.Equal(t, ownerID, userID)
		return []entity.Pet{{ID: 1, Name: "Rex"}}, nil
	}
	petRepo.FindAllFunc = func(_ context.Context) ([]entity.Pet, error) {
		return []entity.Pet{{ID: 1}, {ID: 2}, {ID: 3}}, nil
	}

	scoped, err := u.List(context.Background(), ownerID, entity.RoleIDPetOwner)
	assert.NoError(t, err)
	assert.Equal(t, 1, scoped.Total)

	all, err := u.List(context.Background(), uuid.New(), entity.RoleIDAdmin)
	assert.NoError(t, err)
	assert.Equal(t, 3, all.Total)
}

func TestPetUsecase_Delete_ZeroRowsMeansNotFound(t *testing.T) {
	u, petRepo, _ := newPetUsecaseForTest()

	petRepo.FindByIDFunc = func(_ context.Context, id int64) (*entity.Pet, error) {
		return &entity.Pet{ID: id}, nil
	}
	petRepo.DeleteFunc = func(_ context.Context, _ int64) (int64, error) {
		return 0, nil
	}

	err := u.Delete(context.Background(), uuid.New(), entity.RoleIDAdmin, 9)
	assert.ErrorIs(t, err, ErrPetNotFound)
}
