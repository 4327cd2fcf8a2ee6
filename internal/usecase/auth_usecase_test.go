package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawpoint/config"
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
	"pawpoint/internal/infrastructure/cache"
	"pawpoint/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func newAuthUsecaseForTest() (AuthUsecase, *mockUserRepository, *mockVeterinarianRepository) {
	userRepo := &mockUserRepository{}
	vetRepo := &mockVeterinarianRepository{}
	u := NewAuthUsecase(
		newTestLogger(),
		userRepo,
		vetRepo,
		newTestJWTService(),
		cache.NewMemoryTokenStore(),
		noopAuditService{},
	)
	return u, userRepo, vetRepo
}

func TestAuthUsecase_Register_PetOwner(t *testing.T) {
	u, userRepo, _ := newAuthUsecaseForTest()

	var created *entity.User
	userRepo.CreateFunc = func(_ context.Context, user *entity.User) error {
		user.ID = uuid.New()
		created = user
		return nil
	}

	resp, err := u.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Jamie",
		LastName:  "Rivera",
		Email:     "jamie@example.com",
		Password:  "secret123",
		Role:      "owner",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.RolePetOwner, resp.Role)
	assert.Equal(t, entity.RoleIDPetOwner, created.RoleID)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestAuthUsecase_Register_AdminRoleRejected(t *testing.T) {
	u, _, _ := newAuthUsecaseForTest()

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Eve",
		LastName:  "Admin",
		Email:     "eve@example.com",
		Password:  "secret123",
		Role:      "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthUsecase_Register_VetRequiresLicense(t *testing.T) {
	u, _, _ := newAuthUsecaseForTest()

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Sam",
		LastName:  "Vet",
		Email:     "sam@example.com",
		Password:  "secret123",
		Role:      "vet",
	})

	assert.ErrorIs(t, err, ErrLicenseRequired)
}

func TestAuthUsecase_Register_VetClaimsLicense(t *testing.T) {
	u, userRepo, vetRepo := newAuthUsecaseForTest()

	userRepo.CreateFunc = func(_ context.Context, user *entity.User) error {
		user.ID = uuid.New()
		return nil
	}
	vetRepo.FindByLicenseFunc = func(_ context.Context, licenseNo string) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: 7, LicenseNo: licenseNo, ClinicID: 5}, nil
	}

	var claimed *entity.Veterinarian
	vetRepo.UpdateFunc = func(_ context.Context, vet *entity.Veterinarian) error {
		claimed = vet
		return nil
	}

	resp, err := u.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Sam",
		LastName:  "Vet",
		Email:     "sam@example.com",
		Password:  "secret123",
		Role:      "veterinarian",
		LicenseNo: "VET-001",
		ClinicID:  5,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleVeterinarian, resp.Role)
	assert.NotNil(t, claimed)
	assert.NotNil(t, claimed.UserID)
}

func TestAuthUsecase_Register_LicenseAlreadyClaimed(t *testing.T) {
	u, _, vetRepo := newAuthUsecaseForTest()
	otherUserID := uuid.New()

	vetRepo.FindByLicenseFunc = func(_ context.Context, licenseNo string) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: 7, LicenseNo: licenseNo, UserID: &otherUserID, ClinicID: 5}, nil
	}

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Sam",
		LastName:  "Vet",
		Email:     "sam@example.com",
		Password:  "secret123",
		Role:      "veterinarian",
		LicenseNo: "VET-001",
		ClinicID:  5,
	})

	assert.ErrorIs(t, err, ErrLicenseAlreadyClaimed)
}

func TestAuthUsecase_Register_LicenseClinicMismatch(t *testing.T) {
	u, _, vetRepo := newAuthUsecaseForTest()

	vetRepo.FindByLicenseFunc = func(_ context.Context, licenseNo string) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: 7, LicenseNo: licenseNo, ClinicID: 99}, nil
	}

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Sam",
		LastName:  "Vet",
		Email:     "sam@example.com",
		Password:  "secret123",
		Role:      "veterinarian",
		LicenseNo: "VET-001",
		ClinicID:  5,
	})

	assert.ErrorIs(t, err, ErrLicenseClinicMismatch)
}

func TestAuthUsecase_Register_CompensatesFailedClaim(t *testing.T) {
	u, userRepo, vetRepo := newAuthUsecaseForTest()

	userRepo.CreateFunc = func(_ context.Context, user *entity.User) error {
		user.ID = uuid.New()
		return nil
	}
	vetRepo.FindByLicenseFunc = func(_ context.Context, licenseNo string) (*entity.Veterinarian, error) {
		return &entity.Veterinarian{ID: 7, LicenseNo: licenseNo, ClinicID: 5}, nil
	}
	vetRepo.UpdateFunc = func(_ context.Context, _ *entity.Veterinarian) error {
		return errors.New("connection reset")
	}

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Sam",
		LastName:  "Vet",
		Email:     "sam@example.com",
		Password:  "secret123",
		Role:      "veterinarian",
		LicenseNo: "VET-001",
		ClinicID:  5,
	})

	assert.Error(t, err)
	// The half-registered account must be removed so the email stays usable.
	assert.Equal(t, 1, userRepo.DeleteCalls)
}

func hashedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &entity.User{
		ID:           uuid.New(),
		RoleID:       entity.RoleIDPetOwner,
		FirstName:    "Jamie",
		LastName:     "Rivera",
		Email:        "jamie@example.com",
		PasswordHash: string(hash),
	}
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	u, userRepo, _ := newAuthUsecaseForTest()
	user := hashedUser(t, "secret123")

	userRepo.FindByEmailFunc = func(_ context.Context, _ string) (*entity.User, error) {
		return user, nil
	}

	resp, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, entity.RolePetOwner, resp.Role)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	u, userRepo, _ := newAuthUsecaseForTest()
	user := hashedUser(t, "secret123")

	userRepo.FindByEmailFunc = func(_ context.Context, _ string) (*entity.User, error) {
		return user, nil
	}

	_, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	u, _, _ := newAuthUsecaseForTest()

	_, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_RefreshToken_RotatesSingleUse(t *testing.T) {
	u, userRepo, _ := newAuthUsecaseForTest()
	user := hashedUser(t, "secret123")

	userRepo.FindByEmailFunc = func(_ context.Context, _ string) (*entity.User, error) {
		return user, nil
	}

	login, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	rotated, err := u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// The consumed refresh token is revoked.
	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthUsecase_RefreshToken_ReuseRevokesAllSessions(t *testing.T) {
	u, userRepo, _ := newAuthUsecaseForTest()
	user := hashedUser(t, "secret123")

	userRepo.FindByEmailFunc = func(_ context.Context, _ string) (*entity.User, error) {
		return user, nil
	}

	login, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	rotated, err := u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.NoError(t, err)

	// Replaying the consumed token nukes every session for the account.
	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: rotated.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthUsecase_RefreshToken_RejectsAccessToken(t *testing.T) {
	u, userRepo, _ := newAuthUsecaseForTest()
	user := hashedUser(t, "secret123")

	userRepo.FindByEmailFunc = func(_ context.Context, _ string) (*entity.User, error) {
		return user, nil
	}

	login, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUsecase_GetCurrentUser_NotFound(t *testing.T) {
	u, _, _ := newAuthUsecaseForTest()

	_, err := u.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
