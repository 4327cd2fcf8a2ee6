package usecase

import (
	"context"
	"io"
	"time"

	"pawpoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// noopAuditService discards audit entries.
type noopAuditService struct{}

func (noopAuditService) Log(context.Context, *uuid.UUID, string, entity.JSON) {}

// mockUserRepository implements repository.UserRepository with function fields.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAllFunc     func(ctx context.Context) ([]entity.User, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	DeleteCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockVeterinarianRepository implements repository.VeterinarianRepository.
type mockVeterinarianRepository struct {
	CreateFunc        func(ctx context.Context, vet *entity.Veterinarian) error
	FindByIDFunc      func(ctx context.Context, id int64) (*entity.Veterinarian, error)
	FindAllFunc       func(ctx context.Context) ([]entity.Veterinarian, error)
	FindByClinicFunc  func(ctx context.Context, clinicID int64) ([]entity.Veterinarian, error)
	FindByLicenseFunc func(ctx context.Context, licenseNo string) (*entity.Veterinarian, error)
	FindByUserIDFunc  func(ctx context.Context, userID uuid.UUID) (*entity.Veterinarian, error)
	UpdateFunc        func(ctx context.Context, vet *entity.Veterinarian) error
}

func (m *mockVeterinarianRepository) Create(ctx context.Context, vet *entity.Veterinarian) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vet)
	}
	return nil
}

func (m *mockVeterinarianRepository) FindByID(ctx context.Context, id int64) (*entity.Veterinarian, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockVeterinarianRepository) FindAll(ctx context.Context) ([]entity.Veterinarian, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockVeterinarianRepository) FindByClinicID(ctx context.Context, clinicID int64) ([]entity.Veterinarian, error) {
	if m.FindByClinicFunc != nil {
		return m.FindByClinicFunc(ctx, clinicID)
	}
	return nil, nil
}

func (m *mockVeterinarianRepository) FindByLicense(ctx context.Context, licenseNo string) (*entity.Veterinarian, error) {
	if m.FindByLicenseFunc != nil {
		return m.FindByLicenseFunc(ctx, licenseNo)
	}
	return nil, nil
}

func (m *mockVeterinarianRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Veterinarian, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockVeterinarianRepository) Update(ctx context.Context, vet *entity.Veterinarian) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vet)
	}
	return nil
}

// mockVetScheduleRepository implements repository.VetScheduleRepository.
type mockVetScheduleRepository struct {
	CreateFunc       func(ctx context.Context, schedule *entity.VetSchedule) error
	FindByVetIDFunc  func(ctx context.Context, vetID int64) ([]entity.VetSchedule, error)
	ExistsForDayFunc func(ctx context.Context, vetID int64, day string) (bool, error)
}

func (m *mockVetScheduleRepository) Create(ctx context.Context, schedule *entity.VetSchedule) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, schedule)
	}
	return nil
}

func (m *mockVetScheduleRepository) FindByVeterinarianID(ctx context.Context, vetID int64) ([]entity.VetSchedule, error) {
	if m.FindByVetIDFunc != nil {
		return m.FindByVetIDFunc(ctx, vetID)
	}
	return nil, nil
}

func (m *mockVetScheduleRepository) ExistsForDay(ctx context.Context, vetID int64, day string) (bool, error) {
	if m.ExistsForDayFunc != nil {
		return m.ExistsForDayFunc(ctx, vetID, day)
	}
	return false, nil
}

// mockPetRepository implements repository.PetRepository.
type mockPetRepository struct {
	CreateFunc            func(ctx context.Context, pet *entity.Pet) error
	FindByIDFunc          func(ctx context.Context, id int64) (*entity.Pet, error)
	FindAllFunc           func(ctx context.Context) ([]entity.Pet, error)
	FindByOwnerUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]entity.Pet, error)
	UpdateFunc            func(ctx context.Context, pet *entity.Pet) error
	DeleteFunc            func(ctx context.Context, id int64) (int64, error)
}

func (m *mockPetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pet)
	}
	return nil
}

func (m *mockPetRepository) FindByID(ctx context.Context, id int64) (*entity.Pet, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPetRepository) FindAll(ctx context.Context) ([]entity.Pet, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPetRepository) FindByOwnerUserID(ctx context.Context, userID uuid.UUID) ([]entity.Pet, error) {
	if m.FindByOwnerUserIDFunc != nil {
		return m.FindByOwnerUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPetRepository) Update(ctx context.Context, pet *entity.Pet) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, pet)
	}
	return nil
}

func (m *mockPetRepository) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

// mockPetOwnerRepository implements repository.PetOwnerRepository.
type mockPetOwnerRepository struct {
	CreateFunc             func(ctx context.Context, owner *entity.PetOwner) error
	FindAllFunc            func(ctx context.Context) ([]entity.PetOwner, error)
	ExistsByPetAndUserFunc func(ctx context.Context, petID int64, userID uuid.UUID) (bool, error)
}

func (m *mockPetOwnerRepository) Create(ctx context.Context, owner *entity.PetOwner) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, owner)
	}
	return nil
}

func (m *mockPetOwnerRepository) FindAll(ctx context.Context) ([]entity.PetOwner, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPetOwnerRepository) ExistsByPetAndUser(ctx context.Context, petID int64, userID uuid.UUID) (bool, error) {
	if m.ExistsByPetAndUserFunc != nil {
		return m.ExistsByPetAndUserFunc(ctx, petID, userID)
	}
	return false, nil
}

// mockAppointmentRepository implements repository.AppointmentRepository.
type mockAppointmentRepository struct {
	CreateFunc            func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc          func(ctx context.Context, id int64) (*entity.Appointment, error)
	FindAllFunc           func(ctx context.Context) ([]entity.Appointment, error)
	FindByOwnerUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]entity.Appointment, error)
	FindByVetUserIDFunc   func(ctx context.Context, userID uuid.UUID) ([]entity.Appointment, error)
	UpdateFunc            func(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatusFunc      func(ctx context.Context, id int64, status entity.AppointmentStatus) error

	UpdateStatusCalls int
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindByOwnerUserID(ctx context.Context, userID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByOwnerUserIDFunc != nil {
		return m.FindByOwnerUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindByVetUserID(ctx context.Context, userID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByVetUserIDFunc != nil {
		return m.FindByVetUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepository) UpdateStatus(ctx context.Context, id int64, status entity.AppointmentStatus) error {
	m.UpdateStatusCalls++
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

// mockTreatmentRepository implements repository.TreatmentRepository.
type mockTreatmentRepository struct {
	CreateFunc                func(ctx context.Context, record *entity.TreatmentRecord) error
	FindByIDFunc              func(ctx context.Context, id int64) (*entity.TreatmentRecord, error)
	FindAllFunc               func(ctx context.Context) ([]entity.TreatmentRecord, error)
	FindByVetUserIDFunc       func(ctx context.Context, userID uuid.UUID) ([]entity.TreatmentRecord, error)
	ExistsByAppointmentIDFunc func(ctx context.Context, appointmentID int64) (bool, error)
	UpdateFunc                func(ctx context.Context, record *entity.TreatmentRecord) error
}

func (m *mockTreatmentRepository) Create(ctx context.Context, record *entity.TreatmentRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *mockTreatmentRepository) FindByID(ctx context.Context, id int64) (*entity.TreatmentRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTreatmentRepository) FindAll(ctx context.Context) ([]entity.TreatmentRecord, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTreatmentRepository) FindByVetUserID(ctx context.Context, userID uuid.UUID) ([]entity.TreatmentRecord, error) {
	if m.FindByVetUserIDFunc != nil {
		return m.FindByVetUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTreatmentRepository) ExistsByAppointmentID(ctx context.Context, appointmentID int64) (bool, error) {
	if m.ExistsByAppointmentIDFunc != nil {
		return m.ExistsByAppointmentIDFunc(ctx, appointmentID)
	}
	return false, nil
}

func (m *mockTreatmentRepository) Update(ctx context.Context, record *entity.TreatmentRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

// mondayMorning is a Monday 10:00 UTC timestamp used by booking tests.
var mondayMorning = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
