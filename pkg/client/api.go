package client

import (
	"context"
	"fmt"
	"net/http"

	"pawpoint/internal/delivery/dto"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AuthAPI covers registration, login and session lifecycle. Login and
// RefreshToken persist the returned tokens into the session; Logout clears it.
type AuthAPI struct {
	client *Client
}

func (a *AuthAPI) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := a.client.do(ctx, http.MethodPost, "/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := a.client.do(ctx, http.MethodPost, "/login", req, &out); err != nil {
		return nil, err
	}

	a.client.session.Set(&SessionState{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		UserID:       out.UserID,
		Role:         out.Role,
		FirstName:    out.FirstName,
		LastName:     out.LastName,
	})
	return &out, nil
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	req := dto.RefreshTokenRequest{RefreshToken: a.client.session.RefreshToken()}
	err := a.client.do(ctx, http.MethodPost, "/logout", req, nil)
	// The local session is dropped even when the server call fails.
	a.client.session.Clear()
	return err
}

func (a *AuthAPI) RefreshToken(ctx context.Context) (*dto.TokenResponse, error) {
	refresh := a.client.session.RefreshToken()
	if refresh == "" {
		return nil, &APIError{StatusCode: http.StatusUnauthorized, Message: "no refresh token"}
	}

	var out dto.TokenResponse
	req := dto.RefreshTokenRequest{RefreshToken: refresh}
	if err := a.client.do(ctx, http.MethodPost, "/refresh-token", req, &out); err != nil {
		return nil, err
	}

	a.client.session.Set(&SessionState{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		UserID:       out.UserID,
		Role:         out.Role,
		FirstName:    out.FirstName,
		LastName:     out.LastName,
	})
	return &out, nil
}

func (a *AuthAPI) Profile(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := a.client.do(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type PetsAPI struct {
	client *Client
}

func (a *PetsAPI) Create(ctx context.Context, req dto.CreatePetRequest) (*dto.PetResponse, error) {
	var out dto.PetResponse
	if err := a.client.do(ctx, http.MethodPost, "/pets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PetsAPI) List(ctx context.Context) (*dto.PetListResponse, error) {
	var out dto.PetListResponse
	if err := a.client.do(ctx, http.MethodGet, "/pets", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PetsAPI) Get(ctx context.Context, id int64) (*dto.PetResponse, error) {
	var out dto.PetResponse
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PetsAPI) Update(ctx context.Context, id int64, req dto.UpdatePetRequest) (*dto.PetResponse, error) {
	var out dto.PetResponse
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/pets/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PetsAPI) Delete(ctx context.Context, id int64) error {
	return a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/pets/%d", id), nil, nil)
}

type AppointmentsAPI struct {
	client *Client
}

func (a *AppointmentsAPI) Create(ctx context.Context, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentResponse
	if err := a.client.do(ctx, http.MethodPost, "/appointments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AppointmentsAPI) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	var out dto.AppointmentListResponse
	if err := a.client.do(ctx, http.MethodGet, "/appointments", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AppointmentsAPI) Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentResponse
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/appointments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AppointmentsAPI) Update(ctx context.Context, id int64, req dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentResponse
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AppointmentsAPI) UpdateStatus(ctx context.Context, id int64, status string) (*dto.AppointmentResponse, error) {
	var out dto.AppointmentResponse
	req := dto.UpdateAppointmentStatusRequest{Status: status}
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d/status", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type TreatmentsAPI struct {
	client *Client
}

func (a *TreatmentsAPI) Create(ctx context.Context, req dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	var out dto.TreatmentResponse
	if err := a.client.do(ctx, http.MethodPost, "/treatments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TreatmentsAPI) List(ctx context.Context) (*dto.TreatmentListResponse, error) {
	var out dto.TreatmentListResponse
	if err := a.client.do(ctx, http.MethodGet, "/treatments", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TreatmentsAPI) Get(ctx context.Context, id int64) (*dto.TreatmentResponse, error) {
	var out dto.TreatmentResponse
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/treatments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TreatmentsAPI) Update(ctx context.Context, id int64, req dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error) {
	var out dto.TreatmentResponse
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/treatments/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type VeterinariansAPI struct {
	client *Client
}

func (a *VeterinariansAPI) Create(ctx context.Context, req dto.CreateVeterinarianRequest) (*dto.VeterinarianResponse, error) {
	var out dto.VeterinarianResponse
	if err := a.client.do(ctx, http.MethodPost, "/veterinarians", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *VeterinariansAPI) List(ctx context.Context) (*dto.VeterinarianListResponse, error) {
	var out dto.VeterinarianListResponse
	if err := a.client.do(ctx, http.MethodGet, "/veterinarians", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *VeterinariansAPI) Get(ctx context.Context, id int64) (*dto.VeterinarianResponse, error) {
	var out dto.VeterinarianResponse
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/veterinarians/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *VeterinariansAPI) ListByClinic(ctx context.Context, clinicID int64) (*dto.VeterinarianListResponse, error) {
	var out dto.VeterinarianListResponse
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/veterinarians/clinic/%d", clinicID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *VeterinariansAPI) ListSchedules(ctx context.Context, vetID int64) (*dto.VetScheduleListResponse, error) {
	var out dto.VetScheduleListResponse
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/veterinarians/%d/schedules", vetID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *VeterinariansAPI) CreateSchedule(ctx context.Context, req dto.CreateVetScheduleRequest) (*dto.VetScheduleResponse, error) {
	var out dto.VetScheduleResponse
	if err := a.client.do(ctx, http.MethodPost, "/veterinarian-schedules", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ClinicsAPI struct {
	client *Client
}

func (a *ClinicsAPI) Create(ctx context.Context, req dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	var out dto.ClinicResponse
	if err := a.client.do(ctx, http.MethodPost, "/clinics", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClinicsAPI) List(ctx context.Context) (*dto.ClinicListResponse, error) {
	var out dto.ClinicListResponse
	if err := a.client.do(ctx, http.MethodGet, "/clinics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClinicsAPI) Get(ctx context.Context, id int64) (*dto.ClinicResponse, error) {
	var out dto.ClinicResponse
	if err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/clinics/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClinicsAPI) Update(ctx context.Context, id int64, req dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	var out dto.ClinicResponse
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/clinics/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type UsersAPI struct {
	client *Client
}

func (a *UsersAPI) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := a.client.do(ctx, http.MethodPost, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UsersAPI) List(ctx context.Context) (*dto.UserListResponse, error) {
	var out dto.UserListResponse
	if err := a.client.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UsersAPI) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := a.client.do(ctx, http.MethodGet, "/users/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type OwnersAPI struct {
	client *Client
}

func (a *OwnersAPI) Create(ctx context.Context, req dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	var out dto.OwnerResponse
	if err := a.client.do(ctx, http.MethodPost, "/owners", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *OwnersAPI) List(ctx context.Context) (*dto.OwnerListResponse, error) {
	var out dto.OwnerListResponse
	if err := a.client.do(ctx, http.MethodGet, "/owners", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ReportsAPI struct {
	client *Client
}

// ReportOverview bundles all admin reports for a dashboard render.
type ReportOverview struct {
	ByStatus   *dto.StatusReportResponse
	ByClinic   *dto.ClinicReportResponse
	Treatments *dto.TreatmentReportResponse
}

func (a *ReportsAPI) AppointmentsByStatus(ctx context.Context) (*dto.StatusReportResponse, error) {
	var out dto.StatusReportResponse
	if err := a.client.do(ctx, http.MethodGet, "/reports/appointments/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ReportsAPI) AppointmentsByClinic(ctx context.Context) (*dto.ClinicReportResponse, error) {
	var out dto.ClinicReportResponse
	if err := a.client.do(ctx, http.MethodGet, "/reports/appointments/clinic", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ReportsAPI) Treatments(ctx context.Context) (*dto.TreatmentReportResponse, error) {
	var out dto.TreatmentReportResponse
	if err := a.client.do(ctx, http.MethodGet, "/reports/treatments", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Overview fetches all three reports concurrently.
func (a *ReportsAPI) Overview(ctx context.Context) (*ReportOverview, error) {
	var overview ReportOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report, err := a.AppointmentsByStatus(gctx)
		if err != nil {
			return err
		}
		overview.ByStatus = report
		return nil
	})
	g.Go(func() error {
		report, err := a.AppointmentsByClinic(gctx)
		if err != nil {
			return err
		}
		overview.ByClinic = report
		return nil
	})
	g.Go(func() error {
		report, err := a.Treatments(gctx)
		if err != nil {
			return err
		}
		overview.Treatments = report
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
