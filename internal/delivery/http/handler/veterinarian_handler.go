package handler

import (
	"encoding/json"
	"net/http"

	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/usecase"
	"pawpoint/pkg/response"
	"pawpoint/pkg/validator"
)

type VeterinarianHandler struct {
	vetUsecase      usecase.VeterinarianUsecase
	scheduleUsecase usecase.VetScheduleUsecase
	validator       *validator.CustomValidator
}

func NewVeterinarianHandler(
	vetUsecase usecase.VeterinarianUsecase,
	scheduleUsecase usecase.VetScheduleUsecase,
	validator *validator.CustomValidator,
) *VeterinarianHandler {
	return &VeterinarianHandler{
		vetUsecase:      vetUsecase,
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *VeterinarianHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateVeterinarianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vet, err := h.vetUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrLicenseAlreadyExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create veterinarian")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Veterinarian created successfully", vet)
}

func (h *VeterinarianHandler) List(w http.ResponseWriter, r *http.Request) {
	vets, err := h.vetUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list veterinarians")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarians retrieved successfully", vets)
}

func (h *VeterinarianHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid veterinarian ID")
		return
	}

	vet, err := h.vetUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Veterinarian not found")
		default:
			response.InternalServerError(w, "Failed to get veterinarian")
		}
		return
	}

	response.Success(w, http.StatusOK, "Veterinarian retrieved successfully", vet)
}

func (h *VeterinarianHandler) ListByClinic(w http.ResponseWriter, r *http.Request) {
	clinicID, err := parseIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	vets, err := h.vetUsecase.ListByClinic(r.Context(), clinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to list veterinarians")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarians retrieved successfully", vets)
}

func (h *VeterinarianHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	vetID, err := parseIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid veterinarian ID")
		return
	}

	schedules, err := h.vetUsecase.ListSchedules(r.Context(), vetID)
	if err != nil {
		switch err {
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Veterinarian not found")
		default:
			response.InternalServerError(w, "Failed to list schedules")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *VeterinarianHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateVetScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Create(r.Context(), userID, roleID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDay, usecase.ErrInvalidWindow:
			response.BadRequest(w, err.Error())
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Veterinarian not found")
		case usecase.ErrScheduleAccessDenied:
			response.Forbidden(w, err.Error())
		case usecase.ErrScheduleDayTaken:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}
