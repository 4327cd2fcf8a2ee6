package handler

import (
	"encoding/json"
	"net/http"

	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/usecase"
	"pawpoint/pkg/response"
	"pawpoint/pkg/validator"
)

type TreatmentHandler struct {
	treatmentUsecase usecase.TreatmentUsecase
	validator        *validator.CustomValidator
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

func (h *TreatmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.treatmentUsecase.Create(r.Context(), userID, roleID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrTreatmentAccessDenied:
			response.Forbidden(w, err.Error())
		case usecase.ErrTreatmentExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create treatment record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment record created successfully", record)
}

func (h *TreatmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	records, err := h.treatmentUsecase.List(r.Context(), userID, roleID)
	if err != nil {
		response.InternalServerError(w, "Failed to list treatment records")
		return
	}

	response.Success(w, http.StatusOK, "Treatment records retrieved successfully", records)
}

func (h *TreatmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid treatment ID")
		return
	}

	record, err := h.treatmentUsecase.Get(r.Context(), userID, roleID, id)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment record not found")
		case usecase.ErrTreatmentAccessDenied:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get treatment record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment record retrieved successfully", record)
}

func (h *TreatmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid treatment ID")
		return
	}

	var req dto.UpdateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.treatmentUsecase.Update(r.Context(), userID, roleID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment record not found")
		case usecase.ErrTreatmentAccessDenied:
			response.Forbidden(w, err.Error())
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update treatment record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment record updated successfully", record)
}
