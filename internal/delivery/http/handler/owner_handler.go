package handler

import (
	"encoding/json"
	"net/http"

	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/usecase"
	"pawpoint/pkg/response"
	"pawpoint/pkg/validator"
)

type OwnerHandler struct {
	ownerUsecase usecase.OwnerUsecase
	validator    *validator.CustomValidator
}

func NewOwnerHandler(ownerUsecase usecase.OwnerUsecase, validator *validator.CustomValidator) *OwnerHandler {
	return &OwnerHandler{
		ownerUsecase: ownerUsecase,
		validator:    validator,
	}
}

func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	owner, err := h.ownerUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrOwnershipExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create ownership")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Ownership created successfully", owner)
}

func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	owners, err := h.ownerUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list owners")
		return
	}

	response.Success(w, http.StatusOK, "Owners retrieved successfully", owners)
}
