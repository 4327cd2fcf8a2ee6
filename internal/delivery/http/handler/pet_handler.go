package handler

import (
	"encoding/json"
	"net/http"

	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/usecase"
	"pawpoint/pkg/response"
	"pawpoint/pkg/validator"
)

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Create(r.Context(), userID, roleID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create pet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pet created successfully", pet)
}

func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	pets, err := h.petUsecase.List(r.Context(), userID, roleID)
	if err != nil {
		response.InternalServerError(w, "Failed to list pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	petID, err := parseIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	pet, err := h.petUsecase.Get(r.Context(), userID, roleID, petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetAccessDenied:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet retrieved successfully", pet)
}

func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	petID, err := parseIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	var req dto.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Update(r.Context(), userID, roleID, petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetAccessDenied:
			response.Forbidden(w, err.Error())
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet updated successfully", pet)
}

func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, roleID, ok := identity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	petID, err := parseIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	if err := h.petUsecase.Delete(r.Context(), userID, roleID, petID); err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetAccessDenied:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet deleted successfully", nil)
}
