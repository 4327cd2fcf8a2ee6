package converter

import (
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
)

// OwnerToResponse converts a PetOwner entity to OwnerResponse DTO
func OwnerToResponse(owner *entity.PetOwner) *dto.OwnerResponse {
	if owner == nil {
		return nil
	}

	response := &dto.OwnerResponse{
		ID:        owner.ID,
		UserID:    owner.UserID,
		PetID:     owner.PetID,
		Address:   owner.Address,
		CreatedAt: owner.CreatedAt,
	}

	if owner.User.Email != "" {
		response.OwnerName = owner.User.FullName()
	}
	if owner.Pet.Name != "" {
		response.PetName = owner.Pet.Name
	}

	return response
}

func OwnersToResponses(owners []entity.PetOwner) []dto.OwnerResponse {
	responses := make([]dto.OwnerResponse, len(owners))
	for i := range owners {
		responses[i] = *OwnerToResponse(&owners[i])
	}
	return responses
}
