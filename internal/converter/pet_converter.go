package converter

import (
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
)

// PetToResponse converts a Pet entity to PetResponse DTO
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	response := &dto.PetResponse{
		ID:        pet.ID,
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		Gender:    pet.Gender,
		Age:       pet.Age,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}

	if !pet.BirthDate.IsZero() {
		response.BirthDate = pet.BirthDate.Format("2006-01-02")
	}

	if len(pet.Owners) > 0 {
		response.Owners = OwnersToResponses(pet.Owners)
	}

	return response
}

func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i := range pets {
		responses[i] = *PetToResponse(&pets[i])
	}
	return responses
}
