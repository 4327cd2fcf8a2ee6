package converter

import (
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
)

// VeterinarianToResponse converts a Veterinarian entity to its DTO.
// Name and email are filled only when the user relation is loaded and claimed.
func VeterinarianToResponse(vet *entity.Veterinarian) *dto.VeterinarianResponse {
	if vet == nil {
		return nil
	}

	response := &dto.VeterinarianResponse{
		ID:        vet.ID,
		LicenseNo: vet.LicenseNo,
		UserID:    vet.UserID,
		ClinicID:  vet.ClinicID,
		CreatedAt: vet.CreatedAt,
	}

	if vet.User != nil {
		response.Name = vet.User.FullName()
		response.Email = vet.User.Email
	}
	if vet.Clinic.Name != "" {
		response.ClinicName = vet.Clinic.Name
	}

	return response
}

func VeterinariansToResponses(vets []entity.Veterinarian) []dto.VeterinarianResponse {
	responses := make([]dto.VeterinarianResponse, len(vets))
	for i := range vets {
		responses[i] = *VeterinarianToResponse(&vets[i])
	}
	return responses
}

// VetScheduleToResponse converts a VetSchedule entity to its DTO
func VetScheduleToResponse(schedule *entity.VetSchedule) *dto.VetScheduleResponse {
	if schedule == nil {
		return nil
	}

	return &dto.VetScheduleResponse{
		ID:             schedule.ID,
		VeterinarianID: schedule.VeterinarianID,
		Day:            schedule.Day,
		StartTime:      schedule.StartTime,
		EndTime:        schedule.EndTime,
	}
}

func VetSchedulesToResponses(schedules []entity.VetSchedule) []dto.VetScheduleResponse {
	responses := make([]dto.VetScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *VetScheduleToResponse(&schedules[i])
	}
	return responses
}
