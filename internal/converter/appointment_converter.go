package converter

import (
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO.
// Nested objects appear only when the relations are preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		Datetime:  appointment.Datetime,
		Status:    string(appointment.Status),
		Notes:     appointment.Notes,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Pet.ID != 0 {
		response.Pet = PetToResponse(&appointment.Pet)
	}
	if appointment.Clinic.ID != 0 {
		response.Clinic = ClinicToResponse(&appointment.Clinic)
	}
	if appointment.Veterinarian.ID != 0 {
		response.Veterinarian = VeterinarianToResponse(&appointment.Veterinarian)
	}
	if appointment.Treatment != nil {
		response.Treatment = TreatmentToResponse(appointment.Treatment)
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
