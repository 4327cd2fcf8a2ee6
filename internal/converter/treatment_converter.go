package converter

import (
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
)

// TreatmentToResponse converts a TreatmentRecord entity to its DTO
func TreatmentToResponse(record *entity.TreatmentRecord) *dto.TreatmentResponse {
	if record == nil {
		return nil
	}

	response := &dto.TreatmentResponse{
		ID:            record.ID,
		Date:          record.Date.Format("2006-01-02"),
		Diagnosis:     record.Diagnosis,
		Note:          record.Note,
		Cost:          record.Cost,
		AppointmentID: record.AppointmentID,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}

	if record.Appointment.ID != 0 {
		response.Appointment = AppointmentToResponse(&record.Appointment)
	}

	return response
}

func TreatmentsToResponses(records []entity.TreatmentRecord) []dto.TreatmentResponse {
	responses := make([]dto.TreatmentResponse, len(records))
	for i := range records {
		responses[i] = *TreatmentToResponse(&records[i])
	}
	return responses
}
