package converter

import (
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/entity"
)

func StatusCountsToResponse(rows []entity.AppointmentStatusCount) *dto.StatusReportResponse {
	out := make([]dto.StatusReportRow, len(rows))
	for i, row := range rows {
		out[i] = dto.StatusReportRow{Status: row.Status, Total: row.Total}
	}
	return &dto.StatusReportResponse{Rows: out}
}

func ClinicCountsToResponse(rows []entity.AppointmentClinicCount) *dto.ClinicReportResponse {
	out := make([]dto.ClinicReportRow, len(rows))
	for i, row := range rows {
		out[i] = dto.ClinicReportRow{Clinic: row.Clinic, Total: row.Total}
	}
	return &dto.ClinicReportResponse{Rows: out}
}

func TreatmentRowsToResponse(rows []entity.TreatmentReportRow) *dto.TreatmentReportResponse {
	out := make([]dto.TreatmentReportRow, len(rows))
	for i, row := range rows {
		out[i] = dto.TreatmentReportRow{
			AppointmentID: row.AppointmentID,
			PetName:       row.PetName,
			Diagnosis:     row.Diagnosis,
			VetName:       row.VetName,
			LicenseNo:     row.LicenseNo,
		}
	}
	return &dto.TreatmentReportResponse{Rows: out}
}
