package repository

import (
	"context"

	"pawpoint/internal/domain/entity"
)

type ReportRepository interface {
	CountAppointmentsByStatus(ctx context.Context) ([]entity.AppointmentStatusCount, error)
	CountAppointmentsByClinic(ctx context.Context) ([]entity.AppointmentClinicCount, error)
	TreatmentRows(ctx context.Context) ([]entity.TreatmentReportRow, error)
}
