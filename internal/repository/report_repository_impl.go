package repository

import (
	"context"

	"pawpoint/internal/domain/entity"
	domainRepo "pawpoint/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountAppointmentsByStatus(ctx context.Context) ([]entity.AppointmentStatusCount, error) {
	var rows []entity.AppointmentStatusCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) CountAppointmentsByClinic(ctx context.Context) ([]entity.AppointmentClinicCount, error) {
	var rows []entity.AppointmentClinicCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("clinics.name AS clinic, COUNT(appointments.id) AS total").
		Joins("JOIN clinics ON clinics.id = appointments.clinic_id").
		Group("clinics.id, clinics.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) TreatmentRows(ctx context.Context) ([]entity.TreatmentReportRow, error) {
	var rows []entity.TreatmentReportRow
	err := r.db.WithContext(ctx).Model(&entity.TreatmentRecord{}).
		Select(`appointments.id AS appointment_id,
			pets.name AS pet_name,
			treatment_records.diagnosis,
			CONCAT(users.first_name, ' ', users.last_name) AS vet_name,
			veterinarians.license_no`).
		Joins("JOIN appointments ON appointments.id = treatment_records.appointment_id").
		Joins("JOIN pets ON pets.id = appointments.pet_id").
		Joins("LEFT JOIN veterinarians ON veterinarians.id = appointments.veterinarian_id").
		Joins("LEFT JOIN users ON users.id = veterinarians.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
