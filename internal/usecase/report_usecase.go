package usecase

import (
	"context"

	"pawpoint/internal/converter"
	"pawpoint/internal/delivery/dto"
	"pawpoint/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ReportUsecase interface {
	AppointmentsByStatus(ctx context.Context) (*dto.StatusReportResponse, error)
	AppointmentsByClinic(ctx context.Context) (*dto.ClinicReportResponse, error)
	Treatments(ctx context.Context) (*dto.TreatmentReportResponse, error)
}

type reportUsecase struct {
	log        *logrus.Logger
	reportRepo repository.ReportRepository
}

func NewReportUsecase(log *logrus.Logger, reportRepo repository.ReportRepository) ReportUsecase {
	return &reportUsecase{
		log:        log,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) AppointmentsByStatus(ctx context.Context) (*dto.StatusReportResponse, error) {
	rows, err := u.reportRepo.CountAppointmentsByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to build status report: %+v", err)
		return nil, err
	}
	return converter.StatusCountsToResponse(rows), nil
}

func (u *reportUsecase) AppointmentsByClinic(ctx context.Context) (*dto.ClinicReportResponse, error) {
	rows, err := u.reportRepo.CountAppointmentsByClinic(ctx)
	if err != nil {
		u.log.Warnf("Failed to build clinic report: %+v", err)
		return nil, err
	}
	return converter.ClinicCountsToResponse(rows), nil
}

func (u *reportUsecase) Treatments(ctx context.Context) (*dto.TreatmentReportResponse, error) {
	rows, err := u.reportRepo.TreatmentRows(ctx)
	if err != nil {
		u.log.Warnf("Failed to build treatment report: %+v", err)
		return nil, err
	}
	return converter.TreatmentRowsToResponse(rows), nil
}
