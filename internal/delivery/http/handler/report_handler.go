package handler

import (
	"net/http"

	"pawpoint/internal/usecase"
	"pawpoint/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

func (h *ReportHandler) AppointmentsByStatus(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.AppointmentsByStatus(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) AppointmentsByClinic(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.AppointmentsByClinic(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) Treatments(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.Treatments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}
