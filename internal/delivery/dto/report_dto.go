package dto

// Response DTOs

type StatusReportResponse struct {
	Rows []StatusReportRow `json:"rows"`
}

type StatusReportRow struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

type ClinicReportResponse struct {
	Rows []ClinicReportRow `json:"rows"`
}

type ClinicReportRow struct {
	Clinic string `json:"clinic"`
	Total  int64  `json:"total"`
}

type TreatmentReportResponse struct {
	Rows []TreatmentReportRow `json:"rows"`
}

type TreatmentReportRow struct {
	AppointmentID int64  `json:"appointment_id"`
	PetName       string `json:"pet_name"`
	Diagnosis     string `json:"diagnosis"`
	VetName       string `json:"vet_name"`
	LicenseNo     string `json:"license_no"`
}
