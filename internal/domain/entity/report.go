package entity

// Report projections returned by the reporting queries. Domain-level types so
// the repository layer stays decoupled from delivery DTOs.

// AppointmentStatusCount is one row of the appointments-by-status report.
type AppointmentStatusCount struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// AppointmentClinicCount is one row of the appointments-by-clinic report.
type AppointmentClinicCount struct {
	Clinic string `json:"clinic"`
	Total  int64  `json:"total"`
}

// TreatmentReportRow is one row of the treatment report join.
type TreatmentReportRow struct {
	AppointmentID int64  `json:"appointment_id"`
	PetName       string `json:"pet_name"`
	Diagnosis     string `json:"diagnosis"`
	VetName       string `json:"vet_name"`
	LicenseNo     string `json:"license_no"`
}
