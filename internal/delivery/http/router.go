package http

import (
	"net/http"

	"pawpoint/internal/delivery/http/handler"
	"pawpoint/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	petHandler         *handler.PetHandler
	appointmentHandler *handler.AppointmentHandler
	treatmentHandler   *handler.TreatmentHandler
	clinicHandler      *handler.ClinicHandler
	vetHandler         *handler.VeterinarianHandler
	userHandler        *handler.UserHandler
	ownerHandler       *handler.OwnerHandler
	reportHandler      *handler.ReportHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	petHandler *handler.PetHandler,
	appointmentHandler *handler.AppointmentHandler,
	treatmentHandler *handler.TreatmentHandler,
	clinicHandler *handler.ClinicHandler,
	vetHandler *handler.VeterinarianHandler,
	userHandler *handler.UserHandler,
	ownerHandler *handler.OwnerHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		petHandler:         petHandler,
		appointmentHandler: appointmentHandler,
		treatmentHandler:   treatmentHandler,
		clinicHandler:      clinicHandler,
		vetHandler:         vetHandler,
		userHandler:        userHandler,
		ownerHandler:       ownerHandler,
		reportHandler:      reportHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

// authed wraps a handler with bearer authentication.
func (r *Router) authed(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

// gated wraps a handler with authentication and a role check.
func (r *Router) gated(role func(http.Handler) http.Handler, h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(role(h))
}

func (r *Router) Setup() *mux.Router {
	m := r.router

	// Health check
	m.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth (public)
	m.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	m.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	m.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth (protected)
	m.Handle("/logout", r.authed(r.authHandler.Logout)).Methods(http.MethodPost)
	m.Handle("/profile", r.authed(r.authHandler.GetProfile)).Methods(http.MethodGet)

	// Pets (pet owner or admin)
	m.Handle("/pets", r.gated(middleware.RequireOwnerOrAdmin, r.petHandler.Create)).Methods(http.MethodPost)
	m.Handle("/pets", r.gated(middleware.RequireOwnerOrAdmin, r.petHandler.List)).Methods(http.MethodGet)
	m.Handle("/pets/{id}", r.gated(middleware.RequireOwnerOrAdmin, r.petHandler.Get)).Methods(http.MethodGet)
	m.Handle("/pets/{id}", r.gated(middleware.RequireOwnerOrAdmin, r.petHandler.Update)).Methods(http.MethodPut)
	m.Handle("/pets/{id}", r.gated(middleware.RequireOwnerOrAdmin, r.petHandler.Delete)).Methods(http.MethodDelete)

	// Appointments
	m.Handle("/appointments", r.gated(middleware.RequireOwnerOrAdmin, r.appointmentHandler.Create)).Methods(http.MethodPost)
	m.Handle("/appointments", r.authed(r.appointmentHandler.List)).Methods(http.MethodGet)
	m.Handle("/appointments/{id}", r.authed(r.appointmentHandler.Get)).Methods(http.MethodGet)
	m.Handle("/appointments/{id}", r.gated(middleware.RequireVetOrAdmin, r.appointmentHandler.Update)).Methods(http.MethodPut)
	m.Handle("/appointments/{id}/status", r.gated(middleware.RequireVetOrAdmin, r.appointmentHandler.UpdateStatus)).Methods(http.MethodPut)

	// Treatment records (vet or admin)
	m.Handle("/treatments", r.gated(middleware.RequireVetOrAdmin, r.treatmentHandler.Create)).Methods(http.MethodPost)
	m.Handle("/treatments", r.gated(middleware.RequireVetOrAdmin, r.treatmentHandler.List)).Methods(http.MethodGet)
	m.Handle("/treatments/{id}", r.gated(middleware.RequireVetOrAdmin, r.treatmentHandler.Get)).Methods(http.MethodGet)
	m.Handle("/treatments/{id}", r.gated(middleware.RequireVetOrAdmin, r.treatmentHandler.Update)).Methods(http.MethodPut)

	// Clinics
	m.Handle("/clinics", r.gated(middleware.RequireAdmin, r.clinicHandler.Create)).Methods(http.MethodPost)
	m.Handle("/clinics", r.authed(r.clinicHandler.List)).Methods(http.MethodGet)
	m.Handle("/clinics/{id}", r.authed(r.clinicHandler.Get)).Methods(http.MethodGet)
	m.Handle("/clinics/{id}", r.gated(middleware.RequireAdmin, r.clinicHandler.Update)).Methods(http.MethodPut)

	// Veterinarians. The clinic listing route is registered before the
	// {id} route so "clinic" is never parsed as an ID.
	m.Handle("/veterinarians", r.gated(middleware.RequireAdmin, r.vetHandler.Create)).Methods(http.MethodPost)
	m.Handle("/veterinarians", r.authed(r.vetHandler.List)).Methods(http.MethodGet)
	m.Handle("/veterinarians/clinic/{id}", r.authed(r.vetHandler.ListByClinic)).Methods(http.MethodGet)
	m.Handle("/veterinarians/{id}/schedules", r.authed(r.vetHandler.ListSchedules)).Methods(http.MethodGet)
	m.Handle("/veterinarians/{id}", r.authed(r.vetHandler.Get)).Methods(http.MethodGet)
	m.Handle("/veterinarian-schedules", r.gated(middleware.RequireVetOrAdmin, r.vetHandler.CreateSchedule)).Methods(http.MethodPost)

	// Owners
	m.Handle("/owners", r.gated(middleware.RequireOwnerOrAdmin, r.ownerHandler.Create)).Methods(http.MethodPost)
	m.Handle("/owners", r.gated(middleware.RequireAdmin, r.ownerHandler.List)).Methods(http.MethodGet)

	// Users (admin)
	m.Handle("/users", r.gated(middleware.RequireAdmin, r.userHandler.List)).Methods(http.MethodGet)
	m.Handle("/users", r.gated(middleware.RequireAdmin, r.userHandler.Create)).Methods(http.MethodPost)
	m.Handle("/users/{id}", r.gated(middleware.RequireAdmin, r.userHandler.Get)).Methods(http.MethodGet)

	// Reports (admin)
	m.Handle("/reports/appointments/status", r.gated(middleware.RequireAdmin, r.reportHandler.AppointmentsByStatus)).Methods(http.MethodGet)
	m.Handle("/reports/appointments/clinic", r.gated(middleware.RequireAdmin, r.reportHandler.AppointmentsByClinic)).Methods(http.MethodGet)
	m.Handle("/reports/treatments", r.gated(middleware.RequireAdmin, r.reportHandler.Treatments)).Methods(http.MethodGet)

	// Audit trail (admin)
	m.Handle("/audit-logs", r.gated(middleware.RequireAdmin, r.auditLogHandler.List)).Methods(http.MethodGet)

	m.Use(r.corsMiddleware.Handle)

	return m
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
