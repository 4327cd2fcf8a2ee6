package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawpoint/config"
	deliveryHttp "pawpoint/internal/delivery/http"
	"pawpoint/internal/delivery/http/handler"
	"pawpoint/internal/delivery/http/middleware"
	"pawpoint/internal/infrastructure/cache"
	"pawpoint/internal/infrastructure/database"
	"pawpoint/internal/repository"
	"pawpoint/internal/service"
	"pawpoint/internal/usecase"
	"pawpoint/pkg/jwt"
	"pawpoint/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates an App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires the repository, usecase, and delivery layers and
// returns the configured HTTP server.
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	tokenStore := cache.NewRedisTokenStore(redisClient)
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	petRepo := repository.NewPetRepository(db)
	ownerRepo := repository.NewPetOwnerRepository(db)
	clinicRepo := repository.NewClinicRepository(db)
	vetRepo := repository.NewVeterinarianRepository(db)
	scheduleRepo := repository.NewVetScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	treatmentRepo := repository.NewTreatmentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Domain services
	availabilityService := service.NewAvailabilityService()
	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, vetRepo, jwtService, tokenStore, auditService)
	petUsecase := usecase.NewPetUsecase(log, petRepo, ownerRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, vetRepo, scheduleRepo, petRepo, ownerRepo, availabilityService, auditService)
	treatmentUsecase := usecase.NewTreatmentUsecase(log, treatmentRepo, appointmentRepo, auditService)
	clinicUsecase := usecase.NewClinicUsecase(log, clinicRepo, auditService)
	vetUsecase := usecase.NewVeterinarianUsecase(log, vetRepo, clinicRepo, scheduleRepo, auditService)
	scheduleUsecase := usecase.NewVetScheduleUsecase(log, scheduleRepo, vetRepo, auditService)
	userUsecase := usecase.NewUserUsecase(log, userRepo, auditService)
	ownerUsecase := usecase.NewOwnerUsecase(log, ownerRepo, userRepo, petRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(log, reportRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	petHandler := handler.NewPetHandler(petUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	treatmentHandler := handler.NewTreatmentHandler(treatmentUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	vetHandler := handler.NewVeterinarianHandler(vetUsecase, scheduleUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	ownerHandler := handler.NewOwnerHandler(ownerUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		petHandler,
		appointmentHandler,
		treatmentHandler,
		clinicHandler,
		vetHandler,
		userHandler,
		ownerHandler,
		reportHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes database and redis connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
