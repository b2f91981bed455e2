package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clinic-management/config"
	deliveryHttp "go-clinic-management/internal/delivery/http"
	"go-clinic-management/internal/delivery/http/handler"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/infrastructure/cache"
	"go-clinic-management/internal/infrastructure/database"
	"go-clinic-management/internal/infrastructure/storage"
	"go-clinic-management/internal/repository"
	"go-clinic-management/internal/service"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/jwt"
	"go-clinic-management/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	SIMRSDB      *sql.DB
	RedisClient  *redis.Client
	Server       *http.Server
	counterStore *service.MemoryCounterStore
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize the hospital-system database
	simrsDB, err := database.NewSIMRSConnection(cfg.SIMRSDB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SIMRS database: %w", err)
	}
	app.SIMRSDB = simrsDB

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := app.initializeServer()
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, usecases, handlers and the router.
func (app *App) initializeServer() (*http.Server, error) {
	cfg := app.Config

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize object storage
	minioStorage, err := storage.NewMinioStorage(context.Background(), cfg.Minio, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	scheduleRepo := repository.NewScheduleRepository()
	bookingRepo := repository.NewBookingRepository()
	serviceRepo := repository.NewServiceRepository()
	facilityRepo := repository.NewFacilityRepository()
	newsRepo := repository.NewNewsRepository()
	pageRepo := repository.NewPageRepository()
	patientRepo := repository.NewSIMRSPatientRepository(app.SIMRSDB)

	// Initialize services
	whatsappService := service.NewWhatsAppService(cfg.WhatsApp, log)
	app.counterStore = service.NewMemoryCounterStore(cfg.RateLimit.SweepInterval)
	rateLimiter := service.NewRateLimiter(app.counterStore, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(app.DB, log, userRepo, jwtService, app.RedisClient)
	doctorUsecase := usecase.NewDoctorUsecase(app.DB, log, doctorRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(app.DB, log, scheduleRepo, doctorRepo)
	bookingUsecase := usecase.NewBookingUsecase(app.DB, log, bookingRepo, doctorRepo, whatsappService)
	serviceUsecase := usecase.NewServiceUsecase(app.DB, log, serviceRepo)
	facilityUsecase := usecase.NewFacilityUsecase(app.DB, log, facilityRepo)
	newsUsecase := usecase.NewNewsUsecase(app.DB, log, newsRepo)
	pageUsecase := usecase.NewPageUsecase(app.DB, log, pageRepo)
	registrationUsecase := usecase.NewPatientRegistrationUsecase(app.DB, log, bookingRepo, patientRepo)
	uploadUsecase := usecase.NewUploadUsecase(log, minioStorage, cfg.Minio.MaxUploadSize)

	// Seed the initial admin account
	if err := authUsecase.EnsureAdminUser(context.Background(), cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	facilityHandler := handler.NewFacilityHandler(facilityUsecase, customValidator)
	newsHandler := handler.NewNewsHandler(newsUsecase, customValidator)
	pageHandler := handler.NewPageHandler(pageUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(registrationUsecase, customValidator)
	uploadHandler := handler.NewUploadHandler(uploadUsecase, cfg.Minio.MaxUploadSize)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimiter)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		scheduleHandler,
		bookingHandler,
		serviceHandler,
		facilityHandler,
		newsHandler,
		pageHandler,
		patientHandler,
		uploadHandler,
		authMiddleware,
		corsMiddleware,
		rateLimitMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.counterStore != nil {
		app.counterStore.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close SIMRS connection
	if app.SIMRSDB != nil {
		app.SIMRSDB.Close()
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
