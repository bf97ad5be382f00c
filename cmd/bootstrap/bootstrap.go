package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-booking/config"
	deliveryHttp "hospital-booking/internal/delivery/http"
	"hospital-booking/internal/delivery/http/handler"
	"hospital-booking/internal/delivery/http/middleware"
	"hospital-booking/internal/infrastructure/cache"
	"hospital-booking/internal/infrastructure/database"
	"hospital-booking/internal/infrastructure/gemini"
	"hospital-booking/internal/infrastructure/recaptcha"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/service"
	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/jwt"
	"hospital-booking/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
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
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	app.Log = setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Infof("Database connected successfully (%s)", cfg.DB.Driver)

	if err := database.Migrate(db); err != nil {
		app.Close()
		return nil, err
	}

	// Sessions live in Redis when it is configured, in process memory otherwise
	var sessions service.SessionStore
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		sessions = service.NewRedisSessionStore(redisClient)
		app.Log.Info("Redis connected successfully")
	} else {
		sessions = service.NewMemorySessionStore()
		app.Log.Info("Redis not configured, keeping sessions in memory")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           NewHandler(cfg, db, sessions, registry, app.Log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

// NewHandler wires repositories, usecases and handlers into the HTTP router.
func NewHandler(cfg *config.Config, db *gorm.DB, sessions service.SessionStore, registry *prometheus.Registry, log *logrus.Logger) http.Handler {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	hospitalRepo := repository.NewHospitalRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	chatRepo := repository.NewFirstAidChatRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	assistant := gemini.NewClient(cfg.Gemini, log)
	captcha := recaptcha.NewVerifier(cfg.Recaptcha, log)
	if !captcha.Enabled() {
		log.Info("reCAPTCHA secret not set, skipping bot checks")
	}
	clock := usecase.SystemClock()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, hospitalRepo, doctorRepo, auditService, jwtService, sessions, clock)
	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, hospitalRepo, doctorRepo, auditService, clock)
	searchUsecase := usecase.NewDoctorSearchUsecase(db, log, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo, hospitalRepo, doctorRepo, auditService, clock)
	firstAidUsecase := usecase.NewFirstAidUsecase(db, log, chatRepo, userRepo, assistant)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, captcha)
	userHandler := handler.NewUserHandler(profileUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(profileUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(profileUsecase, searchUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	firstAidHandler := handler.NewFirstAidHandler(firstAidUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	metricsMiddleware := middleware.NewMetricsMiddleware(registry)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		hospitalHandler,
		doctorHandler,
		appointmentHandler,
		firstAidHandler,
		authMiddleware,
		corsMiddleware,
		metricsMiddleware,
		registry,
	)
	return router.Setup()
}

// ResetDatabase drops and recreates every table.
func ResetDatabase() error {
	log := setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.Reset(db); err != nil {
		return err
	}
	log.Info("Database reset complete")
	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes the database and Redis connections
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
