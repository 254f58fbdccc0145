package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthcare-portal/config"
	deliveryHttp "healthcare-portal/internal/delivery/http"
	"healthcare-portal/internal/delivery/http/handler"
	"healthcare-portal/internal/delivery/http/middleware"
	domainRepo "healthcare-portal/internal/domain/repository"
	"healthcare-portal/internal/infrastructure/cache"
	"healthcare-portal/internal/infrastructure/database"
	"healthcare-portal/internal/infrastructure/messaging"
	"healthcare-portal/internal/repository"
	"healthcare-portal/internal/service"
	"healthcare-portal/internal/usecase"
	"healthcare-portal/pkg/jwt"
	"healthcare-portal/pkg/latency"
	"healthcare-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   *messaging.RabbitMQPublisher
	Server      *http.Server

	stopEmbeddedRedis func()
}

// Stores groups the repositories selected by APP_STORE
type Stores struct {
	Users   domainRepo.UserRepository
	Records domainRepo.HealthRecordRepository
}

// LoadConfig sets up the logger and reads configuration
func LoadConfig() (*config.Config, error) {
	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.App.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return cfg, nil
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Log: logrus.StandardLogger()}
	logrus.Info("Configuration loaded successfully")

	stores, err := app.initializeStores()
	if err != nil {
		app.Close()
		return nil, err
	}

	if err := app.initializeRedis(); err != nil {
		app.Close()
		return nil, err
	}

	publisher, err := app.initializePublisher()
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = initializeServer(cfg, app.Log, stores, app.RedisClient, publisher)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func (app *App) initializeStores() (*Stores, error) {
	switch app.Config.App.Store {
	case config.StoreMemory:
		users, err := repository.DemoUsers()
		if err != nil {
			return nil, fmt.Errorf("failed to seed demo users: %w", err)
		}

		records := repository.NewMemoryHealthRecordRepository(nil, repository.DemoHealthRecords()...)
		logrus.Infof("Using in-memory store with %s simulated latency", app.Config.App.StoreLatency)

		return &Stores{
			Users:   repository.NewMemoryUserRepository(users...),
			Records: repository.NewDelayedHealthRecordRepository(records, latency.Fixed(app.Config.App.StoreLatency)),
		}, nil

	case config.StorePostgres:
		db, err := database.NewPostgresConnection(app.Config.DB, app.Config.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		logrus.Info("Database connected successfully")

		return &Stores{
			Users:   repository.NewUserRepository(db),
			Records: repository.NewHealthRecordRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unknown store %q, expected %s or %s", app.Config.App.Store, config.StoreMemory, config.StorePostgres)
	}
}

func (app *App) initializeRedis() error {
	if app.Config.Redis.Embedded {
		client, stop, err := cache.NewEmbeddedRedisClient()
		if err != nil {
			return err
		}
		app.RedisClient = client
		app.stopEmbeddedRedis = stop
		return nil
	}

	client, err := cache.NewRedisClient(app.Config.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = client
	logrus.Info("Redis connected successfully")
	return nil
}

func (app *App) initializePublisher() (service.EventPublisher, error) {
	if app.Config.RabbitMQ.URL == "" {
		logrus.Info("RABBITMQ_URL not set, events go to the log")
		return service.NewLogEventPublisher(app.Log), nil
	}

	publisher, err := messaging.NewRabbitMQPublisher(app.Config.RabbitMQ)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	app.Publisher = publisher
	return publisher, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, stores *Stores, redisClient *redis.Client, publisher service.EventPublisher) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(redisClient)

	// Initialize services
	eventService := service.NewEventService(log, publisher)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, stores.Users, sessionRepo, jwtService)
	patientRecordUsecase := usecase.NewPatientRecordUsecase(log, stores.Records, eventService)
	doctorRecordUsecase := usecase.NewDoctorRecordUsecase(log, stores.Records, eventService)
	contactUsecase := usecase.NewContactUsecase(log, latency.Fixed(cfg.App.ContactLatency), eventService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientRecordHandler := handler.NewPatientRecordHandler(patientRecordUsecase, customValidator)
	doctorRecordHandler := handler.NewDoctorRecordHandler(doctorRecordUsecase, customValidator)
	contactHandler := handler.NewContactHandler(contactUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRepo, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientRecordHandler,
		doctorRecordHandler,
		contactHandler,
		authMiddleware,
		corsMiddleware,
		requestLogMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
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

// Close closes all connections (database, redis, rabbitmq)
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
	if app.stopEmbeddedRedis != nil {
		app.stopEmbeddedRedis()
	}

	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			logrus.Warnf("Failed to close RabbitMQ connection: %v", err)
		}
	}
}
