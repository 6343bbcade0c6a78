package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lesson-booking-admin/config"
	deliveryHttp "lesson-booking-admin/internal/delivery/http"
	"lesson-booking-admin/internal/delivery/http/handler"
	"lesson-booking-admin/internal/delivery/http/middleware"
	"lesson-booking-admin/internal/infrastructure/cache"
	"lesson-booking-admin/internal/infrastructure/database"
	"lesson-booking-admin/internal/repository"
	"lesson-booking-admin/internal/service"
	"lesson-booking-admin/internal/usecase"
	"lesson-booking-admin/pkg/jwt"
	"lesson-booking-admin/pkg/validator"

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
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(context.Background(), db, log); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Redis is optional: without it every read goes to PostgreSQL and tokens cannot be revoked
	var cacheService cache.Service
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		log.Warnf("Redis unavailable, running without cache: %+v", err)
	} else {
		app.RedisClient = redisClient
		cacheService = cache.NewService(redisClient)
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, db, cacheService)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	if cfg.IsDevelopment() {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, cacheService cache.Service) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(db)
	lessonTypeRepo := repository.NewLessonTypeRepository(db)
	athleteRepo := repository.NewAthleteRepository(db)
	parentRepo := repository.NewParentRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	transactor := repository.NewTransactor(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	catalogService := service.NewCatalogService(lessonTypeRepo, cacheService, cfg.Cache.CatalogTTL, log)

	warmup := service.NewCacheWarmupService(cacheService, catalogService, log)
	if err := warmup.WarmOnStartup(context.Background()); err != nil {
		log.Warnf("Cache warm-up failed: %+v", err)
	}

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(log, transactor, bookingRepo, athleteRepo, parentRepo, lessonTypeRepo, catalogService, auditService, cacheService)
	lessonTypeUsecase := usecase.NewLessonTypeUsecase(log, lessonTypeRepo, catalogService, auditService)
	athleteUsecase := usecase.NewAthleteUsecase(log, athleteRepo, parentRepo, auditService)
	parentUsecase := usecase.NewParentUsecase(log, parentRepo, auditService)
	summaryUsecase := usecase.NewPaymentSummaryUsecase(log, bookingRepo, catalogService, cacheService, cfg.Cache.SummaryTTL)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	lessonTypeHandler := handler.NewLessonTypeHandler(lessonTypeUsecase, customValidator)
	athleteHandler := handler.NewAthleteHandler(athleteUsecase, customValidator)
	parentHandler := handler.NewParentHandler(parentUsecase, customValidator)
	paymentSummaryHandler := handler.NewPaymentSummaryHandler(summaryUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, cacheService, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		bookingHandler,
		lessonTypeHandler,
		athleteHandler,
		parentHandler,
		paymentSummaryHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

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

// Close closes all connections (database, redis)
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
