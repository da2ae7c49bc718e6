package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/innohub/internal/app/controllers"
	appMigrations "github.com/emre/innohub/internal/app/migrations"
	appRepos "github.com/emre/innohub/internal/app/repositories"
	appRoutes "github.com/emre/innohub/internal/app/routes"
	appServices "github.com/emre/innohub/internal/app/services"
	"github.com/emre/innohub/internal/config"
	"github.com/emre/innohub/internal/db"
	appMiddleware "github.com/emre/innohub/internal/middleware"
	pkgAuth "github.com/emre/innohub/internal/pkg/auth"
	"github.com/emre/innohub/internal/pkg/helpers"
	"github.com/emre/innohub/internal/pkg/imagestore"
	"github.com/emre/innohub/internal/pkg/logger"
	"github.com/emre/innohub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	EventService           *appServices.EventService
	RegistrationService    *appServices.RegistrationService
	StartupService         *appServices.StartupService
	IncubationService      *appServices.IncubationService
	AuthController         *appControllers.AuthController
	EventController        *appControllers.EventController
	RegistrationController *appControllers.RegistrationController
	StartupController      *appControllers.StartupController
	IncubationController   *appControllers.IncubationController
	UploadController       *appControllers.UploadController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	SessionService         *pkgAuth.SessionService
	ImageStore             *imagestore.Store
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Demo data only outside production
	if !cfg.IsProduction() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// Image storage served back at /uploads
	imageBaseURL := cfg.Uploads.BaseURL
	if imageBaseURL == "" {
		imageBaseURL = "http://localhost:" + cfg.Server.Port + "/uploads"
	}
	var err error
	deps.ImageStore, err = imagestore.NewStore(cfg.Uploads.Path, imageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize image storage")
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:  cfg.Admin.SessionSecret,
		Expiration: helpers.ParseDuration(cfg.Admin.SessionExpiration, 24*time.Hour),
		Issuer:     "innohub",
	})

	deps.AuthService, err = appServices.NewAuthService(cfg.Admin.Password, deps.SessionService, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize auth service")
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.EventRepository,
		deps.Repos.RegistrationRepository,
		deps.Repos.ParticipantRepository,
		lgr,
	)
	deps.StartupService = appServices.NewStartupService(deps.Repos.StartupRepository, deps.ImageStore, lgr)
	deps.IncubationService = appServices.NewIncubationService(deps.Repos.IncubationRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.StartupController = appControllers.NewStartupController(deps.StartupService)
	deps.IncubationController = appControllers.NewIncubationController(deps.IncubationService)
	deps.UploadController = appControllers.NewUploadController(deps.ImageStore)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.RegistrationController,
		deps.StartupController,
		deps.IncubationController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
