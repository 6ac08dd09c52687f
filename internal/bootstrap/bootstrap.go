package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/pragati-coe/facultyhub/internal/app/auth"
	appControllers "github.com/pragati-coe/facultyhub/internal/app/controllers"
	appMigrations "github.com/pragati-coe/facultyhub/internal/app/migrations"
	appRepos "github.com/pragati-coe/facultyhub/internal/app/repositories"
	appRoutes "github.com/pragati-coe/facultyhub/internal/app/routes"
	appServices "github.com/pragati-coe/facultyhub/internal/app/services"
	"github.com/pragati-coe/facultyhub/internal/config"
	"github.com/pragati-coe/facultyhub/internal/db"
	appMiddleware "github.com/pragati-coe/facultyhub/internal/middleware"
	pkgAuth "github.com/pragati-coe/facultyhub/internal/pkg/auth"
	"github.com/pragati-coe/facultyhub/internal/pkg/filestorage"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
	"github.com/pragati-coe/facultyhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService             appServices.AuthService
	UserService             appServices.UserService
	FacultyService          appServices.FacultyService
	QualificationService    appServices.QualificationService
	PublicationService      appServices.PublicationService
	StatsService            appServices.StatsService
	ExportService           appServices.ExportService
	AuthController          *appControllers.AuthController
	UserController          *appControllers.UserController
	FacultyController       *appControllers.FacultyController
	QualificationController *appControllers.QualificationController
	PublicationController   *appControllers.PublicationController
	StatsController         *appControllers.StatsController
	ExportController        *appControllers.ExportController
	AuthMiddleware          *appMiddleware.AuthMiddleware
	Repos                   *appRepos.Repositories
	JWTService              *pkgAuth.JWTService
	AuthzService            *appAuth.Service
	Logger                  zerolog.Logger
	FileStorage             *filestorage.LocalStorage
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

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.Migrate(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), database.Pool, cfg); err != nil {
		// Startup continues; the admin can be created manually.
		lgr.Error().Err(err).Msg("Failed to create default admin account")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewService(deps.Repos.FacultyRepository)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.AuthzService)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository, deps.AuthzService)
	deps.QualificationService = appServices.NewQualificationService(
		deps.Repos.QualificationRepository,
		deps.Repos.FacultyRepository,
		deps.AuthzService,
	)
	deps.PublicationService = appServices.NewPublicationService(deps.Repos.PublicationRepository, deps.AuthzService)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.FacultyRepository,
		deps.Repos.QualificationRepository,
		deps.Repos.PublicationRepository,
		deps.AuthzService,
	)
	deps.ExportService = appServices.NewExportService(
		deps.Repos.FacultyRepository,
		deps.Repos.QualificationRepository,
		deps.Repos.PublicationRepository,
		deps.AuthzService,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService, deps.FileStorage)
	deps.QualificationController = appControllers.NewQualificationController(deps.QualificationService)
	deps.PublicationController = appControllers.NewPublicationController(deps.PublicationService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)
	deps.ExportController = appControllers.NewExportController(deps.ExportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.FacultyController,
		deps.QualificationController,
		deps.PublicationController,
		deps.StatsController,
		deps.ExportController,
		deps.AuthMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
