// Package bootstrap wires configuration, storage, services, controllers and
// routes together at startup.
package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/campushire/internal/app/controllers"
	appRoutes "github.com/yigit/campushire/internal/app/routes"
	appServices "github.com/yigit/campushire/internal/app/services"
	"github.com/yigit/campushire/internal/app/store"
	"github.com/yigit/campushire/internal/config"
	appMiddleware "github.com/yigit/campushire/internal/middleware"
	pkgAuth "github.com/yigit/campushire/internal/pkg/auth"
	"github.com/yigit/campushire/internal/pkg/helpers"
	"github.com/yigit/campushire/internal/pkg/logger"
	"github.com/yigit/campushire/internal/seed"
	"github.com/yigit/campushire/internal/storage"
	"github.com/yigit/campushire/internal/storage/sqlite"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	ProfileService        appServices.ProfileService
	JobService            appServices.JobService
	ApplicationService    appServices.ApplicationService
	StatsService          appServices.StatsService
	AuthController        *appControllers.AuthController
	ProfileController     *appControllers.ProfileController
	JobController         *appControllers.JobController
	ApplicationController *appControllers.ApplicationController
	StatsController       *appControllers.StatsController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Store                 *store.Store
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env is optional; variables already in the environment win.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the persistence provider and hydrates the state store.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (storage.Provider, *store.Store, error) {
	lgr.Info().Str("path", cfg.Storage.Path).Msg("Opening storage...")
	provider, err := sqlite.New(cfg.Storage.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open storage")
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	st, err := store.New(provider, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to hydrate state store")
		provider.Close()
		return nil, nil, fmt.Errorf("failed to hydrate state store: %w", err)
	}
	lgr.Info().Msg("Storage ready.")

	// Create default data after hydration
	if err := seed.CreateDefaultData(st, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return provider, st, nil
}

// BuildDependencies initializes application services, controllers and
// middleware around the state store.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: st}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(st, deps.JWTService, lgr)
	deps.ProfileService = appServices.NewProfileService(st, lgr)
	deps.JobService = appServices.NewJobService(st, lgr)
	deps.ApplicationService = appServices.NewApplicationService(st, lgr)
	deps.StatsService = appServices.NewStatsService(st, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService, lgr)

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
		deps.ProfileController,
		deps.JobController,
		deps.ApplicationController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
