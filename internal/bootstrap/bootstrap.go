// Package bootstrap wires configuration, storage, services and the HTTP
// router into a runnable application. Every dependency is constructed here
// and injected explicitly, nothing reaches for globals.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/osahenru/uniportal/internal/app/controllers"
	appMigrations "github.com/osahenru/uniportal/internal/app/migrations"
	appRepos "github.com/osahenru/uniportal/internal/app/repositories"
	localRepos "github.com/osahenru/uniportal/internal/app/repositories/local"
	postgresRepos "github.com/osahenru/uniportal/internal/app/repositories/postgres"
	appRoutes "github.com/osahenru/uniportal/internal/app/routes"
	appServices "github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/config"
	"github.com/osahenru/uniportal/internal/db"
	appMiddleware "github.com/osahenru/uniportal/internal/middleware"
	pkgAuth "github.com/osahenru/uniportal/internal/pkg/auth"
	"github.com/osahenru/uniportal/internal/pkg/filestorage"
	"github.com/osahenru/uniportal/internal/pkg/helpers"
	"github.com/osahenru/uniportal/internal/pkg/logger"
	"github.com/osahenru/uniportal/internal/seed"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	NewsService            appServices.NewsService
	EventService           appServices.EventService
	GalleryService         appServices.GalleryService
	MediaService           appServices.MediaService
	OrganizationService    appServices.OrganizationService
	AuthController         *appControllers.AuthController
	NewsController         *appControllers.NewsController
	EventController        *appControllers.EventController
	GalleryController      *appControllers.GalleryController
	MediaController        *appControllers.MediaController
	OrganizationController *appControllers.OrganizationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger

	closeStorage func()
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

// SetupStorage constructs the repository set for the configured driver and
// returns it with a close function for shutdown.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		pool := database.Pool

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(pool)
		if err := migrator.MigrateFromDirectory("migrations"); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}

		return postgresRepos.NewRepositories(pool), pool.Close, nil

	case config.DriverLocal:
		lgr.Info().Str("path", cfg.Storage.LocalPath).Msg("Opening local store...")
		store, err := kv.Open(cfg.Storage.LocalPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open local store: %w", err)
		}
		return localRepos.NewRepositories(store), func() {
			if err := store.Close(); err != nil {
				lgr.Error().Err(err).Msg("Failed to close local store")
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// BuildDependencies initializes repositories, services and controllers,
// seeds the default admin and warms each resource store.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	repos, closeStorage, err := SetupStorage(cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.Repos = repos
	deps.closeStorage = closeStorage

	ctx := context.Background()

	if err := seed.CreateDefaultAdmin(ctx, repos.Users, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.DisplayName, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(repos.Users, repos.Tokens, deps.JWTService, lgr)
	deps.NewsService = appServices.NewNewsService(repos.News, lgr)
	deps.EventService = appServices.NewEventService(repos.Events, lgr)
	deps.GalleryService = appServices.NewGalleryService(repos.Gallery, lgr)
	deps.MediaService = appServices.NewMediaService(repos.Media, deps.FileStorage, lgr)
	deps.OrganizationService = appServices.NewOrganizationService(repos.Organization, lgr)

	// Warm the in-memory collections. A failed load inside falls back to an
	// empty collection, it never aborts startup.
	deps.NewsService.Load(ctx)
	deps.EventService.Load(ctx)
	deps.GalleryService.Load(ctx)
	deps.MediaService.Load(ctx)
	deps.OrganizationService.Load(ctx)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.NewsController = appControllers.NewNewsController(deps.NewsService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.GalleryController = appControllers.NewGalleryController(deps.GalleryService)
	deps.MediaController = appControllers.NewMediaController(deps.MediaService)
	deps.OrganizationController = appControllers.NewOrganizationController(deps.OrganizationService)

	return deps, nil
}

// Close releases storage resources.
func (d *Dependencies) Close() {
	if d.closeStorage != nil {
		d.closeStorage()
	}
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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Uploaded media is served statically alongside the API.
	router.Static("/uploads", cfg.Server.StoragePath)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.NewsController,
		deps.EventController,
		deps.GalleryController,
		deps.MediaController,
		deps.OrganizationController,
		deps.AuthMiddleware,
	)

	return router
}
