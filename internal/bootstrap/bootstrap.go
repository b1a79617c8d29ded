package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/contractors/internal/app/controllers"
	appMigrations "github.com/yigit/contractors/internal/app/migrations"
	appRepos "github.com/yigit/contractors/internal/app/repositories"
	appRoutes "github.com/yigit/contractors/internal/app/routes"
	appServices "github.com/yigit/contractors/internal/app/services"
	"github.com/yigit/contractors/internal/config"
	"github.com/yigit/contractors/internal/db"
	appMiddleware "github.com/yigit/contractors/internal/middleware"
	"github.com/yigit/contractors/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	ContractorController *appControllers.ContractorController
	StatsController      *appControllers.StatsController
	HealthController     *appControllers.HealthController
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
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

// SetupDatabase opens the connection pool and, when enabled, applies migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !cfg.Database.Migrate {
		return database, nil
	}

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	return database, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database appRepos.Database, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, appServices.Options{
		QueryTimeout:          cfg.Database.QueryTimeout,
		CaseInsensitiveSearch: cfg.Search.CaseInsensitive,
	})

	deps.ContractorController = appControllers.NewContractorController(deps.Services.ContractorService)
	deps.StatsController = appControllers.NewStatsController(deps.Services.StatsService)
	deps.HealthController = appControllers.NewHealthController()

	return deps
}

// SetupRouter builds the gin engine with middleware and every route.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Recovery(),
		appMiddleware.CORS(),
		appMiddleware.AccessLog(),
	)

	if cfg.Server.Swagger {
		appRoutes.SetupSwagger(router)
		lgr.Info().Msg("Swagger UI enabled at /swagger/index.html")
	}

	appRoutes.SetupRouter(router,
		deps.ContractorController,
		deps.StatsController,
		deps.HealthController,
	)

	return router
}
