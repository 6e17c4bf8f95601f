// Package bootstrap wires configuration, database, repositories, services,
// controllers and routes together for the server.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/melisd/campushub/internal/app/controllers"
	appMigrations "github.com/melisd/campushub/internal/app/migrations"
	appRepos "github.com/melisd/campushub/internal/app/repositories"
	appRoutes "github.com/melisd/campushub/internal/app/routes"
	appServices "github.com/melisd/campushub/internal/app/services"
	"github.com/melisd/campushub/internal/config"
	"github.com/melisd/campushub/internal/db"
	appMiddleware "github.com/melisd/campushub/internal/middleware"
	pkgAuth "github.com/melisd/campushub/internal/pkg/auth"
	"github.com/melisd/campushub/internal/pkg/helpers"
	"github.com/melisd/campushub/internal/pkg/logger"
	"github.com/melisd/campushub/internal/seed"
)

// Credential endpoint throttle: 1 request/second, burst 5, per client IP.
const (
	loginLimiterRPS   = 1.0
	loginLimiterBurst = 5
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	LoginLimiter   *appMiddleware.RateLimiter
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(database, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultAccounts(context.Background(), dbPool, cfg, lgr); err != nil {
		// Seeding failure should not take the server down.
		lgr.Error().Err(err).Msg("Failed to seed default accounts, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware over the given pool.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	hasher := pkgAuth.NewPasswordHasher(cfg.Auth.BcryptCost)

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, hasher, cfg.Auth.MinPasswordLength, lgr)
	deps.Controllers = appControllers.NewControllers(deps.Services, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.LoginLimiter = appMiddleware.NewRateLimiter(loginLimiterRPS, loginLimiterBurst)

	return deps, nil
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.LoginLimiter)

	return router
}
