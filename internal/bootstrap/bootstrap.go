package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/records/internal/app/controllers"
	appMigrations "github.com/yigit/records/internal/app/migrations"
	appRepos "github.com/yigit/records/internal/app/repositories"
	appRoutes "github.com/yigit/records/internal/app/routes"
	appServices "github.com/yigit/records/internal/app/services"
	"github.com/yigit/records/internal/config"
	"github.com/yigit/records/internal/db"
	appMiddleware "github.com/yigit/records/internal/middleware"
	"github.com/yigit/records/internal/pkg/logger"
	"github.com/yigit/records/internal/pkg/metrics"
	"github.com/yigit/records/internal/seed"
	schema "github.com/yigit/records/migrations"
)

// Stores holds both database handles for the life of the process.
type Stores struct {
	Postgres *db.PostgresDB
	Mongo    *db.MongoDB
}

// Close releases both stores.
func (s *Stores) Close(ctx context.Context) {
	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			logger.Warn().Err(err).Msg("Error disconnecting MongoDB client")
		}
	}
	if s.Postgres != nil {
		s.Postgres.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService     appServices.StudentService
	LecturerService    appServices.LecturerService
	GradeService       appServices.GradeService
	StudentController  *appControllers.StudentController
	LecturerController *appControllers.LecturerController
	GradeController    *appControllers.GradeController
	HealthController   *appControllers.HealthController
	Repos              *appRepos.Repositories
	Metrics            *metrics.Metrics
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStores connects to both stores and applies the relational schema.
// Any failure here is fatal for the caller.
func SetupStores(ctx context.Context, cfg *config.Config, m *metrics.Metrics, lgr zerolog.Logger) (*Stores, error) {
	lgr.Info().Msg("Establishing database connections...")

	pg, err := db.NewPostgresDB(ctx, cfg, m)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to PostgreSQL")
		return nil, err
	}

	mongo, err := db.NewMongoDB(ctx, cfg, m)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		pg.Close()
		return nil, err
	}
	stores := &Stores{Postgres: pg, Mongo: mongo}

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(pg, schema.FS, lgr).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		stores.Close(ctx)
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return stores, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, stores *Stores, m *metrics.Metrics, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Metrics: m, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(stores.Postgres, stores.Mongo, lgr)

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, deps.Repos, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.LecturerService = appServices.NewLecturerService(deps.Repos.LecturerRepository, deps.Repos.ModuleRepository, m, lgr)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository, deps.Repos.ModuleRepository)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.LecturerController = appControllers.NewLecturerController(deps.LecturerService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.HealthController = appControllers.NewHealthController(stores.Postgres, stores.Mongo)

	return deps
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
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Student:  deps.StudentController,
		Lecturer: deps.LecturerController,
		Grade:    deps.GradeController,
		Health:   deps.HealthController,
	}, deps.Metrics.Handler())

	return router
}
