package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mentorlink/backend/internal/app/controllers"
	appMigrations "github.com/mentorlink/backend/internal/app/migrations"
	appRepos "github.com/mentorlink/backend/internal/app/repositories"
	appRoutes "github.com/mentorlink/backend/internal/app/routes"
	appServices "github.com/mentorlink/backend/internal/app/services"
	"github.com/mentorlink/backend/internal/config"
	"github.com/mentorlink/backend/internal/db"
	appMiddleware "github.com/mentorlink/backend/internal/middleware"
	pkgAuth "github.com/mentorlink/backend/internal/pkg/auth"
	"github.com/mentorlink/backend/internal/pkg/helpers"
	"github.com/mentorlink/backend/internal/pkg/logger"
	"github.com/mentorlink/backend/internal/pkg/mapping"
	"github.com/mentorlink/backend/internal/pkg/websocket"
	"github.com/mentorlink/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	MatchingService          *appServices.MatchingService
	StudentService           *appServices.StudentService
	CollegeMentorService     *appServices.CollegeMentorService
	IndustryMentorService    *appServices.IndustryMentorService
	MessageService           *appServices.MessageService
	StudentController        *appControllers.StudentController
	CollegeMentorController  *appControllers.CollegeMentorController
	IndustryMentorController *appControllers.IndustryMentorController
	MessageController        *appControllers.MessageController
	Hub                      *websocket.Hub
	WSHandler                *websocket.Handler
	AuthMiddleware           *appMiddleware.AuthMiddleware
	Repos                    *appRepos.Repositories
	JWTService               *pkgAuth.JWTService
	Logger                   zerolog.Logger
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
// seeds default mentors.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failures are not fatal; the API works without defaults.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// websocket hub.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// The mapping client is optional; without a base URL, matching relies
	// on the local scoring fallback alone.
	var mapper appServices.MentorMapper
	mappingTimeout := helpers.ParseDuration(cfg.Matching.MappingTimeout, mapping.DefaultTimeout)
	if cfg.Matching.MappingBaseURL != "" {
		mapper = mapping.NewClient(cfg.Matching.MappingBaseURL, mappingTimeout, logger.WithComponent("mapping"))
		lgr.Info().Str("baseURL", cfg.Matching.MappingBaseURL).Msg("External mapping service enabled")
	} else {
		lgr.Info().Msg("External mapping service not configured, using scoring fallback only")
	}

	deps.MatchingService = appServices.NewMatchingService(
		mapper,
		deps.Repos.StudentRepository,
		deps.Repos.CollegeMentorRepository,
		deps.Repos.IndustryMentorRepository,
		deps.Repos.AssignmentRepository,
		database,
		mappingTimeout,
		logger.WithComponent("matching"),
	)

	deps.Hub = websocket.NewHub(logger.WithComponent("websocket"))

	deps.MessageService = appServices.NewMessageService(
		deps.Repos.MessageRepository,
		deps.Repos.ParticipantDirectory,
		deps.Hub,
		logger.WithComponent("messages"),
	)

	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.MatchingService,
		deps.JWTService,
		logger.WithComponent("students"),
	)
	deps.CollegeMentorService = appServices.NewCollegeMentorService(
		deps.Repos.CollegeMentorRepository,
		deps.Repos.StudentRepository,
		deps.Repos.AssignmentRepository,
		deps.JWTService,
		logger.WithComponent("college-mentors"),
	)
	deps.IndustryMentorService = appServices.NewIndustryMentorService(
		deps.Repos.IndustryMentorRepository,
		deps.Repos.StudentRepository,
		deps.Repos.AssignmentRepository,
		deps.JWTService,
		logger.WithComponent("industry-mentors"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CollegeMentorController = appControllers.NewCollegeMentorController(deps.CollegeMentorService)
	deps.IndustryMentorController = appControllers.NewIndustryMentorController(deps.IndustryMentorService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)

	deps.WSHandler = websocket.NewHandler(deps.Hub, deps.MessageService, logger.WithComponent("websocket"))

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
		deps.StudentController,
		deps.CollegeMentorController,
		deps.IndustryMentorController,
		deps.MessageController,
		deps.WSHandler,
		deps.AuthMiddleware,
	)

	return router
}
