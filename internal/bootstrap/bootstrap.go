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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/adikale/placementhub/docs" // Import generated swagger docs
	appControllers "github.com/adikale/placementhub/internal/app/controllers"
	appMigrations "github.com/adikale/placementhub/internal/app/migrations"
	appRepos "github.com/adikale/placementhub/internal/app/repositories"
	appRoutes "github.com/adikale/placementhub/internal/app/routes"
	appServices "github.com/adikale/placementhub/internal/app/services"
	"github.com/adikale/placementhub/internal/config"
	"github.com/adikale/placementhub/internal/db"
	appMiddleware "github.com/adikale/placementhub/internal/middleware"
	pkgAuth "github.com/adikale/placementhub/internal/pkg/auth"
	"github.com/adikale/placementhub/internal/pkg/helpers"
	"github.com/adikale/placementhub/internal/pkg/logger"
	"github.com/adikale/placementhub/internal/pkg/resumepdf"
	"github.com/adikale/placementhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	ProfileService         *appServices.ProfileService
	DriveService           *appServices.DriveService
	ApplicationService     *appServices.ApplicationService
	NotificationService    *appServices.NotificationService
	EligibilityService     *appServices.EligibilityService
	SkillGapService        *appServices.SkillGapService
	ResumeService          *appServices.ResumeService
	MentorshipService      *appServices.MentorshipService
	ReferralService        *appServices.ReferralService
	StatsService           *appServices.StatsService
	AuthController         *appControllers.AuthController
	ProfileController      *appControllers.ProfileController
	DriveController        *appControllers.DriveController
	ApplicationController  *appControllers.ApplicationController
	NotificationController *appControllers.NotificationController
	SkillGapController     *appControllers.SkillGapController
	ResumeController       *appControllers.ResumeController
	ConnectController      *appControllers.ConnectController
	ReferralController     *appControllers.ReferralController
	StatsController        *appControllers.StatsController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	ResumeRenderer         *resumepdf.Renderer
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best-effort; a partial seed must not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.ResumeRenderer, err = resumepdf.NewRenderer(cfg.Server.ResumeDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize resume renderer")
		return nil, fmt.Errorf("failed to initialize resume renderer: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Services
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository)
	deps.EligibilityService = appServices.NewEligibilityService(deps.Repos.StudentProfileRepository)
	deps.SkillGapService = appServices.NewSkillGapService(deps.Repos.StudentProfileRepository)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.StudentProfileRepository,
		deps.Repos.AlumniProfileRepository,
		deps.JWTService,
	)

	deps.ProfileService = appServices.NewProfileService(
		deps.Repos.UserRepository,
		deps.Repos.StudentProfileRepository,
		deps.Repos.AlumniProfileRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.DriveRepository,
		deps.Repos.MentorshipRepository,
		deps.Repos.ReferralRepository,
		deps.EligibilityService,
		deps.NotificationService,
	)

	deps.DriveService = appServices.NewDriveService(
		deps.Repos.DriveRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.InterviewRepository,
		deps.Repos.StudentProfileRepository,
		deps.EligibilityService,
		deps.NotificationService,
	)

	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.DriveRepository,
		deps.Repos.InterviewRepository,
		deps.NotificationService,
	)

	deps.ResumeService = appServices.NewResumeService(
		deps.Repos.UserRepository,
		deps.Repos.StudentProfileRepository,
		deps.Repos.ResumeMetaRepository,
		deps.ResumeRenderer,
	)

	deps.MentorshipService = appServices.NewMentorshipService(
		deps.Repos.MentorshipRepository,
		deps.Repos.UserRepository,
		deps.NotificationService,
	)

	deps.ReferralService = appServices.NewReferralService(
		deps.Repos.ReferralRepository,
		deps.Repos.MentorshipRepository,
		deps.Repos.AlumniProfileRepository,
		deps.Repos.UserRepository,
		deps.NotificationService,
	)

	deps.StatsService = appServices.NewStatsService(
		deps.Repos.UserRepository,
		deps.Repos.DriveRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.StudentProfileRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.DriveController = appControllers.NewDriveController(deps.DriveService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)
	deps.SkillGapController = appControllers.NewSkillGapController(deps.SkillGapService)
	deps.ResumeController = appControllers.NewResumeController(deps.ResumeService)
	deps.ConnectController = appControllers.NewConnectController(deps.MentorshipService, deps.ReferralService)
	deps.ReferralController = appControllers.NewReferralController(deps.ReferralService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)

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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.DriveController,
		deps.ApplicationController,
		deps.NotificationController,
		deps.SkillGapController,
		deps.ResumeController,
		deps.ConnectController,
		deps.ReferralController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
