package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("production")
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL); err != nil {
		logger.Fatal("Failed to initialize JWT", "error", err)
	}

	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	repos := repositories.NewContainer(gormDB)
	go runTokenJanitor(repos)

	router := SetupRouter(cfg, repos)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// openDatabase connects to the primary DSN and falls back once to the
// configured secondary if the primary is unreachable.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormDB, err := openAndPing(cfg.Database.DSN, cfg)
	if err == nil {
		return gormDB, nil
	}

	if cfg.Database.FallbackDSN != "" {
		logger.Warn("Primary database unreachable, trying fallback", "error", err)
		return openAndPing(cfg.Database.FallbackDSN, cfg)
	}

	return nil, err
}

func openAndPing(dsn string, cfg *config.Config) (*gorm.DB, error) {
	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories depend on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return gormDB, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.JobseekerProfile{},
		&models.Notification{},
	)
}

func SetupRouter(cfg *config.Config, repos *repositories.Container) *gin.Engine {
	emailSender := buildEmailSender(cfg)

	serviceContainer := services.NewServiceContainer(repos, emailSender, cfg.Email.BaseURL)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, appHandlers)

	return router
}

// runTokenJanitor drops expired reset and refresh tokens once an hour.
// Expired rows are already rejected on use; this only keeps the tables from
// growing without bound.
func runTokenJanitor(repos *repositories.Container) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := repos.PasswordResets.DeleteExpired(); err != nil {
			logger.Warn("Failed to purge expired reset tokens", "error", err)
		}
		if err := repos.Users.CleanExpiredRefreshTokens(); err != nil {
			logger.Warn("Failed to purge expired refresh tokens", "error", err)
		}
	}
}

func buildEmailSender(cfg *config.Config) email.Sender {
	if !cfg.Email.Enabled {
		logger.Warn("Email delivery disabled, using noop sender")
		return email.NoopSender{}
	}

	sender, err := email.NewSMTPSender(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email sender", "error", err)
	}
	return sender
}

// seedFirstAdmin creates the administrator account on first boot.
// Administrators cannot self-register, so without this the system would
// start with no one able to moderate.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("First admin credentials not set, skipping admin seeding")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.User
		result := tx.Where("email = ?", cfg.FirstAdminEmail).First(&admin)
		if result.Error == nil {
			logger.Info("Admin user already exists, skipping creation", "email", cfg.FirstAdminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check for admin user: %w", result.Error)
		}

		hashedPassword, err := auth.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Name:         "Administrator",
			Email:        cfg.FirstAdminEmail,
			PasswordHash: hashedPassword,
			Role:         models.UserRoleAdmin,
			Status:       models.UserStatusActive,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}

		logger.Info("Created first admin user", "email", cfg.FirstAdminEmail)
		return nil
	})
}
