package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"minivutto_backend/internal/auth"
	"minivutto_backend/internal/config"
	"minivutto_backend/internal/email"
	"minivutto_backend/internal/handlers"
	"minivutto_backend/internal/logger"
	"minivutto_backend/internal/middleware"
	"minivutto_backend/internal/models"
	"minivutto_backend/internal/routes"
	"minivutto_backend/internal/services"
	"minivutto_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", address))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received, draining connections...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
		}
	}
	logger.Info("Server stopped")
}

// AutoMigrate keeps the schema in sync with the model structs. The test
// suite calls it against its own database handle.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.VerificationToken{},
		&models.Bike{},
	)
}

// SetupRouter assembles the fully wired engine. Tests reuse it with their
// own config and database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens, serviceContainer.BikeRepo)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		smtp, err := email.NewSMTPProvider(email.Config{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUsername,
			Password:    cfg.Email.SMTPPassword,
			FromEmail:   cfg.Email.FromEmail,
			FromName:    cfg.Email.FromName,
			SendTimeout: time.Duration(cfg.Email.SendTimeout) * time.Second,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		mailer = smtp
	} else {
		logger.Warn("SMTP_HOST is not set, verification codes will be logged instead of emailed")
		mailer = email.NewLogProvider()
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	return services.NewServiceContainer(tokens, mailer)
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	return handlers.NewAppHandlers(serviceContainer, customValidator)
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
