package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/carbonkhet/carbonkhet/internal/pkg/config"
	"github.com/carbonkhet/carbonkhet/internal/pkg/database"
	"github.com/carbonkhet/carbonkhet/internal/pkg/health"
	jwtpkg "github.com/carbonkhet/carbonkhet/internal/pkg/jwt"
	"github.com/carbonkhet/carbonkhet/internal/pkg/logger"
	"github.com/carbonkhet/carbonkhet/internal/pkg/middleware"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/services/auth"
	"github.com/carbonkhet/carbonkhet/services/auth/gateway"
	"github.com/carbonkhet/carbonkhet/services/auth/handler"
	httpHandler "github.com/carbonkhet/carbonkhet/services/auth/handler/http"
	"github.com/carbonkhet/carbonkhet/services/auth/repository"
	"github.com/carbonkhet/carbonkhet/services/auth/usecase"
)

const appName = "carbonkhet-auth"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Resolve the JWT secret before anything else; production refuses to
	// start without one.
	secret, err := jwtpkg.ResolveSecret(configs)
	if err != nil {
		log.Fatalf("Failed to resolve JWT secret: %v", err)
	}
	configs.JWT.Secret = secret

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Select the credential store: MongoDB when a URI is configured,
	// in-process memory otherwise. A failed Mongo connection degrades to
	// memory so the service still comes up.
	var credStore auth.CredentialStore
	storage := "memory"
	if configs.Mongo.URI != "" {
		mongoClient, err := database.NewMongoClient(configs.Mongo)
		if err != nil {
			zapLogger.Warn("Failed to connect to MongoDB, falling back to in-memory store",
				zap.Error(err),
			)
			credStore = repository.NewMemoryStore()
		} else {
			defer mongoClient.Close()
			credStore = repository.NewMongoStore(mongoClient)
			storage = "mongodb"
		}
	} else {
		zapLogger.Info("No MongoDB URI configured, using in-memory store")
		credStore = repository.NewMemoryStore()
	}

	if err := bootstrapAdmin(credStore, configs); err != nil {
		zapLogger.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}

	// Initialize Gateway
	notificationGW := gateway.NewNotificationGW(configs.SMTP, configs.Client.BaseURL)

	// Initialize UseCase
	authUC := usecase.NewAuthUC(credStore, notificationGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(authUC)
	farmerHandler := httpHandler.NewFarmerHandler(authUC)
	Handler := handler.NewHandler(authHandler, farmerHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(configs.App.Environment))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, storage)

	// Register service routes
	Handler.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
		zap.String("storage", storage),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}

// bootstrapAdmin ensures the configured admin account exists with the
// configured password. Skipped when no admin email is set.
func bootstrapAdmin(store auth.CredentialStore, configs *models.Config) error {
	if configs.Admin.Email == "" || configs.Admin.Password == "" {
		logger.Warn("Admin credentials not configured, skipping admin bootstrap")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := store.FindAdminByEmail(ctx, configs.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		admin, err = store.CreateDefaultAdmin(ctx, configs.Admin.Email, configs.Admin.Name)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		logger.Info("Default admin account created",
			logger.String("email", admin.Email))
	}

	if err := store.StorePassword(ctx, admin.ID, models.UserTypeAdmin, configs.Admin.Password); err != nil {
		return fmt.Errorf("failed to store admin password: %w", err)
	}

	return nil
}
