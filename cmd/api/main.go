package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	authUseCase "github.com/amirhossein-jamali/expense-tracker/internal/domain/usecase/auth"
	expenseUseCase "github.com/amirhossein-jamali/expense-tracker/internal/domain/usecase/expense"

	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Missing settings, the signing secret included, stop startup
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction() || cfg.Logger.Format == "json")
	appLogger.SetLevel(core.ParseLogLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()

	tokenService, err := security.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	// Connect to the database
	dbConfig := database.NewConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(context.Background()); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		_ = dbManager.Close()
		_ = appLogger.Flush()
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger, dbManager.QueryTimeout())
	expenseRepo := repository.NewExpenseRepository(dbManager.DB(), tp, appLogger, dbManager.QueryTimeout())

	// Initialize use cases
	authUseCaseImpl := authUseCase.NewAuthUseCase(userRepo, security.NewBcryptHasher(0), tokenService, tp, appLogger)
	expenseUseCaseImpl := expenseUseCase.NewExpenseUseCase(expenseRepo, tp, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, cfg.Server.BasePath, routes.Handlers{
		Auth:    handler.NewAuthHandler(authUseCaseImpl, appLogger),
		Expense: handler.NewExpenseHandler(expenseUseCaseImpl, appLogger),
		Health:  handler.NewHealthHandler(dbManager, tp, appLogger),
	}, authUseCaseImpl, appLogger)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address":   server.Addr,
			"base_path": cfg.Server.BasePath,
			"env":       cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
	}

	ctx, cancel := tp.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
