package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/toy-store/internal/api/http"
	"github.com/spec-kit/toy-store/internal/api/http/handlers"
	"github.com/spec-kit/toy-store/internal/auth"
	"github.com/spec-kit/toy-store/internal/config"
	"github.com/spec-kit/toy-store/internal/observability"
	"github.com/spec-kit/toy-store/internal/persistence"
	"github.com/spec-kit/toy-store/internal/repository"
	"github.com/spec-kit/toy-store/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongo", zap.Error(err))
	}
	defer store.Close(context.Background())

	var (
		toyRepo  repository.ToyRepository
		userRepo repository.UserRepository
		ready    func(context.Context) error
	)
	if store.Connected() {
		if cfg.Mongo.EnsureIndexes {
			if err := persistence.EnsureIndexes(ctx, store.DB, logger); err != nil {
				logger.Fatal("failed to ensure indexes", zap.Error(err))
			}
		}
		toyRepo = repository.NewToyRepository(store.DB.Collection("toys"))
		userRepo = repository.NewUserRepository(store.DB.Collection("users"))
		ready = store.Ping
	} else {
		logger.Warn("running with in-memory repositories; data is not persisted")
		toyRepo = repository.NewMemoryToyRepository()
		userRepo = repository.NewMemoryUserRepository()
	}

	authService := service.NewAuthService(*cfg, userRepo, logger)
	toyService := service.NewToyService(toyRepo, logger)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics)
	app.Static("/", cfg.App.StaticDir)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(ready, metrics),
		Toys:           handlers.NewToysHandler(toyService),
		Users:          handlers.NewUsersHandler(authService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
