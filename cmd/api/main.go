package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/nba-team-service/internal/api/http"
	"github.com/spec-kit/nba-team-service/internal/api/http/handlers"
	"github.com/spec-kit/nba-team-service/internal/config"
	"github.com/spec-kit/nba-team-service/internal/events"
	"github.com/spec-kit/nba-team-service/internal/observability"
	"github.com/spec-kit/nba-team-service/internal/persistence"
	"github.com/spec-kit/nba-team-service/internal/repository"
	"github.com/spec-kit/nba-team-service/internal/service"
	"github.com/spec-kit/nba-team-service/internal/worker"
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

	logger = logger.With(zap.String("service", cfg.App.Name), zap.String("env", cfg.App.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.OpenStore(ctx, *cfg, logger)
	if err != nil {
		logger.Fatal("failed to open team store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer store.Close(context.Background())

	teamRepo, err := repository.NewTeamRepository(ctx, store)
	if err != nil {
		logger.Fatal("failed to init team repository", zap.Error(err))
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	if redis.Reachable {
		worker.StartEventWorker(dispatcher, redis.Client, cfg.Redis.EventsChannel)
	}

	teamService := service.NewTeamService(service.TeamDependencies{
		TeamRepo:   teamRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	dependencies := map[string]handlers.Pinger{
		"redis": redis,
	}
	if store.Driver != config.StoreDriverMemory {
		dependencies[store.Driver] = store
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies),
		Metrics: handlers.NewMetricsHandler(metrics),
		Teams:   handlers.NewTeamsHandler(teamService, logger),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("store", store.Driver))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("fiber shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
