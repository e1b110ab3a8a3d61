package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/nba-team-service/internal/config"
	"github.com/spec-kit/nba-team-service/internal/observability"
	"github.com/spec-kit/nba-team-service/internal/persistence"
	"github.com/spec-kit/nba-team-service/internal/repository"
)

func main() {
	file := flag.String("file", "fixtures/nba_teams.yaml", "YAML file with the teams to create")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline for the seed run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	teams, err := loadFixtures(*file)
	if err != nil {
		logger.Fatal("failed to load fixtures", zap.String("file", *file), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := persistence.OpenStore(ctx, *cfg, logger)
	if err != nil {
		logger.Fatal("failed to open team store", zap.Error(err))
	}
	defer store.Close(context.Background())

	repo, err := repository.NewTeamRepository(ctx, store)
	if err != nil {
		logger.Fatal("failed to init team repository", zap.Error(err))
	}

	summary := seed(ctx, repo, teams, logger)
	logger.Info("teams seed complete",
		zap.Int("total", summary.Total),
		zap.Int("inserted", summary.Inserted),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errors", summary.Errors),
	)
}
