package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/nba-team-service/internal/config"
)

// Store holds the connection for the configured team record backend. Only
// the handle matching Driver is set.
type Store struct {
	Driver   string
	Mongo    *Mongo
	Postgres *Postgres
}

// OpenStore connects the backend named by cfg.Store.Driver and prepares its
// schema when the backend needs one applied.
func OpenStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Store, error) {
	store := &Store{Driver: cfg.Store.Driver}

	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		m, err := NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		store.Mongo = m
	case config.StoreDriverPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.PoolHandle(), DefaultMigrationsDir, logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		store.Postgres = pg
	case config.StoreDriverMemory:
		logger.Warn("using in-memory team store; records are lost on restart")
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	return store, nil
}

// Ping verifies the active backend.
func (s *Store) Ping(ctx context.Context) error {
	switch s.Driver {
	case config.StoreDriverMongo:
		return s.Mongo.Ping(ctx)
	case config.StoreDriverPostgres:
		return s.Postgres.Ping(ctx)
	default:
		return nil
	}
}

// Close releases the active backend.
func (s *Store) Close(ctx context.Context) {
	if s == nil {
		return
	}
	s.Mongo.Close(ctx)
	s.Postgres.Close()
}
