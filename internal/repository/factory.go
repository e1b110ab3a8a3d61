package repository

import (
	"context"
	"fmt"

	"github.com/spec-kit/nba-team-service/internal/config"
	"github.com/spec-kit/nba-team-service/internal/persistence"
)

// NewTeamRepository returns the team repository backed by store. For Mongo it
// also creates the unique indexes before returning.
func NewTeamRepository(ctx context.Context, store *persistence.Store) (TeamRepository, error) {
	switch store.Driver {
	case config.StoreDriverMongo:
		repo := NewMongoTeamRepository(store.Mongo.Collection())
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case config.StoreDriverPostgres:
		return NewPostgresTeamRepository(store.Postgres.PoolHandle()), nil
	case config.StoreDriverMemory:
		return NewMemoryTeamRepository(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", store.Driver)
	}
}
