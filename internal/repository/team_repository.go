package repository

import (
	"context"

	"github.com/spec-kit/nba-team-service/internal/domain"
)

// TeamRepository manages persistence for team records. Implementations
// enforce the domain.TeamFields rules on every write and report failures through the
// sentinels in errors.go.
type TeamRepository interface {
	Create(ctx context.Context, fields domain.TeamFields) (*domain.Team, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	// UpdateByID applies fields and returns the record as it is after the update.
	UpdateByID(ctx context.Context, id string, fields domain.TeamFields) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
}
