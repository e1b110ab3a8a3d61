package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/nba-team-service/internal/domain"
	"github.com/spec-kit/nba-team-service/internal/events"
	"github.com/spec-kit/nba-team-service/internal/repository"
)

// TeamService coordinates team persistence and change events.
type TeamService struct {
	teams      repository.TeamRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// TeamDependencies encapsulates collaborators required by TeamService.
type TeamDependencies struct {
	TeamRepo   repository.TeamRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewTeamService constructs the service.
func NewTeamService(deps TeamDependencies) *TeamService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{
		teams:      deps.TeamRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Create persists a new team. Schema enforcement happens in the repository.
func (s *TeamService) Create(ctx context.Context, fields domain.TeamFields) (*domain.Team, error) {
	team, err := s.teams.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventTeamCreated, team)
	return team, nil
}

// Get fetches a team by identifier.
func (s *TeamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

// List returns every team, oldest first.
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.teams.List(ctx)
}

// Update applies fields to the team and returns the updated record.
func (s *TeamService) Update(ctx context.Context, id string, fields domain.TeamFields) (*domain.Team, error) {
	team, err := s.teams.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventTeamUpdated, team)
	return team, nil
}

// publish never fails the caller; the write has already happened.
func (s *TeamService) publish(ctx context.Context, eventType events.EventType, team *domain.Team) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TeamID:    team.ID,
		Timestamp: s.now().UTC(),
		Payload: events.TeamPayload{
			Name:          team.Name,
			Location:      team.Location,
			Conference:    team.Conference,
			Championships: team.Championships,
			CreatedOn:     team.CreatedOn,
		},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Error("publish team event",
			zap.String("event_type", string(eventType)),
			zap.String("team_id", team.ID),
			zap.Error(err),
		)
	}
}
