package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/nba-team-service/internal/domain"
)

// MemoryTeamRepository keeps team records in process. Identifiers are
// ObjectIDs so it accepts and rejects the same ids the Mongo store does.
type MemoryTeamRepository struct {
	mu     sync.RWMutex
	byID   map[string]domain.Team
	byName map[string]string
	now    func() time.Time
}

// NewMemoryTeamRepository constructs an empty repository.
func NewMemoryTeamRepository() *MemoryTeamRepository {
	return &MemoryTeamRepository{
		byID:   make(map[string]domain.Team),
		byName: make(map[string]string),
		now:    time.Now,
	}
}

func (r *MemoryTeamRepository) Create(ctx context.Context, fields domain.TeamFields) (*domain.Team, error) {
	if err := domain.ValidateNew(fields); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[*fields.Name]; taken {
		return nil, duplicateName(*fields.Name)
	}
	team := domain.Team{
		ID:        primitive.NewObjectID().Hex(),
		CreatedOn: r.now().UTC(),
	}
	fields.Apply(&team)
	r.byID[team.ID] = team
	r.byName[team.Name] = team.ID
	return &team, nil
}

func (r *MemoryTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.byID[oid.Hex()]
	if !ok {
		return nil, ErrNotFound
	}
	return &team, nil
}

func (r *MemoryTeamRepository) UpdateByID(ctx context.Context, id string, fields domain.TeamFields) (*domain.Team, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	id = oid.Hex()
	if err := domain.ValidateChange(fields); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if fields.Name != nil {
		if owner, taken := r.byName[*fields.Name]; taken && owner != id {
			return nil, duplicateName(*fields.Name)
		}
	}

	oldName := team.Name
	fields.Apply(&team)
	if team.Name != oldName {
		delete(r.byName, oldName)
		r.byName[team.Name] = id
	}
	r.byID[id] = team
	return &team, nil
}

func (r *MemoryTeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Team, 0, len(r.byID))
	for _, team := range r.byID {
		result = append(result, team)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedOn.Equal(result[j].CreatedOn) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedOn.Before(result[j].CreatedOn)
	})
	return result, nil
}

func duplicateName(name string) error {
	return fmt.Errorf("%w error collection: %s index: name_1 dup key: { name: %q }", ErrDuplicateKey, domain.TeamCollection, name)
}
