package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/nba-team-service/internal/domain"
)

const teamColumns = `id, name, location, conference, championships, created_on`

// PostgresTeamRepository stores team records in the nba_teams table.
type PostgresTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTeamRepository constructs repository.
func NewPostgresTeamRepository(pool *pgxpool.Pool) *PostgresTeamRepository {
	return &PostgresTeamRepository{pool: pool}
}

func (r *PostgresTeamRepository) Create(ctx context.Context, fields domain.TeamFields) (*domain.Team, error) {
	if err := domain.ValidateNew(fields); err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO nba_teams (name, location, conference, championships)
        VALUES ($1,$2,$3,$4)
        RETURNING ` + teamColumns
	team, err := scanTeam(r.pool.QueryRow(ctx, query,
		*fields.Name,
		*fields.Location,
		*fields.Conference,
		*fields.Championships,
	))
	if err != nil {
		return nil, wrapPostgresError(err)
	}
	return team, nil
}

func (r *PostgresTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	const query = `SELECT ` + teamColumns + ` FROM nba_teams WHERE id=$1`
	team, err := scanTeam(r.pool.QueryRow(ctx, query, uid))
	if err != nil {
		return nil, wrapPostgresError(err)
	}
	return team, nil
}

func (r *PostgresTeamRepository) UpdateByID(ctx context.Context, id string, fields domain.TeamFields) (*domain.Team, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateChange(fields); err != nil {
		return nil, err
	}

	const query = `
        UPDATE nba_teams SET
            name=COALESCE($2, name),
            location=COALESCE($3, location),
            conference=COALESCE($4, conference),
            championships=COALESCE($5, championships)
        WHERE id=$1
        RETURNING ` + teamColumns
	team, err := scanTeam(r.pool.QueryRow(ctx, query,
		uid,
		fields.Name,
		fields.Location,
		fields.Conference,
		fields.Championships,
	))
	if err != nil {
		return nil, wrapPostgresError(err)
	}
	return team, nil
}

func (r *PostgresTeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM nba_teams ORDER BY created_on, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Team{}
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *team)
	}
	return result, rows.Err()
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var (
		team domain.Team
		id   uuid.UUID
	)
	if err := row.Scan(
		&id,
		&team.Name,
		&team.Location,
		&team.Conference,
		&team.Championships,
		&team.CreatedOn,
	); err != nil {
		return nil, err
	}
	team.ID = id.String()
	return &team, nil
}

func parseUUID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w for value %q: %v", ErrBadIdentifier, id, err)
	}
	return uid, nil
}

func wrapPostgresError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		case pgNotNullViolation, pgCheckViolation:
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return err
}
