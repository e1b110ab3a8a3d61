package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/nba-team-service/internal/domain"
)

var (
	// ErrNotFound is returned when no record matches an identifier.
	ErrNotFound = errors.New("team not found")
	// ErrBadIdentifier is returned when an id cannot be parsed into the store's id type.
	ErrBadIdentifier = errors.New("cast to objectid failed")
	// ErrDuplicateKey is returned when a write would break the unique name constraint.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrValidation is returned when a write breaks the schema.
	ErrValidation = domain.ErrValidationFailed
)

// FailureKind tags a storage failure for the HTTP layer.
type FailureKind int

const (
	FailureOther FailureKind = iota
	FailureBadIdentifier
	FailureValidation
	FailureDuplicateKey
	FailureNotFound
)

func (k FailureKind) String() string {
	switch k {
	case FailureBadIdentifier:
		return "bad_identifier"
	case FailureValidation:
		return "validation_failed"
	case FailureDuplicateKey:
		return "duplicate_key"
	case FailureNotFound:
		return "not_found"
	default:
		return "other"
	}
}

const (
	pgUniqueViolation           = "23505"
	pgNotNullViolation          = "23502"
	pgCheckViolation            = "23514"
	pgInvalidTextRepresentation = "22P02"
)

// Classify maps err to a FailureKind. Sentinels and driver codes are checked
// first; message matching is kept for errors that reach us untyped.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureOther
	}

	switch {
	case errors.Is(err, ErrBadIdentifier):
		return FailureBadIdentifier
	case errors.Is(err, ErrValidation):
		return FailureValidation
	case errors.Is(err, ErrDuplicateKey):
		return FailureDuplicateKey
	case errors.Is(err, ErrNotFound):
		return FailureNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return FailureDuplicateKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return FailureBadIdentifier
		case pgNotNullViolation, pgCheckViolation:
			return FailureValidation
		case pgUniqueViolation:
			return FailureDuplicateKey
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "cast to objectid failed"):
		return FailureBadIdentifier
	case strings.Contains(msg, "validation failed"):
		return FailureValidation
	case strings.Contains(msg, "duplicate key"):
		return FailureDuplicateKey
	}
	return FailureOther
}
