package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TeamCollection is the document collection and table stem for team records.
const TeamCollection = "nba-teams"

// ErrValidationFailed is matched by every schema violation.
var ErrValidationFailed = errors.New("validation failed")

var validate = validator.New()

// UniqueFields returns the fields no two records may share.
func UniqueFields() []string {
	return []string{"name"}
}

// ValidationError lists the fields that failed the schema.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s %s: %s", TeamCollection, ErrValidationFailed, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ValidateNew enforces the schema on a record about to be created: every
// required field must be present.
func ValidateNew(f TeamFields) error {
	return toValidationError(validate.Struct(f), f.Nulls)
}

// ValidateChange enforces the schema on the fields an update touches. The
// stored record already satisfies the schema, so only supplied fields are
// checked. A field supplied as null counts as removing a required value.
func ValidateChange(f TeamFields) error {
	supplied := f.supplied()
	if len(supplied) == 0 {
		return toValidationError(nil, f.Nulls)
	}
	return toValidationError(validate.StructPartial(f, supplied...), f.Nulls)
}

func toValidationError(err error, nulls []string) error {
	problems := map[string]string{}
	for _, name := range nulls {
		problems[name] = "path is required"
	}

	var verrs validator.ValidationErrors
	switch {
	case err == nil:
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			problems[strings.ToLower(fe.Field())] = "path is required"
		}
	default:
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}
	return nil
}
