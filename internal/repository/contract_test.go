package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/nba-team-service/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func magic() domain.TeamFields {
	return domain.TeamFields{
		Name:          strPtr("Magic"),
		Location:      strPtr("Orlando"),
		Conference:    strPtr("Eastern"),
		Championships: intPtr(0),
	}
}

// runTeamRepositoryContract exercises behavior every backend must share.
// badID must be an identifier the backend cannot parse and missingID one it
// parses but has never stored.
func runTeamRepositoryContract(t *testing.T, repo TeamRepository, badID, missingID string) {
	t.Helper()
	ctx := context.Background()

	created, err := repo.Create(ctx, magic())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected identifier to be assigned")
	}
	if created.CreatedOn.IsZero() {
		t.Fatalf("expected createdOn to be assigned")
	}

	t.Run("read back", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Magic" || got.Location != "Orlando" || got.Conference != "Eastern" || got.Championships != 0 {
			t.Fatalf("unexpected record %#v", got)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := repo.Create(ctx, magic())
		if Classify(err) != FailureDuplicateKey {
			t.Fatalf("expected duplicate key, got %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		f := magic()
		f.Name = strPtr("Heat")
		f.Conference = nil
		_, err := repo.Create(ctx, f)
		if Classify(err) != FailureValidation {
			t.Fatalf("expected validation failure, got %v", err)
		}
	})

	t.Run("bad identifier", func(t *testing.T) {
		if _, err := repo.GetByID(ctx, badID); Classify(err) != FailureBadIdentifier {
			t.Fatalf("expected bad identifier on get, got %v", err)
		}
		if _, err := repo.UpdateByID(ctx, badID, domain.TeamFields{Location: strPtr("x")}); Classify(err) != FailureBadIdentifier {
			t.Fatalf("expected bad identifier on update, got %v", err)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		if _, err := repo.GetByID(ctx, missingID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found on get, got %v", err)
		}
		if _, err := repo.UpdateByID(ctx, missingID, domain.TeamFields{Location: strPtr("x")}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found on update, got %v", err)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := repo.UpdateByID(ctx, created.ID, domain.TeamFields{
			Name:     strPtr("updated name"),
			Location: strPtr("updated location"),
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.ID != created.ID {
			t.Fatalf("identifier changed from %s to %s", created.ID, updated.ID)
		}
		if updated.Name != "updated name" || updated.Location != "updated location" || updated.Conference != "Eastern" {
			t.Fatalf("unexpected record after update %#v", updated)
		}
	})

	t.Run("update enforces schema", func(t *testing.T) {
		if _, err := repo.UpdateByID(ctx, created.ID, domain.TeamFields{Name: strPtr("")}); Classify(err) != FailureValidation {
			t.Fatalf("expected validation failure, got %v", err)
		}
	})

	t.Run("update rejects null required field", func(t *testing.T) {
		_, err := repo.UpdateByID(ctx, created.ID, domain.TeamFields{Nulls: []string{"location", "championships"}})
		if Classify(err) != FailureValidation {
			t.Fatalf("expected validation failure, got %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if got.Location == "" {
			t.Fatalf("expected stored location to survive, got %#v", got)
		}
	})

	t.Run("update enforces uniqueness", func(t *testing.T) {
		other := magic()
		other.Name = strPtr("Celtics")
		if _, err := repo.Create(ctx, other); err != nil {
			t.Fatalf("create second team: %v", err)
		}
		_, err := repo.UpdateByID(ctx, created.ID, domain.TeamFields{Name: strPtr("Celtics")})
		if Classify(err) != FailureDuplicateKey {
			t.Fatalf("expected duplicate key, got %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		teams, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(teams) != 2 {
			t.Fatalf("expected 2 teams, got %d", len(teams))
		}
		if teams[0].ID != created.ID {
			t.Fatalf("expected oldest team first, got %#v", teams)
		}
	})
}
