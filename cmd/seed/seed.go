package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spec-kit/nba-team-service/internal/domain"
	"github.com/spec-kit/nba-team-service/internal/repository"
)

// fixtureTeam mirrors one entry of the fixture file.
type fixtureTeam struct {
	Name          string `yaml:"name"`
	Location      string `yaml:"location"`
	Conference    string `yaml:"conference"`
	Championships int    `yaml:"championships"`
}

type fixtureFile struct {
	Teams []fixtureTeam `yaml:"teams"`
}

type seedSummary struct {
	Total    int
	Inserted int
	Skipped  int
	Errors   int
}

func loadFixtures(path string) ([]fixtureTeam, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return parseFixtures(data)
}

func parseFixtures(data []byte) ([]fixtureTeam, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return f.Teams, nil
}

// seed creates every team; names already present are skipped.
func seed(ctx context.Context, repo repository.TeamRepository, teams []fixtureTeam, logger *zap.Logger) seedSummary {
	summary := seedSummary{Total: len(teams)}
	for i := range teams {
		t := teams[i]
		_, err := repo.Create(ctx, domain.TeamFields{
			Name:          &t.Name,
			Location:      &t.Location,
			Conference:    &t.Conference,
			Championships: &t.Championships,
		})
		switch {
		case err == nil:
			summary.Inserted++
		case repository.Classify(err) == repository.FailureDuplicateKey:
			summary.Skipped++
		default:
			summary.Errors++
			logger.Error("seed team", zap.String("name", t.Name), zap.Error(err))
		}
	}
	return summary
}
