package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/nba-team-service/internal/api/dto"
	"github.com/spec-kit/nba-team-service/internal/repository"
	"github.com/spec-kit/nba-team-service/internal/service"
	apperrors "github.com/spec-kit/nba-team-service/pkg/util/errorutil"
)

// TeamsHandler exposes the /api/nba-teams resource.
//
// Validation happens in two stages. Create checks only that name is present
// before touching storage; every other field, and every field of an update,
// is checked by the repository against the tags on domain.TeamFields and comes
// back as a validation failure.
type TeamsHandler struct {
	teams  *service.TeamService
	logger *zap.Logger
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teams *service.TeamService, logger *zap.Logger) *TeamsHandler {
	return &TeamsHandler{teams: teams, logger: logger.Named("nba-team-router")}
}

// Create handles POST /api/nba-teams.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	h.logger.Info("POST /api/nba-teams processing a request")

	req, err := parseTeamRequest(c)
	if err != nil {
		h.logger.Info("POST /api/nba-teams responding 400 for undecodable body", zap.Error(err))
		return apperrors.NewValidationError("invalid payload", err)
	}
	if req.Name == nil || *req.Name == "" {
		h.logger.Info("POST /api/nba-teams responding 400 for missing name")
		return apperrors.NewValidationError("name required", nil)
	}

	team, err := h.teams.Create(c.UserContext(), req.Fields())
	if err != nil {
		return h.storageFailure("POST /api/nba-teams", "", err)
	}

	h.logger.Info("POST /api/nba-teams saved a new team", zap.String("id", team.ID), zap.String("name", team.Name))
	return c.JSON(dto.NewTeamResponse(team))
}

// List handles GET /api/nba-teams.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	h.logger.Info("GET /api/nba-teams processing a request")

	teams, err := h.teams.List(c.UserContext())
	if err != nil {
		return h.storageFailure("GET /api/nba-teams", "", err)
	}

	resp := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, dto.NewTeamResponse(&teams[i]))
	}
	h.logger.Info("GET /api/nba-teams responding 200", zap.Int("count", len(resp)))
	return c.JSON(resp)
}

// Get handles GET /api/nba-teams/:id.
func (h *TeamsHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	h.logger.Info("GET /api/nba-teams/:id processing a request", zap.String("id", id))

	team, err := h.teams.Get(c.UserContext(), id)
	if err != nil {
		return h.storageFailure("GET /api/nba-teams/:id", id, err)
	}

	h.logger.Info("GET /api/nba-teams/:id responding 200", zap.String("id", id))
	return c.JSON(dto.NewTeamResponse(team))
}

// Update handles PUT /api/nba-teams/:id. Without an id it answers 400.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		h.logger.Info("PUT /api/nba-teams responding 400 for no id")
		return apperrors.NewValidationError("id required", nil)
	}
	h.logger.Info("PUT /api/nba-teams/:id processing a request", zap.String("id", id))

	req, err := parseTeamRequest(c)
	if err != nil {
		h.logger.Info("PUT /api/nba-teams/:id responding 400 for undecodable body", zap.Error(err))
		return apperrors.NewValidationError("invalid payload", err)
	}

	team, err := h.teams.Update(c.UserContext(), id, req.Fields())
	if err != nil {
		return h.storageFailure("PUT /api/nba-teams/:id", id, err)
	}

	h.logger.Info("PUT /api/nba-teams/:id responding 200 for updated team", zap.String("id", team.ID))
	return c.JSON(dto.NewTeamResponse(team))
}

// storageFailure maps a repository error to its response. Order matters:
// bad id, then validation, then duplicate key, then everything else.
func (h *TeamsHandler) storageFailure(route, id string, err error) error {
	kind := repository.Classify(err)
	fields := []zap.Field{zap.String("route", route), zap.String("kind", kind.String()), zap.Error(err)}
	if id != "" {
		fields = append(fields, zap.String("id", id))
	}

	switch kind {
	case repository.FailureBadIdentifier:
		h.logger.Error(route+" responding 404 for malformed id", fields...)
		return apperrors.NewBadIdentifier(id, err)
	case repository.FailureValidation:
		h.logger.Error(route+" responding 400 for failed validation", fields...)
		return apperrors.NewValidationError("team validation failed", err)
	case repository.FailureDuplicateKey:
		h.logger.Error(route+" responding 409 for duplicate key", fields...)
		return apperrors.NewConflict("team name already exists", err)
	case repository.FailureNotFound:
		h.logger.Info(route+" responding 404 for no team found", fields...)
		return apperrors.NewNotFound("team", err)
	default:
		h.logger.Error(route+" responding 500 for unclassified error", fields...)
		return apperrors.NewInternalError(err)
	}
}

// parseTeamRequest treats an empty or non-JSON body as an empty object.
func parseTeamRequest(c *fiber.Ctx) (dto.TeamRequest, error) {
	var req dto.TeamRequest
	if len(c.Body()) == 0 {
		return req, nil
	}
	ctype, _, _ := strings.Cut(c.Get(fiber.HeaderContentType), ";")
	if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(ctype)), "json") {
		return req, nil
	}
	err := c.BodyParser(&req)
	return req, err
}
