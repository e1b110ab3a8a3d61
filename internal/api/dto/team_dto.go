package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/spec-kit/nba-team-service/internal/domain"
)

var teamRequestKeys = []string{"name", "location", "conference", "championships"}

// TeamRequest payload for create and update. Absent fields decode to nil;
// fields sent as an explicit null are also recorded in nulls.
type TeamRequest struct {
	Name          *string `json:"name"`
	Location      *string `json:"location"`
	Conference    *string `json:"conference"`
	Championships *int    `json:"championships"`

	nulls []string
}

// UnmarshalJSON decodes the payload and keeps track of null fields.
func (r *TeamRequest) UnmarshalJSON(data []byte) error {
	type plain TeamRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.nulls = nil
	for _, key := range teamRequestKeys {
		if v, ok := raw[key]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			p.nulls = append(p.nulls, key)
		}
	}

	*r = TeamRequest(p)
	return nil
}

// Fields converts the payload to the repository write shape.
func (r TeamRequest) Fields() domain.TeamFields {
	return domain.TeamFields{
		Name:          r.Name,
		Location:      r.Location,
		Conference:    r.Conference,
		Championships: r.Championships,
		Nulls:         r.nulls,
	}
}

// TeamResponse is the JSON form of a team record.
type TeamResponse struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Conference    string    `json:"conference"`
	Championships int       `json:"championships"`
	CreatedOn     time.Time `json:"createdOn"`
}

// NewTeamResponse maps a domain team.
func NewTeamResponse(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:            team.ID,
		Name:          team.Name,
		Location:      team.Location,
		Conference:    team.Conference,
		Championships: team.Championships,
		CreatedOn:     team.CreatedOn,
	}
}
