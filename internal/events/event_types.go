package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTeamCreated EventType = "team_created"
	EventTeamUpdated EventType = "team_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TeamID    string      `json:"team_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TeamPayload is the record snapshot carried by team events.
type TeamPayload struct {
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Conference    string    `json:"conference"`
	Championships int       `json:"championships"`
	CreatedOn     time.Time `json:"createdOn"`
}
