package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestDispatcherRunsAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls int
	failing := errors.New("handler failed")

	d.Subscribe(EventTeamCreated, func(context.Context, Event) error {
		calls++
		return failing
	})
	d.Subscribe(EventTeamCreated, func(context.Context, Event) error {
		calls++
		return nil
	})
	d.Subscribe(EventTeamUpdated, func(context.Context, Event) error {
		t.Fatalf("updated handler must not run for created events")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTeamCreated})
	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
	if !errors.Is(err, failing) {
		t.Fatalf("expected joined handler error, got %v", err)
	}
}

type recordingPublisher struct {
	channel string
	message []byte
	err     error
}

func (p *recordingPublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	p.channel = channel
	p.message, _ = message.([]byte)
	return redis.NewIntResult(1, p.err)
}

func TestRedisPublisher(t *testing.T) {
	pub := &recordingPublisher{}
	handler := NewRedisPublisher(pub, "nba-teams.events")

	event := Event{
		ID:        "evt-1",
		Type:      EventTeamUpdated,
		TeamID:    "5f1d7c2a9b3e4a0012345678",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Payload:   TeamPayload{Name: "Magic", Location: "Orlando", Conference: "Eastern"},
	}
	if err := handler(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pub.channel != "nba-teams.events" {
		t.Fatalf("unexpected channel %q", pub.channel)
	}

	var decoded map[string]any
	if err := json.Unmarshal(pub.message, &decoded); err != nil {
		t.Fatalf("message is not JSON: %v", err)
	}
	if decoded["type"] != "team_updated" || decoded["team_id"] != event.TeamID {
		t.Fatalf("unexpected message %s", pub.message)
	}
}

func TestRedisPublisherError(t *testing.T) {
	pub := &recordingPublisher{err: redis.ErrClosed}
	handler := NewRedisPublisher(pub, "teams")
	if err := handler(context.Background(), Event{Type: EventTeamCreated}); !errors.Is(err, redis.ErrClosed) {
		t.Fatalf("expected wrapped redis error, got %v", err)
	}
}
