package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher is the slice of the go-redis client used to fan events out.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// NewRedisPublisher returns a handler that writes each event as JSON to channel.
func NewRedisPublisher(client Publisher, channel string) EventHandler {
	return func(ctx context.Context, event Event) error {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", event.Type, err)
		}
		if err := client.Publish(ctx, channel, body).Err(); err != nil {
			return fmt.Errorf("publish %s event to %s: %w", event.Type, channel, err)
		}
		return nil
	}
}
