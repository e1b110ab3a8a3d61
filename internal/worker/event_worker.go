package worker

import (
	"github.com/spec-kit/nba-team-service/internal/events"
)

// StartEventWorker subscribes the Redis publisher to every team event type.
func StartEventWorker(dispatcher events.Dispatcher, publisher events.Publisher, channel string) {
	if dispatcher == nil || publisher == nil {
		return
	}
	handler := events.NewRedisPublisher(publisher, channel)
	dispatcher.Subscribe(events.EventTeamCreated, handler)
	dispatcher.Subscribe(events.EventTeamUpdated, handler)
}
