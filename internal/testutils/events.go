package testutils

import (
	"context"

	"client-portal-backend/internal/events"
)

// EventRecorder is an events.Publisher that keeps every published event in memory
type EventRecorder struct {
	Events []events.Event
}

// Publish appends the event
func (r *EventRecorder) Publish(_ context.Context, e events.Event) error {
	r.Events = append(r.Events, e)
	return nil
}

// Close is a no-op
func (r *EventRecorder) Close() error { return nil }
