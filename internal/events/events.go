// Package events announces engagement changes to other services.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Routing keys
const (
	RoutingCommunicationAdded = "client_project.communication.added"
	RoutingMilestoneUpdated   = "client_project.milestone.updated"
	RoutingFeedbackAdded      = "client_project.feedback.added"
)

// Event is the envelope published for every engagement change
type Event struct {
	ID         uuid.UUID `json:"id"`
	RoutingKey string    `json:"type"`
	ProjectID  uuid.UUID `json:"projectId"`
	ActorID    uuid.UUID `json:"actorId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// New builds an event with a fresh id
func New(routingKey string, projectID, actorID uuid.UUID, payload any, now time.Time) Event {
	return Event{
		ID:         uuid.New(),
		RoutingKey: routingKey,
		ProjectID:  projectID,
		ActorID:    actorID,
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
}

// Publisher hands events to a broker
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event. Used when AMQP_URL is empty.
type Nop struct{}

// Publish discards the event
func (Nop) Publish(context.Context, Event) error { return nil }

// Close is a no-op
func (Nop) Close() error { return nil }
