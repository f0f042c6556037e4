// Package pubsub provides a small generic publish/subscribe broker and the
// glue that turns a subscription into Bubble Tea messages.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened. Publishers define their own values.
type EventType string

// Event is a published payload stamped with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T) int
}
