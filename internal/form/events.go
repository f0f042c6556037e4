package form

import (
	"github.com/zjrosen/signup/internal/account"
	"github.com/zjrosen/signup/internal/pubsub"
	"github.com/zjrosen/signup/internal/registration"
)

// Lifecycle event types published by the controller.
const (
	SubmitStartedEvent pubsub.EventType = "submit_started"
	RegisteredEvent    pubsub.EventType = "registered"
	SubmitFailedEvent  pubsub.EventType = "submit_failed"
)

// Event is the payload of a lifecycle event. Input is always redacted.
type Event struct {
	Input   registration.Input
	Receipt account.Receipt
	Err     error
}

var _ pubsub.Subscriber[Event] = (*Controller)(nil)
