// Package pubsub is the state-snapshot bus. Form controllers publish an
// immutable snapshot on every transition; rendering and audit layers
// subscribe to snapshots instead of reaching into controller state.
package pubsub

import (
	"context"
)

// Message is one published state snapshot.
type Message struct {
	// Topic identifies the stream (e.g. "auth.login.state").
	Topic string
	// Form names the originating controller ("login", "reset", "forgot").
	Form string
	// Payload is the JSON-encoded snapshot.
	Payload []byte
	// Metadata carries transition context (phase, timestamps).
	Metadata map[string]string
}

// Handler processes one received snapshot.
type Handler func(ctx context.Context, msg Message) error

// Publisher is the sending half of the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber is the receiving half of the bus.
type Subscriber interface {
	// Subscribe registers the handler for a topic and returns immediately;
	// delivery runs until the context is canceled or the bus closes.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
