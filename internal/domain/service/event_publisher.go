package service

import (
	"context"
)

// Event is a message handed to the broker. Payload is already-encoded JSON.
type Event struct {
	ID        string            `json:"id"`
	Topic     string            `json:"topic"`
	Key       string            `json:"key,omitempty"` // Ordering key, e.g. the report ID
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	Payload   []byte            `json:"payload"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish delivers a single event. A nil error means the broker accepted it.
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
