package entity

import (
	"time"

	"github.com/google/uuid"
)

// OutboxStatus tracks delivery of an outbox event.
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusDead    OutboxStatus = "dead" // Gave up after MaxAttempts.
)

// Event topics written to the outbox.
const (
	TopicRouteOptimized      = "route.optimized"
	TopicReportStatusChanged = "report.status_changed"
)

// OutboxEvent is a domain event waiting to be published.
type OutboxEvent struct {
	ID            uuid.UUID
	Topic         string
	Key           string // Ordering/correlation key, e.g. the report ID.
	Payload       []byte // JSON-encoded event body.
	Status        OutboxStatus
	Attempts      int
	MaxAttempts   int
	LastError     string
	NextAttemptAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
