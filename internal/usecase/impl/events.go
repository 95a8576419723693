package impl

import (
	"encoding/json"
	"time"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/errors"
)

const defaultOutboxMaxAttempts = 8

type routeOptimizedEvent struct {
	RequestID        string    `json:"requestId,omitempty"`
	StopCount        int       `json:"stopCount"`
	ReportIDs        []string  `json:"reportIds"`
	DistanceKm       float64   `json:"distanceKm"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
	Converged        bool      `json:"converged"`
	OptimizedAt      time.Time `json:"optimizedAt"`
}

type reportStatusChangedEvent struct {
	RequestID string              `json:"requestId,omitempty"`
	ReportID  string              `json:"reportId"`
	From      entity.ReportStatus `json:"from"`
	To        entity.ReportStatus `json:"to"`
	ChangedAt time.Time           `json:"changedAt"`
}

// newOutboxEvent encodes body as a pending event that is due immediately.
func newOutboxEvent(topic, key string, body any, maxAttempts int, now time.Time) (*entity.OutboxEvent, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s event", topic)
	}

	if maxAttempts <= 0 {
		maxAttempts = defaultOutboxMaxAttempts
	}

	return &entity.OutboxEvent{
		Topic:         topic,
		Key:           key,
		Payload:       payload,
		Status:        entity.OutboxStatusPending,
		MaxAttempts:   maxAttempts,
		NextAttemptAt: now,
	}, nil
}
