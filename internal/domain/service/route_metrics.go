package service

import (
	"time"

	"nagarsetu/internal/domain/entity"
)

// RouteMetrics records optimizer outcomes.
type RouteMetrics interface {
	ObserveRoute(route *entity.Route, elapsed time.Duration)
}

// OutboxMetrics counts dispatcher outcomes per topic.
type OutboxMetrics interface {
	ObserveOutbox(topic, outcome string)
}
