package repository

import (
	"context"
	"time"

	"nagarsetu/internal/domain/entity"

	"github.com/google/uuid"
)

// OutboxRepository stores events waiting to be published.
type OutboxRepository interface {
	// Enqueue stores a pending event. It joins the caller's transaction when
	// obtained from a RepositoryFactory.
	Enqueue(ctx context.Context, event *entity.OutboxEvent) error

	// FetchDue locks and returns up to limit pending events whose next attempt
	// is at or before now, oldest first. Rows locked by another dispatcher are skipped.
	FetchDue(ctx context.Context, now time.Time, limit int) ([]*entity.OutboxEvent, error)

	// MarkSent records a successful publish.
	MarkSent(ctx context.Context, id uuid.UUID) error

	// MarkFailed records a failed attempt and schedules the next one.
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, nextAttemptAt time.Time) error

	// MarkDead records the final failed attempt; the event is never retried.
	MarkDead(ctx context.Context, id uuid.UUID, lastErr string) error
}
