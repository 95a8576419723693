package postgres

import (
	"context"
	"time"

	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/domain/repository"
	"nagarsetu/internal/errors"
	"nagarsetu/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOutboxEventNotFound is returned when a mark targets an unknown event.
var ErrOutboxEventNotFound = errors.New("outbox event not found")

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// Enqueue persists a new pending event.
func (repo *outboxRepository) Enqueue(ctx context.Context, event *entity.OutboxEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Status == "" {
		event.Status = entity.OutboxStatusPending
	}
	if event.NextAttemptAt.IsZero() {
		event.NextAttemptAt = time.Now()
	}

	eventM := fromOutboxDomain(event)
	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("outbox event is missing required fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue outbox event")
	}

	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FetchDue locks due pending events. Call it inside a transaction so the lock
// holds until the events are marked.
func (repo *outboxRepository) FetchDue(ctx context.Context, now time.Time, limit int) ([]*entity.OutboxEvent, error) {
	var eventModels []*model.OutboxEventModel

	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND next_attempt_at <= ?", string(entity.OutboxStatusPending), now).
		Order("next_attempt_at ASC").
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch due outbox events")
	}

	events := make([]*entity.OutboxEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toOutboxDomain(eventM))
	}

	return events, nil
}

// MarkSent records a successful publish.
func (repo *outboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return repo.update(ctx, id, map[string]any{
		"status":     string(entity.OutboxStatusSent),
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": "",
	})
}

// MarkFailed records a failed attempt and schedules the next one.
func (repo *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, nextAttemptAt time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"attempts":        gorm.Expr("attempts + 1"),
		"last_error":      lastErr,
		"next_attempt_at": nextAttemptAt,
	})
}

// MarkDead records the final failed attempt.
func (repo *outboxRepository) MarkDead(ctx context.Context, id uuid.UUID, lastErr string) error {
	return repo.update(ctx, id, map[string]any{
		"status":     string(entity.OutboxStatusDead),
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": lastErr,
	})
}

func (repo *outboxRepository) update(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update outbox event")
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrOutboxEventNotFound, "id %s", id)
	}

	return nil
}

// --- Mapper Functions ---

func toOutboxDomain(data *model.OutboxEventModel) *entity.OutboxEvent {
	if data == nil {
		return nil
	}

	return &entity.OutboxEvent{
		ID:            data.ID,
		Topic:         data.Topic,
		Key:           data.Key,
		Payload:       data.Payload,
		Status:        entity.OutboxStatus(data.Status),
		Attempts:      data.Attempts,
		MaxAttempts:   data.MaxAttempts,
		LastError:     data.LastError,
		NextAttemptAt: data.NextAttemptAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOutboxDomain(data *entity.OutboxEvent) *model.OutboxEventModel {
	if data == nil {
		return nil
	}

	return &model.OutboxEventModel{
		ID:            data.ID,
		Topic:         data.Topic,
		Key:           data.Key,
		Payload:       data.Payload,
		Status:        string(data.Status),
		Attempts:      data.Attempts,
		MaxAttempts:   data.MaxAttempts,
		LastError:     data.LastError,
		NextAttemptAt: data.NextAttemptAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
