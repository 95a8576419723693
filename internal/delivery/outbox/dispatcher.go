// Package outbox publishes events written to the outbox table.
package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"nagarsetu/config"
	"nagarsetu/internal/delivery"
	deliverycontext "nagarsetu/internal/delivery/context"
	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/lifecycle"
	"nagarsetu/internal/domain/repository"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultPollInterval = time.Second
	defaultBatchSize    = 50
	defaultMaxAttempts  = 8
	defaultBaseBackoff  = time.Second
	defaultMaxBackoff   = time.Hour

	// Publish outcomes reported to OutboxMetrics.
	OutcomeSent  = "sent"
	OutcomeRetry = "retry"
	OutcomeDead  = "dead"
)

// Settings tunes the dispatcher loop. Zero fields fall back to defaults.
type Settings struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	BaseBackoff  time.Duration
	MaxBackoff   time.Duration
}

func settingsFromConfig(cfg *config.OutboxConfig) Settings {
	if cfg == nil {
		return Settings{}.withDefaults()
	}

	return Settings{
		PollInterval: cfg.PollInterval,
		BatchSize:    cfg.BatchSize,
		MaxAttempts:  cfg.MaxAttempts,
		BaseBackoff:  cfg.BaseBackoff,
		MaxBackoff:   cfg.MaxBackoff,
	}.withDefaults()
}

func (s Settings) withDefaults() Settings {
	if s.PollInterval <= 0 {
		s.PollInterval = defaultPollInterval
	}
	if s.BatchSize <= 0 {
		s.BatchSize = defaultBatchSize
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = defaultMaxAttempts
	}
	if s.BaseBackoff <= 0 {
		s.BaseBackoff = defaultBaseBackoff
	}
	if s.MaxBackoff <= 0 {
		s.MaxBackoff = defaultMaxBackoff
	}
	if s.MaxBackoff < s.BaseBackoff {
		s.MaxBackoff = s.BaseBackoff
	}

	return s
}

// Backoff returns the delay before the next attempt once attempts have failed:
// base doubled per earlier failure, capped at maxBackoff.
func Backoff(base, maxBackoff time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}

	delay := base
	for i := 1; i < attempts; i++ {
		if delay >= maxBackoff/2 {
			return maxBackoff
		}
		delay *= 2
	}

	return min(delay, maxBackoff)
}

// Dispatcher polls due outbox events and hands them to the EventPublisher.
type Dispatcher struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	metrics   service.OutboxMetrics
	settings  Settings
	logger    *slog.Logger
	now       func() time.Time

	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
}

// DispatcherParams holds dependencies for the dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Metrics   service.OutboxMetrics `optional:"true"`
}

// NewDispatcher registers the dispatcher as a Delivery whose loop ends on fx OnStop.
func NewDispatcher(params DispatcherParams) (delivery.Delivery, error) {
	d := New(params.TxManager, params.Publisher, params.Metrics, settingsFromConfig(params.Cfg.Outbox), params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: d.Stop,
	})

	return d, nil
}

// New builds a dispatcher. metrics may be nil.
func New(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	metrics service.OutboxMetrics,
	settings Settings,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		txManager: txManager,
		publisher: publisher,
		metrics:   metrics,
		settings:  settings.withDefaults(),
		logger:    logger,
		now:       time.Now,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Serve runs the poll loop until ctx is cancelled or Stop is called.
func (d *Dispatcher) Serve(ctx context.Context) error {
	d.started.Store(true)
	defer close(d.done)

	d.logger.Info("[Outbox] Dispatcher started",
		slog.Duration("poll_interval", d.settings.PollInterval),
		slog.Int("batch_size", d.settings.BatchSize),
	)

	ticker := time.NewTicker(d.settings.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.stopCh:
			return nil
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil {
				d.logger.Error("[Outbox] Dispatch failed", slog.Any("error", err))
			}
		}
	}
}

// Stop ends the loop and waits for the batch in flight.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.stopOnce.Do(func() {
		d.logger.Info("[Outbox] Stopping dispatcher")
		close(d.stopCh)
	})

	if !d.started.Load() {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-d.done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "outbox dispatcher did not stop in time")
	}
}

// DispatchOnce publishes one batch of due events and returns how many were
// handled. The batch stays locked until every event is marked.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	handled := 0

	err := d.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		outboxRepo := factory.NewOutboxRepository()

		events, err := outboxRepo.FetchDue(ctx, d.now(), d.settings.BatchSize)
		if err != nil {
			return errors.Wrap(err, "failed to fetch due outbox events")
		}

		for _, event := range events {
			if err := d.dispatch(ctx, outboxRepo, event); err != nil {
				return err
			}
			handled++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return handled, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, outboxRepo repository.OutboxRepository, event *entity.OutboxEvent) error {
	attempt := event.Attempts + 1
	requestID := requestIDOf(event.Payload)
	logger := d.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID.String()),
		slog.String("topic", event.Topic),
		slog.Int("attempt", attempt),
	)
	pubCtx := deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	pubErr := d.publisher.Publish(pubCtx, &service.Event{
		ID:        event.ID.String(),
		Topic:     event.Topic,
		Key:       event.Key,
		RequestID: requestID,
		Payload:   event.Payload,
		Attrs: map[string]string{
			"attempt": strconv.Itoa(attempt),
		},
	})
	if pubErr == nil {
		if err := outboxRepo.MarkSent(ctx, event.ID); err != nil {
			return errors.Wrapf(err, "failed to mark outbox event %s sent", event.ID)
		}
		d.observe(event.Topic, OutcomeSent)
		logger.Debug("[Outbox] Event published")

		return nil
	}

	maxAttempts := event.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = d.settings.MaxAttempts
	}

	if attempt >= maxAttempts {
		if err := outboxRepo.MarkDead(ctx, event.ID, pubErr.Error()); err != nil {
			return errors.Wrapf(err, "failed to mark outbox event %s dead", event.ID)
		}
		d.observe(event.Topic, OutcomeDead)
		logger.Error("[Outbox] Giving up on event", slog.Any("error", pubErr))

		return nil
	}

	next := d.now().Add(Backoff(d.settings.BaseBackoff, d.settings.MaxBackoff, attempt))
	if err := outboxRepo.MarkFailed(ctx, event.ID, pubErr.Error(), next); err != nil {
		return errors.Wrapf(err, "failed to reschedule outbox event %s", event.ID)
	}
	d.observe(event.Topic, OutcomeRetry)
	logger.Warn("[Outbox] Publish failed, will retry",
		slog.Time("next_attempt_at", next),
		slog.Any("error", pubErr),
	)

	return nil
}

func (d *Dispatcher) observe(topic, outcome string) {
	if d.metrics != nil {
		d.metrics.ObserveOutbox(topic, outcome)
	}
}

// requestIDOf reads the requestId field every event body carries.
func requestIDOf(payload []byte) string {
	var body struct {
		RequestID string `json:"requestId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}

	return body.RequestID
}
