package outbox

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/repository"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/errors"
	mockrepo "nagarsetu/internal/mocks/repository"
	mocksvc "nagarsetu/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type dispatcherFixture struct {
	dispatcher *Dispatcher
	txManager  *mockrepo.MockTransactionManager
	factory    *mockrepo.MockRepositoryFactory
	outboxRepo *mockrepo.MockOutboxRepository
	publisher  *mocksvc.MockEventPublisher
	metrics    *mocksvc.MockOutboxMetrics
}

func newDispatcherFixture(t *testing.T, settings Settings) *dispatcherFixture {
	t.Helper()

	f := &dispatcherFixture{
		txManager:  mockrepo.NewMockTransactionManager(t),
		factory:    mockrepo.NewMockRepositoryFactory(t),
		outboxRepo: mockrepo.NewMockOutboxRepository(t),
		publisher:  mocksvc.NewMockEventPublisher(t),
		metrics:    mocksvc.NewMockOutboxMetrics(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.dispatcher = New(f.txManager, f.publisher, f.metrics, settings, logger)
	f.dispatcher.now = func() time.Time { return fixedNow }

	return f
}

// expectBatch makes Execute run the callback against the mocked outbox repository.
func (f *dispatcherFixture) expectBatch(events []*entity.OutboxEvent, fetchErr error) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Once()
	f.factory.EXPECT().NewOutboxRepository().Return(f.outboxRepo).Once()
	f.outboxRepo.EXPECT().FetchDue(mock.Anything, fixedNow, mock.Anything).Return(events, fetchErr).Once()
}

func newEvent(attempts, maxAttempts int) *entity.OutboxEvent {
	return &entity.OutboxEvent{
		ID:            uuid.New(),
		Topic:         entity.TopicReportStatusChanged,
		Key:           "report-1",
		Payload:       []byte(`{"requestId":"req-1","reportId":"report-1","to":"cleaned"}`),
		Status:        entity.OutboxStatusPending,
		Attempts:      attempts,
		MaxAttempts:   maxAttempts,
		NextAttemptAt: fixedNow,
	}
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		name       string
		base       time.Duration
		maxBackoff time.Duration
		attempts   int
		want       time.Duration
	}{
		{name: "zero attempts treated as first", base: time.Second, maxBackoff: time.Hour, attempts: 0, want: time.Second},
		{name: "first failure", base: time.Second, maxBackoff: time.Hour, attempts: 1, want: time.Second},
		{name: "second failure", base: time.Second, maxBackoff: time.Hour, attempts: 2, want: 2 * time.Second},
		{name: "fourth failure", base: time.Second, maxBackoff: time.Hour, attempts: 4, want: 8 * time.Second},
		{name: "capped", base: time.Second, maxBackoff: time.Hour, attempts: 13, want: time.Hour},
		{name: "capped between doublings", base: time.Second, maxBackoff: 3 * time.Second, attempts: 3, want: 3 * time.Second},
		{name: "huge attempt count", base: time.Second, maxBackoff: time.Hour, attempts: 10_000, want: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Backoff(tt.base, tt.maxBackoff, tt.attempts))
		})
	}
}

func TestSettingsWithDefaults(t *testing.T) {
	s := Settings{BaseBackoff: time.Minute, MaxBackoff: time.Second}.withDefaults()

	assert.Equal(t, defaultPollInterval, s.PollInterval)
	assert.Equal(t, defaultBatchSize, s.BatchSize)
	assert.Equal(t, defaultMaxAttempts, s.MaxAttempts)
	assert.Equal(t, time.Minute, s.MaxBackoff)
}

func TestDispatchOnce_PublishSuccess(t *testing.T) {
	f := newDispatcherFixture(t, Settings{BatchSize: 10})
	event := newEvent(0, 8)

	f.expectBatch([]*entity.OutboxEvent{event}, nil)
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e *service.Event) bool {
			return e.ID == event.ID.String() &&
				e.Topic == entity.TopicReportStatusChanged &&
				e.Key == "report-1" &&
				e.RequestID == "req-1" &&
				string(e.Payload) == string(event.Payload) &&
				e.Attrs["attempt"] == "1"
		})).
		Return(nil).Once()
	f.outboxRepo.EXPECT().MarkSent(mock.Anything, event.ID).Return(nil).Once()
	f.metrics.EXPECT().ObserveOutbox(entity.TopicReportStatusChanged, OutcomeSent).Once()

	handled, err := f.dispatcher.DispatchOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, handled)
}

func TestDispatchOnce_FailureSchedulesBackoff(t *testing.T) {
	f := newDispatcherFixture(t, Settings{BaseBackoff: time.Second, MaxBackoff: time.Hour})
	event := newEvent(2, 8)

	f.expectBatch([]*entity.OutboxEvent{event}, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	// Third failure: 1s * 2^2.
	f.outboxRepo.EXPECT().
		MarkFailed(mock.Anything, event.ID, "broker down", fixedNow.Add(4*time.Second)).
		Return(nil).Once()
	f.metrics.EXPECT().ObserveOutbox(entity.TopicReportStatusChanged, OutcomeRetry).Once()

	handled, err := f.dispatcher.DispatchOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, handled)
}

func TestDispatchOnce_DeadAfterMaxAttempts(t *testing.T) {
	f := newDispatcherFixture(t, Settings{})
	event := newEvent(7, 8)

	f.expectBatch([]*entity.OutboxEvent{event}, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	f.outboxRepo.EXPECT().MarkDead(mock.Anything, event.ID, "broker down").Return(nil).Once()
	f.metrics.EXPECT().ObserveOutbox(entity.TopicReportStatusChanged, OutcomeDead).Once()

	handled, err := f.dispatcher.DispatchOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, handled)
}

func TestDispatchOnce_EventWithoutMaxAttemptsUsesSettings(t *testing.T) {
	f := newDispatcherFixture(t, Settings{MaxAttempts: 2})
	event := newEvent(1, 0)

	f.expectBatch([]*entity.OutboxEvent{event}, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
	f.outboxRepo.EXPECT().MarkDead(mock.Anything, event.ID, "timeout").Return(nil).Once()
	f.metrics.EXPECT().ObserveOutbox(entity.TopicReportStatusChanged, OutcomeDead).Once()

	_, err := f.dispatcher.DispatchOnce(context.Background())

	require.NoError(t, err)
}

func TestDispatchOnce_MixedBatch(t *testing.T) {
	f := newDispatcherFixture(t, Settings{})
	ok := newEvent(0, 8)
	failing := newEvent(0, 8)
	failing.Topic = entity.TopicRouteOptimized

	f.expectBatch([]*entity.OutboxEvent{ok, failing}, nil)
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e *service.Event) bool { return e.ID == ok.ID.String() })).
		Return(nil).Once()
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e *service.Event) bool { return e.ID == failing.ID.String() })).
		Return(errors.New("nope")).Once()
	f.outboxRepo.EXPECT().MarkSent(mock.Anything, ok.ID).Return(nil).Once()
	f.outboxRepo.EXPECT().MarkFailed(mock.Anything, failing.ID, "nope", fixedNow.Add(time.Second)).Return(nil).Once()
	f.metrics.EXPECT().ObserveOutbox(entity.TopicReportStatusChanged, OutcomeSent).Once()
	f.metrics.EXPECT().ObserveOutbox(entity.TopicRouteOptimized, OutcomeRetry).Once()

	handled, err := f.dispatcher.DispatchOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, handled)
}

func TestDispatchOnce_Errors(t *testing.T) {
	t.Run("fetch fails", func(t *testing.T) {
		f := newDispatcherFixture(t, Settings{})
		f.expectBatch(nil, errors.New("connection reset"))

		handled, err := f.dispatcher.DispatchOnce(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch due outbox events")
		assert.Zero(t, handled)
	})

	t.Run("mark sent fails rolls back the batch", func(t *testing.T) {
		f := newDispatcherFixture(t, Settings{})
		event := newEvent(0, 8)

		f.expectBatch([]*entity.OutboxEvent{event}, nil)
		f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
		f.outboxRepo.EXPECT().MarkSent(mock.Anything, event.ID).Return(errors.New("tx aborted")).Once()

		handled, err := f.dispatcher.DispatchOnce(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sent")
		assert.Zero(t, handled)
	})

	t.Run("empty batch", func(t *testing.T) {
		f := newDispatcherFixture(t, Settings{})
		f.expectBatch(nil, nil)

		handled, err := f.dispatcher.DispatchOnce(context.Background())

		require.NoError(t, err)
		assert.Zero(t, handled)
	})
}

func TestDispatchOnce_NilMetrics(t *testing.T) {
	f := newDispatcherFixture(t, Settings{})
	f.dispatcher.metrics = nil
	event := newEvent(0, 8)

	f.expectBatch([]*entity.OutboxEvent{event}, nil)
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
	f.outboxRepo.EXPECT().MarkSent(mock.Anything, event.ID).Return(nil).Once()

	_, err := f.dispatcher.DispatchOnce(context.Background())

	require.NoError(t, err)
}

func TestServe_StopsOnStop(t *testing.T) {
	f := newDispatcherFixture(t, Settings{PollInterval: 5 * time.Millisecond})
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil).Maybe()

	served := make(chan error, 1)
	go func() { served <- f.dispatcher.Serve(context.Background()) }()

	require.Eventually(t, f.dispatcher.started.Load, time.Second, time.Millisecond)
	require.NoError(t, f.dispatcher.Stop(context.Background()))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after Stop")
	}
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	f := newDispatcherFixture(t, Settings{PollInterval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- f.dispatcher.Serve(ctx) }()

	cancel()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestStop_WithoutServe(t *testing.T) {
	f := newDispatcherFixture(t, Settings{})

	assert.NoError(t, f.dispatcher.Stop(context.Background()))
	assert.NoError(t, f.dispatcher.Stop(context.Background()))
}
