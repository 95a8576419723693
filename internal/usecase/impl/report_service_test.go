package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nagarsetu/config"
	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/domain/repository"
	"nagarsetu/internal/errors"
	mockRepo "nagarsetu/internal/mocks/repository"
	"nagarsetu/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixture struct {
	t          *testing.T
	txManager  *mockRepo.MockTransactionManager
	reportRepo *mockRepo.MockReportRepository
	service    usecase.ReportUsecase
}

func createTestReportService(t *testing.T, outboxEnabled bool) *reportServiceFixture {
	t.Helper()

	fx := &reportServiceFixture{
		t:          t,
		txManager:  mockRepo.NewMockTransactionManager(t),
		reportRepo: mockRepo.NewMockReportRepository(t),
	}

	svc := NewReportService(ReportServiceParams{
		TxManager:  fx.txManager,
		ReportRepo: fx.reportRepo,
		Config:     &config.Config{Outbox: &config.OutboxConfig{Enabled: outboxEnabled}},
		Logger:     newDiscardLogger(),
	})
	svc.(*reportService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

// onExecute runs the transaction callback against a factory prepared by setup.
func (fx *reportServiceFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	factory := mockRepo.NewMockRepositoryFactory(fx.t)
	setup(factory)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestReportService_ListReports(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ListReportsInput
		want  repository.ReportFilter
	}{
		{"nil input", nil, repository.ReportFilter{Limit: defaultReportListLimit}},
		{
			"statuses and paging",
			&usecase.ListReportsInput{Statuses: []entity.ReportStatus{entity.ReportStatusDirty}, Category: "plastic", Limit: 20, Offset: 40},
			repository.ReportFilter{Statuses: []entity.ReportStatus{entity.ReportStatusDirty}, Category: "plastic", Limit: 20, Offset: 40},
		},
		{
			"limit clamped and negative offset",
			&usecase.ListReportsInput{Limit: 10000, Offset: -5},
			repository.ReportFilter{Limit: maxReportListLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReportService(t, true)
			ctx := context.Background()
			reports := []*entity.Report{{ID: uuid.New()}}

			fx.reportRepo.EXPECT().FindReports(ctx, tt.want).Return(reports, nil)

			got, err := fx.service.ListReports(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, reports, got)
		})
	}
}

func TestReportService_ListReports_UnknownStatus(t *testing.T) {
	fx := createTestReportService(t, true)

	_, err := fx.service.ListReports(context.Background(), &usecase.ListReportsInput{
		Statuses: []entity.ReportStatus{"lost"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_ListActionableReports(t *testing.T) {
	fx := createTestReportService(t, true)
	ctx := context.Background()

	fx.reportRepo.EXPECT().FindReportsByStatus(ctx, entity.ActionableStatuses()).Return(nil, errors.New("db error"))

	_, err := fx.service.ListActionableReports(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find actionable reports")
}

func TestReportService_GetReport(t *testing.T) {
	fx := createTestReportService(t, true)
	ctx := context.Background()
	report := &entity.Report{ID: uuid.New(), Status: entity.ReportStatusDirty}
	missing := uuid.New()

	fx.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	fx.reportRepo.EXPECT().FindReportByID(ctx, missing).Return(nil, repository.ErrReportNotFound)

	got, err := fx.service.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Same(t, report, got)

	_, err = fx.service.GetReport(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}

func TestReportService_UpdateReportStatus(t *testing.T) {
	fx := createTestReportService(t, true)
	ctx := context.Background()
	id := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txReportRepo := mockRepo.NewMockReportRepository(t)
		txOutboxRepo := mockRepo.NewMockOutboxRepository(t)
		factory.EXPECT().NewReportRepository().Return(txReportRepo)
		factory.EXPECT().NewOutboxRepository().Return(txOutboxRepo)

		txReportRepo.EXPECT().FindReportByID(ctx, id).Return(&entity.Report{ID: id, Status: entity.ReportStatusDirty}, nil)
		txReportRepo.EXPECT().UpdateReportStatus(ctx, id, entity.ReportStatusDirty, entity.ReportStatusCleaning, "crew dispatched").Return(nil)
		txOutboxRepo.EXPECT().
			Enqueue(ctx, mock.MatchedBy(func(event *entity.OutboxEvent) bool {
				var body reportStatusChangedEvent
				if err := json.Unmarshal(event.Payload, &body); err != nil {
					return false
				}

				return event.Topic == entity.TopicReportStatusChanged &&
					event.Key == id.String() &&
					event.MaxAttempts == defaultOutboxMaxAttempts &&
					body.From == entity.ReportStatusDirty &&
					body.To == entity.ReportStatusCleaning &&
					body.ChangedAt.Equal(fixedNow)
			})).
			Return(nil)
	})

	report, err := fx.service.UpdateReportStatus(ctx, id, &usecase.UpdateReportStatusInput{
		Status:            entity.ReportStatusCleaning,
		AuthorityComments: "crew dispatched",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ReportStatusCleaning, report.Status)
	assert.Equal(t, "crew dispatched", report.AuthorityComments)
	assert.Equal(t, fixedNow, report.UpdatedAt)
}

func TestReportService_UpdateReportStatus_OutboxDisabled(t *testing.T) {
	fx := createTestReportService(t, false)
	ctx := context.Background()
	id := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txReportRepo := mockRepo.NewMockReportRepository(t)
		factory.EXPECT().NewReportRepository().Return(txReportRepo)

		txReportRepo.EXPECT().FindReportByID(ctx, id).Return(&entity.Report{ID: id, Status: entity.ReportStatusCleaned}, nil)
		txReportRepo.EXPECT().UpdateReportStatus(ctx, id, entity.ReportStatusCleaned, entity.ReportStatusCompleted, "").Return(nil)
	})

	report, err := fx.service.UpdateReportStatus(ctx, id, &usecase.UpdateReportStatusInput{Status: entity.ReportStatusCompleted})

	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusCompleted, report.Status)
}

func TestReportService_UpdateReportStatus_Errors(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(t *testing.T, ctx context.Context, factory *mockRepo.MockRepositoryFactory)
		status  entity.ReportStatus
		wantErr error
	}{
		{
			name:   "report not found",
			status: entity.ReportStatusCleaning,
			setup: func(t *testing.T, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
				repo := mockRepo.NewMockReportRepository(t)
				factory.EXPECT().NewReportRepository().Return(repo)
				repo.EXPECT().FindReportByID(ctx, id).Return(nil, repository.ErrReportNotFound)
			},
			wantErr: domainerrors.ErrReportNotFound,
		},
		{
			name:   "backwards transition",
			status: entity.ReportStatusDirty,
			setup: func(t *testing.T, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
				repo := mockRepo.NewMockReportRepository(t)
				factory.EXPECT().NewReportRepository().Return(repo)
				repo.EXPECT().FindReportByID(ctx, id).Return(&entity.Report{ID: id, Status: entity.ReportStatusCleaned}, nil)
			},
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
		{
			name:   "same status",
			status: entity.ReportStatusCompleted,
			setup: func(t *testing.T, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
				repo := mockRepo.NewMockReportRepository(t)
				factory.EXPECT().NewReportRepository().Return(repo)
				repo.EXPECT().FindReportByID(ctx, id).Return(&entity.Report{ID: id, Status: entity.ReportStatusCompleted}, nil)
			},
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
		{
			name:   "status changed by a concurrent update",
			status: entity.ReportStatusCleaning,
			setup: func(t *testing.T, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
				repo := mockRepo.NewMockReportRepository(t)
				factory.EXPECT().NewReportRepository().Return(repo)
				repo.EXPECT().FindReportByID(ctx, id).Return(&entity.Report{ID: id, Status: entity.ReportStatusDirty}, nil)
				repo.EXPECT().
					UpdateReportStatus(ctx, id, entity.ReportStatusDirty, entity.ReportStatusCleaning, "").
					Return(repository.ErrReportStatusChanged)
			},
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReportService(t, true)
			ctx := context.Background()

			fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
				tt.setup(t, ctx, factory)
			})

			report, err := fx.service.UpdateReportStatus(ctx, id, &usecase.UpdateReportStatusInput{Status: tt.status})

			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReportService_UpdateReportStatus_EnqueueFailureRollsBack(t *testing.T) {
	fx := createTestReportService(t, true)
	ctx := context.Background()
	id := uuid.New()
	outboxErr := errors.New("outbox insert failed")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txReportRepo := mockRepo.NewMockReportRepository(t)
		txOutboxRepo := mockRepo.NewMockOutboxRepository(t)
		factory.EXPECT().NewReportRepository().Return(txReportRepo)
		factory.EXPECT().NewOutboxRepository().Return(txOutboxRepo)

		txReportRepo.EXPECT().FindReportByID(ctx, id).Return(&entity.Report{ID: id, Status: entity.ReportStatusDirty}, nil)
		txReportRepo.EXPECT().UpdateReportStatus(ctx, id, entity.ReportStatusDirty, entity.ReportStatusInProgress, "").Return(nil)
		txOutboxRepo.EXPECT().Enqueue(ctx, mock.Anything).Return(outboxErr)
	})

	_, err := fx.service.UpdateReportStatus(ctx, id, &usecase.UpdateReportStatusInput{Status: entity.ReportStatusInProgress})

	require.Error(t, err)
	assert.ErrorIs(t, err, outboxErr)
	assert.Contains(t, err.Error(), "failed to enqueue report.status_changed event")
}

func TestReportService_UpdateReportStatus_InvalidInput(t *testing.T) {
	fx := createTestReportService(t, true)

	_, err := fx.service.UpdateReportStatus(context.Background(), uuid.New(), &usecase.UpdateReportStatusInput{Status: "burned"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.UpdateReportStatus(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
