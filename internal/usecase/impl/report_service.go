package impl

import (
	"context"
	"log/slog"
	"time"

	"nagarsetu/config"
	deliverycontext "nagarsetu/internal/delivery/context"
	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/domain/repository"
	"nagarsetu/internal/errors"
	"nagarsetu/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultReportListLimit = 100
	maxReportListLimit     = 500
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	txManager  repository.TransactionManager
	reportRepo repository.ReportRepository

	outboxEnabled     bool
	outboxMaxAttempts int

	logger *slog.Logger
	now    func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReportRepo repository.ReportRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReportService creates a new report workflow service
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	srv := &reportService{
		txManager:  params.TxManager,
		reportRepo: params.ReportRepo,
		logger:     params.Logger,
		now:        time.Now,
	}

	if params.Config != nil && params.Config.Outbox != nil {
		srv.outboxEnabled = params.Config.Outbox.Enabled
		srv.outboxMaxAttempts = params.Config.Outbox.MaxAttempts
	}

	return srv
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReports lists reports newest first.
func (srv *reportService) ListReports(ctx context.Context, input *usecase.ListReportsInput) ([]*entity.Report, error) {
	filter := repository.ReportFilter{Limit: defaultReportListLimit}

	if input != nil {
		for _, status := range input.Statuses {
			if !status.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails("unknown report status " + status.String())
			}
		}

		filter.Statuses = input.Statuses
		filter.Category = input.Category
		filter.Offset = max(input.Offset, 0)

		switch {
		case input.Limit > maxReportListLimit:
			filter.Limit = maxReportListLimit
		case input.Limit > 0:
			filter.Limit = input.Limit
		}
	}

	reports, err := srv.reportRepo.FindReports(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reports")
	}

	return reports, nil
}

// ListActionableReports lists the reports that still need a collection visit.
func (srv *reportService) ListActionableReports(ctx context.Context) ([]*entity.Report, error) {
	reports, err := srv.reportRepo.FindReportsByStatus(ctx, entity.ActionableStatuses())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find actionable reports")
	}

	return reports, nil
}

// GetReport retrieves a single report.
func (srv *reportService) GetReport(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	report, err := srv.reportRepo.FindReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound.WithDetails(id.String())
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	return report, nil
}

// UpdateReportStatus moves a report through the cleanup workflow.
func (srv *reportService) UpdateReportStatus(ctx context.Context, id uuid.UUID, input *usecase.UpdateReportStatusInput) (*entity.Report, error) {
	if input == nil || !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of dirty, cleaning, in-progress, cleaned, completed")
	}

	var updated *entity.Report
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reportRepo := repoFactory.NewReportRepository()

		report, err := reportRepo.FindReportByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReportNotFound) {
				return domainerrors.ErrReportNotFound.WithDetails(id.String())
			}

			return errors.Wrap(err, "failed to find report")
		}

		from := report.Status
		if !from.CanTransitionTo(input.Status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(from.String() + " -> " + input.Status.String())
		}

		if err := reportRepo.UpdateReportStatus(ctx, id, from, input.Status, input.AuthorityComments); err != nil {
			if errors.Is(err, repository.ErrReportStatusChanged) {
				return domainerrors.ErrInvalidStatusTransition.WithDetails("report status changed concurrently, reload and retry")
			}

			return errors.Wrap(err, "failed to update report status")
		}

		now := srv.now()
		if srv.outboxEnabled {
			if err := srv.enqueueStatusChanged(ctx, repoFactory.NewOutboxRepository(), id, from, input.Status, now); err != nil {
				return err
			}
		}

		report.Status = input.Status
		report.AuthorityComments = input.AuthorityComments
		report.UpdatedAt = now
		updated = report

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Report status updated", slog.String("reportID", id.String()), slog.String("status", input.Status.String()))

	return updated, nil
}

func (srv *reportService) enqueueStatusChanged(
	ctx context.Context,
	outboxRepo repository.OutboxRepository,
	id uuid.UUID,
	from, to entity.ReportStatus,
	now time.Time,
) error {
	event, err := newOutboxEvent(entity.TopicReportStatusChanged, id.String(), reportStatusChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ReportID:  id.String(),
		From:      from,
		To:        to,
		ChangedAt: now.UTC(),
	}, srv.outboxMaxAttempts, now)
	if err != nil {
		return err
	}

	return errors.Wrap(outboxRepo.Enqueue(ctx, event), "failed to enqueue report.status_changed event")
}
