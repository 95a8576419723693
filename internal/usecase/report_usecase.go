package usecase

import (
	"context"

	"nagarsetu/internal/domain/entity"

	"github.com/google/uuid"
)

// ListReportsInput filters a report listing
type ListReportsInput struct {
	Statuses []entity.ReportStatus
	Category string
	Limit    int
	Offset   int
}

// UpdateReportStatusInput represents a workflow move requested by an authority
type UpdateReportStatusInput struct {
	Status            entity.ReportStatus `json:"status" validate:"required,report_status"`
	AuthorityComments string              `json:"authorityComments" validate:"max=2000"`
}

// ReportUsecase defines the interface for reading and moving waste reports
type ReportUsecase interface {
	ListReports(ctx context.Context, input *ListReportsInput) ([]*entity.Report, error)
	ListActionableReports(ctx context.Context) ([]*entity.Report, error)
	GetReport(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// UpdateReportStatus validates the transition, stores it and records a
	// report.status_changed event in the same transaction.
	UpdateReportStatus(ctx context.Context, id uuid.UUID, input *UpdateReportStatusInput) (*entity.Report, error)
}
