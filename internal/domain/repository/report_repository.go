// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"nagarsetu/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReportNotFound is returned when no report has the requested ID.
	ErrReportNotFound = errors.New("report not found")

	// ErrReportStatusChanged is returned when a status update finds the report
	// no longer in the status it was read with.
	ErrReportStatusChanged = errors.New("report status changed")
)

// ReportFilter narrows a report listing. Empty Statuses means every status.
type ReportFilter struct {
	Statuses []entity.ReportStatus
	Category string
	Limit    int
	Offset   int
}

// ReportRepository reads waste reports and updates their workflow state.
type ReportRepository interface {
	// FindReportByID retrieves a single report by ID.
	FindReportByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// FindReports lists reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*entity.Report, error)

	// FindReportsByStatus lists reports in any of the given statuses, newest first.
	FindReportsByStatus(ctx context.Context, statuses []entity.ReportStatus) ([]*entity.Report, error)

	// FindReportsByIDs returns the reports that exist among ids, in no particular order.
	FindReportsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Report, error)

	// UpdateReportStatus moves a report from one status to another and stores the
	// authority comments. It only applies while the report is still in from.
	UpdateReportStatus(ctx context.Context, id uuid.UUID, from, to entity.ReportStatus, comments string) error
}
