// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/domain/repository"
	"nagarsetu/internal/errors"
	"nagarsetu/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// FindReportByID retrieves a report by its unique ID.
func (repo *reportRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}

	return toReportDomain(&reportM), nil
}

// FindReports lists reports matching the filter, newest first.
func (repo *reportRepository) FindReports(ctx context.Context, filter repository.ReportFilter) ([]*entity.Report, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(filter.Statuses))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var reportModels []*model.ReportModel
	if err := query.Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reports")
	}

	return toReportDomains(reportModels), nil
}

// FindReportsByStatus lists reports in any of the given statuses, newest first.
func (repo *reportRepository) FindReportsByStatus(ctx context.Context, statuses []entity.ReportStatus) ([]*entity.Report, error) {
	if len(statuses) == 0 {
		return []*entity.Report{}, nil
	}

	return repo.FindReports(ctx, repository.ReportFilter{Statuses: statuses})
}

// FindReportsByIDs returns the reports that exist among ids.
func (repo *reportRepository) FindReportsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Report, error) {
	if len(ids) == 0 {
		return []*entity.Report{}, nil
	}

	var reportModels []*model.ReportModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reports by IDs")
	}

	return toReportDomains(reportModels), nil
}

// UpdateReportStatus sets the workflow status and authority comments of a report.
// The status condition makes a concurrent writer's update match no rows.
func (repo *reportRepository) UpdateReportStatus(ctx context.Context, id uuid.UUID, from, to entity.ReportStatus, comments string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":             string(to),
			"authority_comments": comments,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage("status rejected by database")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update report status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReportStatusChanged
	}

	return nil
}

func statusStrings(statuses []entity.ReportStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}

	return out
}

// --- Mapper Functions ---

func toReportDomains(models []*model.ReportModel) []*entity.Report {
	reports := make([]*entity.Report, 0, len(models))
	for _, reportM := range models {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports
}

// toReportDomain converts a GORM ReportModel to a domain Report entity.
func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:                data.ID,
		ImageURL:          data.ImageURL,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		Address:           data.Address,
		Status:            entity.ReportStatus(data.Status),
		Category:          data.Category,
		Remarks:           data.Remarks,
		BeforeImageURL:    data.BeforeImageURL,
		AfterImageURL:     data.AfterImageURL,
		AuthorityComments: data.AuthorityComments,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
