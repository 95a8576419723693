package postgres

import (
	"context"

	"nagarsetu/internal/errors"
	"nagarsetu/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables this service owns or reads.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.ReportModel{},
		&model.OutboxEventModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}
