package postgres

import (
	"context"
	"testing"
	"time"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds a GORM handle that renders SQL without a server and
// records every statement it would have sent.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	var statements []string
	capture := func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))

	return db, &statements
}

func TestReportRepository_FindReportsByStatus(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewReportRepository(db)

	_, err := repo.FindReportsByStatus(context.Background(), entity.ActionableStatuses())
	require.NoError(t, err)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `FROM "waste_reports"`)
	assert.Contains(t, sql, "status IN (")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
}

func TestReportRepository_FindReportsByStatus_EmptySkipsQuery(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewReportRepository(db)

	reports, err := repo.FindReportsByStatus(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.Empty(t, *statements)
}

func TestReportRepository_FindReportsFilter(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewReportRepository(db)

	_, err := repo.FindReports(context.Background(), repository.ReportFilter{
		Category: "plastic",
		Limit:    20,
		Offset:   40,
	})
	require.NoError(t, err)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, "category = ")
	assert.NotContains(t, sql, "status IN")
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
}

func TestReportRepository_UpdateReportStatus(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewReportRepository(db)

	// Nothing is executed in dry-run mode, so no row is reported as affected.
	err := repo.UpdateReportStatus(context.Background(), uuid.New(), entity.ReportStatusDirty, entity.ReportStatusCleaned, "bagged")
	assert.ErrorIs(t, err, repository.ErrReportStatusChanged)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `UPDATE "waste_reports" SET`)
	assert.Contains(t, sql, `"authority_comments"=`)
	assert.Contains(t, sql, `"status"=`)
	assert.Regexp(t, `WHERE \(?id = \$\d+ AND status = \$\d+`, sql)
}

func TestOutboxRepository_FetchDueLocksRows(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewOutboxRepository(db)

	_, err := repo.FetchDue(context.Background(), time.Now(), 50)
	require.NoError(t, err)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `FROM "outbox_events"`)
	assert.Contains(t, sql, "next_attempt_at <= ")
	assert.Contains(t, sql, "ORDER BY next_attempt_at ASC,created_at ASC")
	assert.Contains(t, sql, "FOR UPDATE SKIP LOCKED")
}

func TestOutboxRepository_EnqueueFillsDefaults(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewOutboxRepository(db)

	event := &entity.OutboxEvent{
		Topic:       entity.TopicRouteOptimized,
		Payload:     []byte(`{"stopCount":3}`),
		MaxAttempts: 5,
	}
	require.NoError(t, repo.Enqueue(context.Background(), event))

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, entity.OutboxStatusPending, event.Status)
	assert.False(t, event.NextAttemptAt.IsZero())

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], `INSERT INTO "outbox_events"`)
	assert.Contains(t, (*statements)[0], `"event_key"`)
}

func TestOutboxRepository_MarkFailedIncrementsAttempts(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewOutboxRepository(db)

	err := repo.MarkFailed(context.Background(), uuid.New(), "broker down", time.Now().Add(time.Minute))
	assert.ErrorIs(t, err, ErrOutboxEventNotFound)

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], `"attempts"=attempts + 1`)
	assert.Contains(t, (*statements)[0], `"next_attempt_at"=`)
}
