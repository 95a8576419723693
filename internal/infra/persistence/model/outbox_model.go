package model

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEventModel is the GORM-specific struct for the 'outbox_events' table.
type OutboxEventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Topic         string    `gorm:"type:text;not null"`
	Key           string    `gorm:"column:event_key;type:text"`
	Payload       []byte    `gorm:"type:jsonb;not null"`
	Status        string    `gorm:"type:text;not null;default:'pending';index:idx_outbox_due,priority:1"`
	Attempts      int       `gorm:"not null;default:0"`
	MaxAttempts   int       `gorm:"not null"`
	LastError     string    `gorm:"type:text"`
	NextAttemptAt time.Time `gorm:"not null;index:idx_outbox_due,priority:2"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutboxEventModel) TableName() string {
	return "outbox_events"
}
