package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel is the GORM-specific struct for the 'waste_reports' table.
// Reports are filed by the citizen app; this service reads them and updates their status.
type ReportModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImageURL          string    `gorm:"type:text"`
	Latitude          float64   `gorm:"type:decimal(10,8);not null"`
	Longitude         float64   `gorm:"type:decimal(11,8);not null"`
	Address           string    `gorm:"type:text"`
	Status            string    `gorm:"type:text;not null;default:'dirty';index"`
	Category          string    `gorm:"type:text;index"`
	Remarks           string    `gorm:"type:text"`
	BeforeImageURL    string    `gorm:"type:text"`
	AfterImageURL     string    `gorm:"type:text"`
	AuthorityComments string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "waste_reports"
}
