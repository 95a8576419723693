package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ReportStatus is the cleanup workflow state of a waste report.
type ReportStatus string

const (
	ReportStatusDirty      ReportStatus = "dirty"
	ReportStatusCleaning   ReportStatus = "cleaning"
	ReportStatusInProgress ReportStatus = "in-progress"
	ReportStatusCleaned    ReportStatus = "cleaned"
	ReportStatusCompleted  ReportStatus = "completed"
)

// ActionableStatuses are the statuses that still need a collection visit.
func ActionableStatuses() []ReportStatus {
	return []ReportStatus{ReportStatusDirty, ReportStatusCleaning, ReportStatusInProgress}
}

var reportTransitions = map[ReportStatus][]ReportStatus{
	ReportStatusDirty:      {ReportStatusCleaning, ReportStatusInProgress, ReportStatusCleaned, ReportStatusCompleted},
	ReportStatusCleaning:   {ReportStatusInProgress, ReportStatusCleaned, ReportStatusCompleted},
	ReportStatusInProgress: {ReportStatusCleaned, ReportStatusCompleted},
	ReportStatusCleaned:    {ReportStatusCompleted},
}

func (s ReportStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known workflow states.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDirty, ReportStatusCleaning, ReportStatusInProgress, ReportStatusCleaned, ReportStatusCompleted:
		return true
	default:
		return false
	}
}

// IsActionable reports whether a report in this status belongs on a collection route.
func (s ReportStatus) IsActionable() bool {
	return slices.Contains(ActionableStatuses(), s)
}

// CanTransitionTo reports whether the workflow allows moving from s to next.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	return slices.Contains(reportTransitions[s], next)
}

// Report is a citizen-filed waste report.
type Report struct {
	ID                uuid.UUID
	ImageURL          string
	Latitude          float64
	Longitude         float64
	Address           string
	Status            ReportStatus
	Category          string
	Remarks           string
	BeforeImageURL    string
	AfterImageURL     string
	AuthorityComments string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
