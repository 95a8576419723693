package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to ReportStatus
		want     bool
	}{
		{ReportStatusDirty, ReportStatusCleaning, true},
		{ReportStatusDirty, ReportStatusCompleted, true},
		{ReportStatusCleaning, ReportStatusInProgress, true},
		{ReportStatusInProgress, ReportStatusCleaned, true},
		{ReportStatusCleaned, ReportStatusCompleted, true},
		{ReportStatusDirty, ReportStatusDirty, false},
		{ReportStatusCleaned, ReportStatusDirty, false},
		{ReportStatusInProgress, ReportStatusCleaning, false},
		{ReportStatusCompleted, ReportStatusCleaned, false},
		{ReportStatus("lost"), ReportStatusCleaned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReportStatus_IsActionable(t *testing.T) {
	assert.True(t, ReportStatusDirty.IsActionable())
	assert.True(t, ReportStatusCleaning.IsActionable())
	assert.True(t, ReportStatusInProgress.IsActionable())
	assert.False(t, ReportStatusCleaned.IsActionable())
	assert.False(t, ReportStatusCompleted.IsActionable())
	assert.False(t, ReportStatus("").IsActionable())
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"authority", "admin", "citizen"})

	assert.Equal(t, Roles{RoleAuthority, RoleCitizen}, roles)
	assert.True(t, roles.Contains(RoleAuthority))
	assert.False(t, RolesFromStrings(nil).Contains(RoleAuthority))
}

func TestCoordinateLabel(t *testing.T) {
	assert.Equal(t, "28.613900, 77.209000", CoordinateLabel(28.6139, 77.209))
	assert.Equal(t, "-0.000001, 0.000000", CoordinateLabel(-0.000001, 0))
}

func TestRoute_Stops(t *testing.T) {
	var nilRoute *Route
	assert.Nil(t, nilRoute.Stops())

	route := &Route{OrderedPoints: []RoutePoint{{ID: "S", IsStart: true}, {ID: "A"}}}
	assert.Equal(t, []RoutePoint{{ID: "A"}}, route.Stops())
}
