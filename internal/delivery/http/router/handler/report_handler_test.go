package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/errors"
	mockusecase "nagarsetu/internal/mocks/usecase"
	"nagarsetu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockReportUsecase) {
	t.Helper()

	reportUC := mockusecase.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC})

	e := newTestEcho()
	e.GET("/reports", h.ListReports)
	e.GET("/reports/actionable", h.ListActionableReports)
	e.GET("/reports/:id", h.GetReport)
	e.PATCH("/reports/:id/status", h.UpdateReportStatus)

	return e, reportUC
}

func sampleReport(status entity.ReportStatus) *entity.Report {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	return &entity.Report{
		ID:        uuid.New(),
		Latitude:  28.7041,
		Longitude: 77.1025,
		Address:   "Rohini",
		Status:    status,
		Category:  "plastic",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestReportHandler_ListReports(t *testing.T) {
	e, reportUC := newReportTestServer(t)
	report := sampleReport(entity.ReportStatusDirty)

	reportUC.EXPECT().
		ListReports(mock.Anything, &usecase.ListReportsInput{
			Statuses: []entity.ReportStatus{entity.ReportStatusDirty, entity.ReportStatusCleaning},
			Category: "plastic",
			Limit:    10,
			Offset:   5,
		}).
		Return([]*entity.Report{report}, nil)

	rec := serve(t, e, http.MethodGet, "/reports?status=dirty&status=cleaning&category=plastic&limit=10&offset=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var data []ReportResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, report.ID.String(), data[0].ID)
	assert.Equal(t, "dirty", data[0].Status)
	assert.Equal(t, "Rohini", data[0].Address)
}

func TestReportHandler_ListReports_BadPaging(t *testing.T) {
	e, _ := newReportTestServer(t)

	rec := serve(t, e, http.MethodGet, "/reports?limit=ten", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestReportHandler_ListReports_UsecaseValidationError(t *testing.T) {
	e, reportUC := newReportTestServer(t)

	reportUC.EXPECT().
		ListReports(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails(`unknown status "bogus"`))

	rec := serve(t, e, http.MethodGet, "/reports?status=bogus", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, `unknown status "bogus"`, env.Error.Details)
}

func TestReportHandler_ListActionableReports(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, reportUC := newReportTestServer(t)
		reportUC.EXPECT().ListActionableReports(mock.Anything).Return([]*entity.Report{}, nil)

		rec := serve(t, e, http.MethodGet, "/reports/actionable", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		e, reportUC := newReportTestServer(t)
		reportUC.EXPECT().ListActionableReports(mock.Anything).Return(nil, errors.New("pq: connection refused"))

		rec := serve(t, e, http.MethodGet, "/reports/actionable", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestReportHandler_GetReport(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, reportUC := newReportTestServer(t)
		report := sampleReport(entity.ReportStatusCleaning)
		reportUC.EXPECT().GetReport(mock.Anything, report.ID).Return(report, nil)

		rec := serve(t, e, http.MethodGet, "/reports/"+report.ID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var data ReportResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
		assert.Equal(t, "cleaning", data.Status)
	})

	t.Run("invalid id", func(t *testing.T) {
		e, _ := newReportTestServer(t)

		rec := serve(t, e, http.MethodGet, "/reports/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid report ID", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("not found", func(t *testing.T) {
		e, reportUC := newReportTestServer(t)
		id := uuid.New()
		reportUC.EXPECT().GetReport(mock.Anything, id).Return(nil, domainerrors.ErrReportNotFound.WithDetails(id.String()))

		rec := serve(t, e, http.MethodGet, "/reports/"+id.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "REPORT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestReportHandler_UpdateReportStatus(t *testing.T) {
	e, reportUC := newReportTestServer(t)
	report := sampleReport(entity.ReportStatusCleaned)
	report.AuthorityComments = "bins emptied"

	reportUC.EXPECT().
		UpdateReportStatus(mock.Anything, report.ID, &usecase.UpdateReportStatusInput{
			Status:            entity.ReportStatusCleaned,
			AuthorityComments: "bins emptied",
		}).
		Return(report, nil)

	rec := serve(t, e, http.MethodPatch, "/reports/"+report.ID.String()+"/status",
		`{"status":"cleaned","authorityComments":"bins emptied"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var data ReportResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, "cleaned", data.Status)
	assert.Equal(t, "bins emptied", data.AuthorityComments)
}

func TestReportHandler_UpdateReportStatus_Rejected(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "malformed json",
			body:        `{"status":`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "invalid status update body",
		},
		{
			name:        "missing status",
			body:        `{}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "status is required",
		},
		{
			name:        "unknown status",
			body:        `{"status":"gone"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "status must be one of dirty, cleaning, in-progress, cleaned, completed",
		},
		{
			name:        "comments too long",
			body:        `{"status":"cleaned","authorityComments":"` + strings.Repeat("x", 2001) + `"}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "authorityComments must be at most 2000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newReportTestServer(t)

			rec := serve(t, e, http.MethodPatch, "/reports/"+id.String()+"/status", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Equal(t, tt.wantDetails, env.Error.Details)
		})
	}
}

func TestReportHandler_UpdateReportStatus_InvalidTransition(t *testing.T) {
	e, reportUC := newReportTestServer(t)
	id := uuid.New()

	reportUC.EXPECT().
		UpdateReportStatus(mock.Anything, id, mock.Anything).
		Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("completed -> dirty"))

	rec := serve(t, e, http.MethodPatch, "/reports/"+id.String()+"/status", `{"status":"dirty"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
	assert.Equal(t, "completed -> dirty", env.Error.Details)
}
