package handler

import (
	"net/http"

	"nagarsetu/internal/delivery/http/response"
	"nagarsetu/internal/domain/entity"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

// ReportHandler serves report listing and status updates for authorities
type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
	}
}

// ListReports handles GET /reports?status=..&status=..&category=..&limit=..&offset=..
func (h *ReportHandler) ListReports(c echo.Context) error {
	input := &usecase.ListReportsInput{
		Category: c.QueryParam("category"),
	}

	if err := echo.QueryParamsBinder(c).
		Int("limit", &input.Limit).
		Int("offset", &input.Offset).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}

	for _, status := range c.QueryParams()["status"] {
		input.Statuses = append(input.Statuses, entity.ReportStatus(status))
	}

	reports, err := h.reportUC.ListReports(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toReportResponses(reports), "Reports retrieved successfully")
}

// ListActionableReports handles GET /reports/actionable
func (h *ReportHandler) ListActionableReports(c echo.Context) error {
	reports, err := h.reportUC.ListActionableReports(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toReportResponses(reports), "Actionable reports retrieved successfully")
}

// GetReport handles GET /reports/:id
func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := parseReportID(c)
	if err != nil {
		return err
	}

	report, err := h.reportUC.GetReport(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toReportResponse(report), "Report retrieved successfully")
}

// UpdateReportStatus handles PATCH /reports/:id/status
func (h *ReportHandler) UpdateReportStatus(c echo.Context) error {
	id, err := parseReportID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateReportStatusInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid status update body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	report, err := h.reportUC.UpdateReportStatus(c.Request().Context(), id, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toReportResponse(report), "Report status updated successfully")
}

func parseReportID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid report ID")
	}

	return id, nil
}
