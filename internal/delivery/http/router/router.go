// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nagarsetu/config"
	"nagarsetu/internal/delivery/http/middleware"
	"nagarsetu/internal/delivery/http/router/handler"
	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	ReportHandler  *handler.ReportHandler
	RouteHandler   *handler.RouteHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	reportHandler  *handler.ReportHandler
	routeHandler   *handler.RouteHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reportHandler:  params.ReportHandler,
		routeHandler:   params.RouteHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// MetricsPath is where Prometheus scrapes, or "" when metrics are off.
func (r *router) MetricsPath() string {
	if r.metrics == nil || r.config == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return ""
	}
	if r.config.Metrics.Path == "" {
		return defaultMetricsPath
	}

	return r.config.Metrics.Path
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if path := r.MetricsPath(); path != "" {
		e.GET(path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Everything under /api/v1 is for authorities only.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	apiV1.Use(r.authMiddleware.RequireRole(entity.RoleAuthority))

	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.GET("", r.reportHandler.ListReports)
		reportsGroup.GET("/actionable", r.reportHandler.ListActionableReports)
		reportsGroup.GET("/:id", r.reportHandler.GetReport)
		reportsGroup.PATCH("/:id/status", r.reportHandler.UpdateReportStatus)
	}

	routesGroup := apiV1.Group("/routes")
	{
		routesGroup.POST("/optimize", r.routeHandler.OptimizeRoute)
		routesGroup.POST("/qrcode", r.routeHandler.RouteQRCode)
	}
}
