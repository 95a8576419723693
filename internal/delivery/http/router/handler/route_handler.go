package handler

import (
	"net/http"

	"nagarsetu/internal/delivery/http/response"
	domainerrors "nagarsetu/internal/domain/errors"
	"nagarsetu/internal/infra/mapfeature"
	"nagarsetu/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	formatGeoJSON = "geojson"
	mimeGeoJSON   = "application/geo+json"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
}

// RouteHandler serves collection route planning
type RouteHandler struct {
	routeUC usecase.RouteUsecase
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
	}
}

// OptimizeRoute handles POST /routes/optimize. With ?format=geojson the
// route is returned as a bare FeatureCollection for map clients.
func (h *RouteHandler) OptimizeRoute(c echo.Context) error {
	input, err := bindOptimizeInput(c)
	if err != nil {
		return err
	}

	output, err := h.routeUC.OptimizeRoute(c.Request().Context(), input)
	if err != nil {
		return err
	}

	if c.QueryParam("format") == formatGeoJSON {
		c.Response().Header().Set(echo.HeaderContentType, mimeGeoJSON)

		return c.JSON(http.StatusOK, mapfeature.RouteFeatureCollection(output.Route))
	}

	return response.Success(c, http.StatusOK, toRouteResponse(output), "Route optimized successfully")
}

// RouteQRCode handles POST /routes/qrcode and returns a PNG.
func (h *RouteHandler) RouteQRCode(c echo.Context) error {
	input, err := bindOptimizeInput(c)
	if err != nil {
		return err
	}

	png, err := h.routeUC.RouteQRCode(c.Request().Context(), input)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

func bindOptimizeInput(c echo.Context) (*usecase.OptimizeRouteInput, error) {
	var input usecase.OptimizeRouteInput
	if err := c.Bind(&input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid route request body")
	}

	if err := c.Validate(&input); err != nil {
		return nil, err
	}

	return &input, nil
}
