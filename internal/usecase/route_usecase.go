package usecase

import (
	"context"

	"nagarsetu/internal/domain/entity"

	"github.com/google/uuid"
)

// StartInput identifies the route origin: either a free-text address or a
// coordinate pair, never both.
type StartInput struct {
	Address   string   `json:"address,omitempty" validate:"omitempty,max=512"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// OptimizeRouteInput represents the input for planning a collection route
type OptimizeRouteInput struct {
	Start StartInput `json:"start"`

	// ReportIDs limits the route to these reports. Empty means every actionable report.
	ReportIDs []uuid.UUID `json:"reportIds,omitempty" validate:"omitempty,max=500,dive,required"`
}

// OptimizeRouteOutput represents the planned route
type OptimizeRouteOutput struct {
	Route     *entity.Route
	Start     *entity.Location
	StopCount int
}

// RouteUsecase defines the interface for collection route planning
type RouteUsecase interface {
	// OptimizeRoute resolves the start, loads the stops and orders them into a route.
	OptimizeRoute(ctx context.Context, input *OptimizeRouteInput) (*OptimizeRouteOutput, error)

	// RouteQRCode plans the route and encodes its navigation link as a PNG QR code.
	RouteQRCode(ctx context.Context, input *OptimizeRouteInput) ([]byte, error)
}
