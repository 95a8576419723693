package service

import (
	"errors"

	"nagarsetu/internal/domain/entity"
)

// ErrRouteNotNavigable is returned when a route cannot be expressed as a
// navigation link, e.g. it has no stops or too many of them.
var ErrRouteNotNavigable = errors.New("route cannot be turned into a navigation link")

// QRCodeService renders navigation QR codes for optimized routes.
type QRCodeService interface {
	// DirectionsURL builds a turn-by-turn navigation link that visits the
	// route's points in order.
	DirectionsURL(route *entity.Route) (string, error)

	// GenerateRouteQR encodes DirectionsURL(route) as a PNG image.
	GenerateRouteQR(route *entity.Route) ([]byte, error)
}
