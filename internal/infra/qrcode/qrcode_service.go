package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	directionsBaseURL = "https://www.google.com/maps/dir/"

	// MaxWaypoints is the number of intermediate stops a Maps directions URL accepts.
	MaxWaypoints = 9

	defaultSize = 256
)

// Both wrap service.ErrRouteNotNavigable.
var (
	ErrEmptyRoute       = errors.Wrap(service.ErrRouteNotNavigable, "route has no stops")
	ErrTooManyWaypoints = errors.Wrap(service.ErrRouteNotNavigable, "too many stops")
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// DirectionsURL builds a Google Maps directions link from the start through
// every stop in order, ending at the last stop.
func (s *qrcodeService) DirectionsURL(route *entity.Route) (string, error) {
	stops := route.Stops()
	if len(stops) == 0 {
		return "", ErrEmptyRoute
	}

	waypoints := stops[:len(stops)-1]
	if len(waypoints) > MaxWaypoints {
		return "", errors.Wrapf(ErrTooManyWaypoints, "%d stops, at most %d", len(stops), MaxWaypoints+1)
	}

	query := url.Values{}
	query.Set("api", "1")
	query.Set("travelmode", "driving")
	query.Set("origin", latLng(route.OrderedPoints[0]))
	query.Set("destination", latLng(stops[len(stops)-1]))

	if len(waypoints) > 0 {
		parts := make([]string, len(waypoints))
		for i, p := range waypoints {
			parts[i] = latLng(p)
		}
		query.Set("waypoints", strings.Join(parts, "|"))
	}

	return directionsBaseURL + "?" + query.Encode(), nil
}

// GenerateRouteQR encodes the route's directions link as a PNG.
func (s *qrcodeService) GenerateRouteQR(route *entity.Route) ([]byte, error) {
	link, err := s.DirectionsURL(route)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func latLng(p entity.RoutePoint) string {
	return strconv.FormatFloat(p.Latitude, 'f', 6, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', 6, 64)
}
