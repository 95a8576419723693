package qrcode

import (
	"bytes"
	"fmt"
	"net/url"
	"testing"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func routeWithStops(n int) *entity.Route {
	points := []entity.RoutePoint{{ID: "S", Latitude: 28.6139, Longitude: 77.209, IsStart: true}}
	for i := 0; i < n; i++ {
		points = append(points, entity.RoutePoint{
			ID:        fmt.Sprintf("R%d", i),
			Latitude:  28.5 + float64(i)*0.01,
			Longitude: 77.1,
		})
	}

	return &entity.Route{OrderedPoints: points}
}

func TestDirectionsURL(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	link, err := svc.DirectionsURL(routeWithStops(3))
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", parsed.Host)
	assert.Equal(t, "/maps/dir/", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "1", q.Get("api"))
	assert.Equal(t, "28.613900,77.209000", q.Get("origin"))
	assert.Equal(t, "28.520000,77.100000", q.Get("destination"))
	assert.Equal(t, "28.500000,77.100000|28.510000,77.100000", q.Get("waypoints"))
}

func TestDirectionsURL_SingleStopHasNoWaypoints(t *testing.T) {
	link, err := NewQRCodeService(0, "").DirectionsURL(routeWithStops(1))
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Empty(t, parsed.Query().Get("waypoints"))
}

func TestDirectionsURL_Limits(t *testing.T) {
	svc := NewQRCodeService(256, "L")

	_, err := svc.DirectionsURL(routeWithStops(0))
	assert.ErrorIs(t, err, ErrEmptyRoute)

	_, err = svc.DirectionsURL(routeWithStops(MaxWaypoints + 1))
	assert.NoError(t, err)

	_, err = svc.DirectionsURL(routeWithStops(MaxWaypoints + 2))
	assert.ErrorIs(t, err, ErrTooManyWaypoints)
	assert.ErrorIs(t, err, service.ErrRouteNotNavigable)
}

func TestGenerateRouteQR_PNG(t *testing.T) {
	png, err := NewQRCodeService(128, "H").GenerateRouteQR(routeWithStops(4))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
