package service

import (
	"context"
	"errors"

	"nagarsetu/internal/domain/entity"
)

// ErrNoGeocodingResult is returned when the provider answered but found nothing.
var ErrNoGeocodingResult = errors.New("no geocoding result")

// Geocoder resolves free-text addresses to coordinates and back.
type Geocoder interface {
	// Search returns the best match for a free-text address.
	Search(ctx context.Context, query string) (*entity.Location, error)

	// Reverse returns a labelled location for a coordinate pair.
	Reverse(ctx context.Context, lat, lng float64) (*entity.Location, error)
}
