package tour

import (
	"math"

	"nagarsetu/internal/domain/entity"
)

const earthRadiusKm = 6371.0

// Distance returns the haversine distance in kilometers between two points.
// Coordinates are not validated here.
func Distance(a, b entity.RoutePoint) float64 {
	return haversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*sinLng*sinLng

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// PathLength sums the leg distances along order.
func PathLength(points []entity.RoutePoint, order []int) float64 {
	total := 0.0
	for k := 1; k < len(order); k++ {
		total += Distance(points[order[k-1]], points[order[k]])
	}

	return total
}

// ValidCoordinate reports whether lat/lng are finite and inside the WGS84 ranges.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
