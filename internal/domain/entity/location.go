package entity

import "fmt"

// Location is a resolved geographic position with its display label.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// CoordinateLabel formats a position the way it is shown when no address is known.
func CoordinateLabel(lat, lng float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lng)
}
