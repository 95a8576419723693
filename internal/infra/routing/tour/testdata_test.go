package tour

import (
	"fmt"
	"math/rand"

	"nagarsetu/internal/domain/entity"
)

func point(id string, lat, lng float64) entity.RoutePoint {
	return entity.RoutePoint{ID: id, Latitude: lat, Longitude: lng}
}

func startPoint(id string, lat, lng float64) *entity.RoutePoint {
	p := point(id, lat, lng)
	p.IsStart = true

	return &p
}

// newDelhi is the four-point scenario around New Delhi.
func newDelhi() (*entity.RoutePoint, []entity.RoutePoint) {
	return startPoint("S", 28.6139, 77.2090), []entity.RoutePoint{
		point("A", 28.7041, 77.1025),
		point("B", 28.5355, 77.3910),
		point("C", 28.4595, 77.0266),
	}
}

// zigzag is a six-point layout where nearest-neighbor leaves room for
// 2-opt: it needs three passes to settle.
func zigzag() (*entity.RoutePoint, []entity.RoutePoint) {
	return startPoint("S", 0, 0), []entity.RoutePoint{
		point("P1", 0.04, 0.04),
		point("P2", 0.01, -0.05),
		point("P3", -0.02, -0.05),
		point("P4", 0.03, -0.03),
		point("P5", -0.01, 0.01),
	}
}

func combined(start *entity.RoutePoint, stops []entity.RoutePoint) []entity.RoutePoint {
	return append([]entity.RoutePoint{*start}, stops...)
}

func randomStops(rng *rand.Rand, n int) []entity.RoutePoint {
	stops := make([]entity.RoutePoint, n)
	for i := range stops {
		stops[i] = point(
			fmt.Sprintf("R%d", i),
			28.4+rng.Float64()*0.4,
			76.9+rng.Float64()*0.5,
		)
	}

	return stops
}
