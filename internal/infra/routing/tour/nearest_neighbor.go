package tour

import (
	"math"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/errors"
)

// Construction is a nearest-neighbor tour.
type Construction struct {
	Order      []int   // Indices into the input points, beginning with the start index.
	DistanceKm float64 // Sum of the legs taken.
}

// NearestNeighbor builds a tour by always stepping to the closest unvisited
// point. Ties go to the lowest index, so equal inputs give equal tours.
func NearestNeighbor(points []entity.RoutePoint, startIndex int) (Construction, error) {
	n := len(points)
	if n == 0 {
		return Construction{Order: []int{}}, nil
	}
	if startIndex < 0 || startIndex >= n {
		return Construction{}, errors.Wrapf(ErrStartIndexOutOfRange, "index %d with %d points", startIndex, n)
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)

	current := startIndex
	visited[current] = true
	order = append(order, current)
	total := 0.0

	for len(order) < n {
		next := -1
		nearest := math.Inf(1)

		for i := range points {
			if visited[i] {
				continue
			}
			// next == -1 keeps NaN distances from leaving the point unvisited.
			if d := Distance(points[current], points[i]); next == -1 || d < nearest {
				nearest = d
				next = i
			}
		}

		visited[next] = true
		order = append(order, next)
		total += nearest
		current = next
	}

	return Construction{Order: order, DistanceKm: total}, nil
}
