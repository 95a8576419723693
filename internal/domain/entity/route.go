package entity

// RoutePoint is one location on a collection route.
type RoutePoint struct {
	ID        string  // Unique within one optimization call.
	Latitude  float64 // Degrees, [-90, 90].
	Longitude float64 // Degrees, [-180, 180].
	IsStart   bool    // Marks the single origin of the route.
	Address   string  // Human-readable label; may be a raw "lat, lng" fallback.

	// Report points back to the originating waste report. The optimizer never
	// reads or modifies it.
	Report *Report
}

// Route is the result of one optimization call. It is never persisted.
type Route struct {
	OrderedPoints    []RoutePoint // Start first, then stops in visiting order.
	TotalDistanceKm  float64      // Haversine length of the path, rounded to 2 decimals.
	EstimatedMinutes int          // Travel time at the configured average speed, rounded up.

	// VisitOrder maps positions in OrderedPoints back to input indices,
	// where 0 is the start and i+1 is stops[i].
	VisitOrder []int

	// Converged is false when 2-opt stopped on its pass cap or time budget
	// while it was still finding improvements.
	Converged bool
	Passes    int  // Number of 2-opt passes run, 0 when 2-opt was skipped.
	Improved  bool // Whether 2-opt shortened the nearest-neighbor tour.
}

// Stops returns the ordered points after the start.
func (r *Route) Stops() []RoutePoint {
	if r == nil || len(r.OrderedPoints) == 0 {
		return nil
	}

	return r.OrderedPoints[1:]
}
