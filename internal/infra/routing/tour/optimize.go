package tour

import (
	"math"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/errors"
)

const (
	DefaultSpeedKmh = 30.0

	// DefaultTwoOptThreshold skips 2-opt for routes of this many points or fewer.
	DefaultTwoOptThreshold = 4
)

// Options configures Optimize.
type Options struct {
	// SpeedKmh converts distance into minutes. Non-positive means DefaultSpeedKmh.
	SpeedKmh float64

	// TwoOptThreshold is the point count (start included) above which 2-opt
	// runs. Zero means DefaultTwoOptThreshold; negative runs 2-opt always.
	TwoOptThreshold int

	Limits TwoOptLimits
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SpeedKmh:        DefaultSpeedKmh,
		TwoOptThreshold: DefaultTwoOptThreshold,
		Limits: TwoOptLimits{
			MaxPasses:  DefaultMaxPasses,
			TimeBudget: DefaultTimeBudget,
		},
	}
}

func (o Options) normalized() Options {
	if o.SpeedKmh <= 0 || math.IsNaN(o.SpeedKmh) || math.IsInf(o.SpeedKmh, 0) {
		o.SpeedKmh = DefaultSpeedKmh
	}
	if o.TwoOptThreshold == 0 {
		o.TwoOptThreshold = DefaultTwoOptThreshold
	}
	o.Limits = o.Limits.normalized()

	return o
}

// Optimize orders stops into a route that leaves from start. The start must be
// flagged IsStart and no stop may be. An empty stops slice yields a route that
// holds only the start.
func Optimize(start *entity.RoutePoint, stops []entity.RoutePoint, opts Options) (*entity.Route, error) {
	if err := Validate(start, stops); err != nil {
		return nil, err
	}
	opts = opts.normalized()

	points := make([]entity.RoutePoint, 0, len(stops)+1)
	points = append(points, *start)
	points = append(points, stops...)

	construction, err := NearestNeighbor(points, 0)
	if err != nil {
		return nil, err
	}

	order := construction.Order
	distance := construction.DistanceKm
	converged := true
	passes := 0
	improved := false

	if opts.TwoOptThreshold < 0 || len(points) > opts.TwoOptThreshold {
		refined := TwoOpt(points, construction.Order, opts.Limits)
		order = refined.Order
		distance = refined.DistanceKm
		converged = refined.Converged
		passes = refined.Passes
		improved = refined.DistanceKm < construction.DistanceKm
	}

	ordered := make([]entity.RoutePoint, len(order))
	for pos, idx := range order {
		ordered[pos] = points[idx]
	}

	return &entity.Route{
		OrderedPoints:    ordered,
		TotalDistanceKm:  roundKm(distance),
		EstimatedMinutes: estimateMinutes(distance, opts.SpeedKmh),
		VisitOrder:       order,
		Converged:        converged,
		Passes:           passes,
		Improved:         improved,
	}, nil
}

// Validate checks the input contract of Optimize without running it.
func Validate(start *entity.RoutePoint, stops []entity.RoutePoint) error {
	if start == nil {
		return ErrMissingStart
	}
	if !start.IsStart {
		return errors.Wrapf(ErrStartNotFlagged, "point %q", start.ID)
	}

	seen := make(map[string]struct{}, len(stops)+1)
	if err := validatePoint(*start, seen); err != nil {
		return err
	}

	for i, stop := range stops {
		if stop.IsStart {
			return errors.Wrapf(ErrStartInStops, "stop %d (%q)", i, stop.ID)
		}
		if err := validatePoint(stop, seen); err != nil {
			return errors.Wrapf(err, "stop %d", i)
		}
	}

	return nil
}

func validatePoint(p entity.RoutePoint, seen map[string]struct{}) error {
	if p.ID == "" {
		return ErrEmptyPointID
	}
	if _, dup := seen[p.ID]; dup {
		return errors.Wrapf(ErrDuplicatePointID, "%q", p.ID)
	}
	seen[p.ID] = struct{}{}

	if !ValidCoordinate(p.Latitude, p.Longitude) {
		return errors.Wrapf(ErrInvalidCoordinate, "point %q: lat=%v lng=%v", p.ID, p.Latitude, p.Longitude)
	}

	return nil
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func estimateMinutes(km, speedKmh float64) int {
	return int(math.Ceil(km / speedKmh * 60))
}
