package tour

import (
	"time"

	"nagarsetu/internal/domain/entity"
)

const (
	DefaultMaxPasses  = 1000
	DefaultTimeBudget = 2 * time.Second

	// improvementEpsilonKm is the smallest gain a reversal must bring. It keeps
	// floating-point noise from flipping equal-length segments back and forth.
	improvementEpsilonKm = 1e-9
)

// now is swapped in tests.
var now = time.Now

// TwoOptLimits bounds the 2-opt search. Zero fields take the defaults and
// negative fields disable the corresponding limit.
type TwoOptLimits struct {
	MaxPasses  int
	TimeBudget time.Duration
}

func (l TwoOptLimits) normalized() TwoOptLimits {
	if l.MaxPasses == 0 {
		l.MaxPasses = DefaultMaxPasses
	}
	if l.TimeBudget == 0 {
		l.TimeBudget = DefaultTimeBudget
	}

	return l
}

// Improvement is the outcome of a 2-opt search.
type Improvement struct {
	Order      []int
	DistanceKm float64
	Passes     int
	// Converged is true when the last pass found nothing to improve. It is
	// false when the pass cap or time budget cut the search short.
	Converged bool
}

// TwoOpt shortens an open tour by reversing segments order[i..j]. Position 0
// is the start and never moves. Each pass tries every i < j with j-i > 1 and
// applies a reversal as soon as it shortens the tour; passes repeat until one
// applies nothing or a limit is hit. The input order is not modified.
func TwoOpt(points []entity.RoutePoint, order []int, limits TwoOptLimits) Improvement {
	limits = limits.normalized()

	best := make([]int, len(order))
	copy(best, order)
	bestDistance := PathLength(points, best)

	n := len(best)
	if n < 4 {
		return Improvement{Order: best, DistanceKm: bestDistance, Converged: true}
	}

	var deadline time.Time
	if limits.TimeBudget > 0 {
		deadline = now().Add(limits.TimeBudget)
	}

	result := Improvement{}
	for {
		if limits.MaxPasses > 0 && result.Passes >= limits.MaxPasses {
			break
		}
		result.Passes++

		improved, timedOut := twoOptPass(points, best, deadline)
		if improved {
			bestDistance = PathLength(points, best)
		}
		if timedOut {
			break
		}
		if !improved {
			result.Converged = true

			break
		}
	}

	result.Order = best
	result.DistanceKm = bestDistance

	return result
}

// twoOptPass runs one sweep over order, reversing in place. It stops early
// when deadline is set and has passed.
func twoOptPass(points []entity.RoutePoint, order []int, deadline time.Time) (improved, timedOut bool) {
	n := len(order)

	for i := 1; i < n-2; i++ {
		if !deadline.IsZero() && now().After(deadline) {
			return improved, true
		}

		for j := i + 2; j < n; j++ {
			if reversalGain(points, order, i, j) > improvementEpsilonKm {
				reverse(order, i, j)
				improved = true
			}
		}
	}

	return improved, false
}

// reversalGain is how much shorter the tour gets if order[i..j] is reversed.
// Only the two boundary legs change because distances are symmetric.
func reversalGain(points []entity.RoutePoint, order []int, i, j int) float64 {
	before := points[order[i-1]]
	first := points[order[i]]
	last := points[order[j]]

	gain := Distance(before, first) - Distance(before, last)
	if j+1 < len(order) {
		after := points[order[j+1]]
		gain += Distance(last, after) - Distance(first, after)
	}

	return gain
}

func reverse(order []int, i, j int) {
	for ; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
}
