// Package tour orders waste-collection stops into a short driving route.
//
// A route is built in two steps: a nearest-neighbor construction from the
// start point, then 2-opt segment reversals until no reversal shortens the
// path. The path is open; it ends at the last stop and never returns to the
// start. Distances are great-circle (haversine) kilometers.
//
// Everything here is pure computation over caller-owned slices. Functions copy
// what they reorder and keep no state between calls, so concurrent use is safe.
package tour
