// Package mapfeature renders optimized routes as GeoJSON for map clients.
package mapfeature

import (
	"nagarsetu/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature kinds written to the "kind" property.
const (
	KindStop = "stop"
	KindPath = "path"
)

// RouteFeatureCollection returns one Point feature per route point, in visiting
// order, followed by a LineString through all of them. GeoJSON positions are
// [longitude, latitude].
func RouteFeatureCollection(route *entity.Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if route == nil || len(route.OrderedPoints) == 0 {
		return fc
	}

	line := make(orb.LineString, 0, len(route.OrderedPoints))
	for order, p := range route.OrderedPoints {
		point := orb.Point{p.Longitude, p.Latitude}
		line = append(line, point)

		f := geojson.NewFeature(point)
		f.ID = p.ID
		f.Properties["kind"] = KindStop
		f.Properties["order"] = order
		f.Properties["id"] = p.ID
		f.Properties["address"] = p.Address
		f.Properties["isStart"] = p.IsStart
		if p.Report != nil {
			f.Properties["status"] = p.Report.Status.String()
			f.Properties["category"] = p.Report.Category
		}
		fc.Append(f)
	}

	if len(line) > 1 {
		path := geojson.NewFeature(line)
		path.Properties["kind"] = KindPath
		path.Properties["distanceKm"] = route.TotalDistanceKm
		path.Properties["estimatedMinutes"] = route.EstimatedMinutes
		path.Properties["converged"] = route.Converged
		fc.Append(path)
	}

	return fc
}

// Bounds is the bounding box of all route points, for fitting a map viewport.
func Bounds(route *entity.Route) (orb.Bound, bool) {
	if route == nil || len(route.OrderedPoints) == 0 {
		return orb.Bound{}, false
	}

	mp := make(orb.MultiPoint, len(route.OrderedPoints))
	for i, p := range route.OrderedPoints {
		mp[i] = orb.Point{p.Longitude, p.Latitude}
	}

	return mp.Bound(), true
}
