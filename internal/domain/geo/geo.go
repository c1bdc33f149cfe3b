// Package geo holds the pure geographic math used by proximity search:
// great-circle distance on a spherical Earth and distance-ranked
// ordering of located items. It performs no I/O.
package geo

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Locatable is anything that may carry a geographic point. The second
// return value reports whether a location is present at all.
type Locatable interface {
	Coordinate() (orb.Point, bool)
}

// Ranked pairs an item with its computed distance from a reference
// point. The distance is derived at read time and never persisted.
type Ranked[T Locatable] struct {
	Item       T
	DistanceKm float64
}

// Distance returns the great-circle distance between two points in
// kilometers. Points follow the GeoJSON (lon, lat) convention.
// Symmetric; zero when both points coincide.
func Distance(a, b orb.Point) float64 {
	latA := degToRad(a.Lat())
	latB := degToRad(b.Lat())
	deltaLat := degToRad(b.Lat() - a.Lat())
	deltaLon := degToRad(b.Lon() - a.Lon())

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latA)*math.Cos(latB)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// IsValid reports whether a point is a usable Earth coordinate.
func IsValid(p orb.Point) bool {
	if math.IsNaN(p.Lon()) || math.IsNaN(p.Lat()) ||
		math.IsInf(p.Lon(), 0) || math.IsInf(p.Lat(), 0) {
		return false
	}

	return p.Lat() >= -90 && p.Lat() <= 90 &&
		p.Lon() >= -180 && p.Lon() <= 180
}

// Rank computes the distance from ref to every located item in the pool
// and returns them sorted ascending by distance. The sort is stable, so
// ties keep the pool's pre-existing order. Items without a location are
// dropped. An empty result is not an error; callers decide what an
// empty set means.
func Rank[T Locatable](ref orb.Point, pool []T) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(pool))
	for _, item := range pool {
		point, ok := item.Coordinate()
		if !ok {
			continue
		}
		ranked = append(ranked, Ranked[T]{Item: item, DistanceKm: Distance(ref, point)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
