// SPDX-License-Identifier: MIT

package routing

import (
	"math"

	"github.com/katalvlaran/lvsearch/citymap"
	"github.com/katalvlaran/lvsearch/search"
)

// ZeroHeuristic estimates zero everywhere. A* with it is uniform-cost search.
type ZeroHeuristic[M comparable] struct{}

// Evaluate returns 0.
func (ZeroHeuristic[M]) Evaluate(search.State[M]) float64 { return 0 }

// StraightLineHeuristic estimates the great-circle distance from a state's
// location to the nearest location tagged endTag. It ignores memory, so it
// serves any problem over the same map, but it is only consistent for
// problems whose costs are physical distances.
type StraightLineHeuristic[M comparable] struct {
	m    *citymap.Map
	ends []citymap.GeoLocation
}

// NewStraightLineHeuristic precomputes the geolocations of every location
// tagged endTag.
func NewStraightLineHeuristic[M comparable](endTag string, m *citymap.Map) *StraightLineHeuristic[M] {
	return &StraightLineHeuristic[M]{m: m, ends: endGeoLocations(endTag, m)}
}

// Evaluate returns the minimum straight-line distance to an end location,
// or 0 when no end location exists or the state's location is unknown.
func (h *StraightLineHeuristic[M]) Evaluate(s search.State[M]) float64 {
	return nearest(h.m, h.ends, s.Location, citymap.ComputeDistance)
}

// NorthSouthHeuristic estimates only the latitude component of the distance
// to the nearest end location. It is weaker than StraightLineHeuristic but
// never larger.
type NorthSouthHeuristic[M comparable] struct {
	m    *citymap.Map
	ends []citymap.GeoLocation
}

// NewNorthSouthHeuristic precomputes the end geolocations for endTag.
func NewNorthSouthHeuristic[M comparable](endTag string, m *citymap.Map) *NorthSouthHeuristic[M] {
	return &NorthSouthHeuristic[M]{m: m, ends: endGeoLocations(endTag, m)}
}

// Evaluate returns the minimum north–south distance to an end location.
func (h *NorthSouthHeuristic[M]) Evaluate(s search.State[M]) float64 {
	return nearest(h.m, h.ends, s.Location, citymap.LatitudeDistance)
}

func endGeoLocations(endTag string, m *citymap.Map) []citymap.GeoLocation {
	ids := m.LocationsWithTag(endTag)
	out := make([]citymap.GeoLocation, 0, len(ids))
	for _, id := range ids {
		if g, ok := m.GeoLocationOf(id); ok {
			out = append(out, g)
		}
	}

	return out
}

func nearest(m *citymap.Map, ends []citymap.GeoLocation, location string, dist func(a, b citymap.GeoLocation) float64) float64 {
	if len(ends) == 0 {
		return 0
	}
	here, ok := m.GeoLocationOf(location)
	if !ok {
		return 0
	}
	best := math.Inf(1)
	for _, e := range ends {
		best = math.Min(best, dist(here, e))
	}

	return best
}
