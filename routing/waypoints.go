// SPDX-License-Identifier: MIT

package routing

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/katalvlaran/lvsearch/citymap"
	"github.com/katalvlaran/lvsearch/search"
)

// MaxWaypoints is the largest number of distinct waypoint tags a Coverage
// can track.
const MaxWaypoints = 64

// ErrTooManyWaypoints is returned when more than MaxWaypoints distinct tags
// are requested.
var ErrTooManyWaypoints = errors.New("routing: too many waypoint tags")

// Coverage is the set of waypoint tags already satisfied, as a bitmask over
// the problem's canonical waypoint list: bit i set ⇔ WaypointTags()[i] seen.
type Coverage uint64

// Has reports whether waypoint i is covered.
func (c Coverage) Has(i int) bool { return c&(1<<uint(i)) != 0 }

// Count returns the number of covered waypoints.
func (c Coverage) Count() int { return bits.OnesCount64(uint64(c)) }

// WaypointsShortestPathProblem finds the cheapest route from start to any
// location tagged endTag that passes through at least one location carrying
// each waypoint tag. Order of coverage is free.
type WaypointsShortestPathProblem struct {
	start     string
	endTag    string
	waypoints []string // canonical: sorted, de-duplicated
	full      Coverage
	m         *citymap.Map
}

// NewWaypointsShortestPathProblem canonicalizes waypointTags (sorted,
// de-duplicated) and returns the problem over m.
//
// Errors:
//   - ErrTooManyWaypoints if more than MaxWaypoints distinct tags are given.
func NewWaypointsShortestPathProblem(start string, waypointTags []string, endTag string, m *citymap.Map) (*WaypointsShortestPathProblem, error) {
	tags := slices.Clone(waypointTags)
	slices.Sort(tags)
	tags = slices.Compact(tags)
	if len(tags) > MaxWaypoints {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyWaypoints, len(tags), MaxWaypoints)
	}

	var full Coverage
	if len(tags) == MaxWaypoints {
		full = ^Coverage(0)
	} else {
		full = Coverage(1)<<uint(len(tags)) - 1
	}

	return &WaypointsShortestPathProblem{
		start:     start,
		endTag:    endTag,
		waypoints: tags,
		full:      full,
		m:         m,
	}, nil
}

// WaypointTags returns the canonical waypoint list.
func (p *WaypointsShortestPathProblem) WaypointTags() []string {
	return slices.Clone(p.waypoints)
}

// CoveredTags expands c into the tags it contains, in canonical order.
func (p *WaypointsShortestPathProblem) CoveredTags(c Coverage) []string {
	out := make([]string, 0, c.Count())
	for i, t := range p.waypoints {
		if c.Has(i) {
			out = append(out, t)
		}
	}

	return out
}

// coverageAt returns the waypoints present at location.
func (p *WaypointsShortestPathProblem) coverageAt(location string) Coverage {
	var c Coverage
	for i, t := range p.waypoints {
		if p.m.HasTag(location, t) {
			c |= 1 << uint(i)
		}
	}

	return c
}

// StartState returns (start, waypoints present at start).
func (p *WaypointsShortestPathProblem) StartState() search.State[Coverage] {
	return search.State[Coverage]{Location: p.start, Memory: p.coverageAt(p.start)}
}

// IsEnd requires both the end tag and full coverage.
func (p *WaypointsShortestPathProblem) IsEnd(s search.State[Coverage]) bool {
	return s.Memory == p.full && p.m.HasTag(s.Location, p.endTag)
}

// SuccessorsAndCosts moves to each neighbour, adding the waypoints found
// there to the coverage.
func (p *WaypointsShortestPathProblem) SuccessorsAndCosts(s search.State[Coverage]) []search.Successor[Coverage] {
	nbs := p.m.Neighbors(s.Location)
	out := make([]search.Successor[Coverage], 0, len(nbs))
	for _, nb := range nbs {
		out = append(out, search.Successor[Coverage]{
			Action: nb.ID,
			State:  search.State[Coverage]{Location: nb.ID, Memory: s.Memory | p.coverageAt(nb.ID)},
			Cost:   nb.Distance,
		})
	}

	return out
}
