// SPDX-License-Identifier: MIT

package citymap

import "math"

// TotalCost sums the connection distances along path.
// A hop with no connection makes the cost +Inf. Paths shorter than two
// locations cost zero.
func (m *Map) TotalCost(path []string) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		d, ok := m.Distance(path[i-1], path[i])
		if !ok {
			return math.Inf(1)
		}
		total += d
	}

	return total
}

// CheckValid reports whether path starts at start, follows existing
// connections, ends at a location tagged endTag, and visits at least one
// location carrying each of waypointTags along the way.
func (m *Map) CheckValid(path []string, start, endTag string, waypointTags []string) bool {
	if len(path) == 0 || path[0] != start {
		return false
	}
	for i := 1; i < len(path); i++ {
		if _, ok := m.Distance(path[i-1], path[i]); !ok {
			return false
		}
	}
	if !m.HasTag(path[len(path)-1], endTag) {
		return false
	}

	pending := make(map[string]struct{}, len(waypointTags))
	for _, t := range waypointTags {
		pending[t] = struct{}{}
	}
	for _, loc := range path {
		for t := range pending {
			if m.HasTag(loc, t) {
				delete(pending, t)
			}
		}
	}

	return len(pending) == 0
}
