// SPDX-License-Identifier: MIT
// File: methods_connections.go
// Role: connection lifecycle and adjacency queries.
//
// Determinism:
//   - Neighbors() returns neighbours sorted by location ID, so searches that
//     iterate successors in this order break ties reproducibly.

package citymap

import (
	"fmt"
	"sort"
)

// Neighbor is one outgoing connection of a location.
type Neighbor struct {
	ID       string  // neighbouring location
	Distance float64 // non-negative connection cost
}

// AddConnection links a and b in both directions with the given distance.
// Re-adding an existing pair overwrites its distance.
//
// Errors:
//   - ErrEmptyLocationID if either ID is empty.
//   - ErrLocationNotFound if either endpoint was never added.
//   - ErrNegativeDistance if distance < 0.
//
// Complexity: O(1).
func (m *Map) AddConnection(a, b string, distance float64) error {
	if err := m.AddDirectedConnection(a, b, distance); err != nil {
		return err
	}

	return m.AddDirectedConnection(b, a, distance)
}

// AddDirectedConnection links from → to only.
func (m *Map) AddDirectedConnection(from, to string, distance float64) error {
	if from == "" || to == "" {
		return ErrEmptyLocationID
	}
	if distance < 0 {
		return fmt.Errorf("%w: %s→%s distance=%g", ErrNegativeDistance, from, to, distance)
	}
	if !m.HasLocation(from) {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, from)
	}
	if !m.HasLocation(to) {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, to)
	}

	m.muAdj.Lock()
	m.distances[from][to] = distance
	m.muAdj.Unlock()

	return nil
}

// AddConnectionGeo links a and b in both directions using the great-circle
// distance between their geolocations.
func (m *Map) AddConnectionGeo(a, b string) error {
	ga, ok := m.GeoLocationOf(a)
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, a)
	}
	gb, ok := m.GeoLocationOf(b)
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, b)
	}

	return m.AddConnection(a, b, ComputeDistance(ga, gb))
}

// Neighbors returns the outgoing connections of id sorted by neighbour ID.
// Unknown locations have no neighbours.
// Complexity: O(d log d) for out-degree d.
func (m *Map) Neighbors(id string) []Neighbor {
	m.muAdj.RLock()
	inner := m.distances[id]
	out := make([]Neighbor, 0, len(inner))
	for to, d := range inner {
		out = append(out, Neighbor{ID: to, Distance: d})
	}
	m.muAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Distances returns a copy of the adjacency row of id: neighbour → distance.
func (m *Map) Distances(id string) map[string]float64 {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	inner := m.distances[id]
	out := make(map[string]float64, len(inner))
	for to, d := range inner {
		out[to] = d
	}

	return out
}

// Distance returns the direct connection cost from → to, if any.
func (m *Map) Distance(from, to string) (float64, bool) {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	d, ok := m.distances[from][to]

	return d, ok
}

// ConnectionCount returns the number of directed connections.
func (m *Map) ConnectionCount() int {
	m.muAdj.RLock()
	defer m.muAdj.RUnlock()
	n := 0
	for _, inner := range m.distances {
		n += len(inner)
	}

	return n
}
