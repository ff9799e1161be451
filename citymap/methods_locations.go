// SPDX-License-Identifier: MIT
// File: methods_locations.go
// Role: location lifecycle and tag/geolocation queries.
//
// Determinism:
//   - Locations() and Tags() return sorted slices.

package citymap

import "sort"

// labelKey is the tag key every location carries with its own ID as value.
const labelKey = "label"

// AddLocation registers id with its geolocation and tags.
// The tag "label=<id>" is always attached. Adding an existing location
// overwrites its geolocation and merges the new tags into its tag set.
//
// Errors:
//   - ErrEmptyLocationID if id == "".
//
// Complexity: O(len(tags)).
func (m *Map) AddLocation(id string, geo GeoLocation, tags ...string) error {
	if id == "" {
		return ErrEmptyLocationID
	}

	m.muLoc.Lock()
	m.geo[id] = geo
	set, ok := m.tags[id]
	if !ok {
		set = make(map[string]struct{}, len(tags)+1)
		m.tags[id] = set
	}
	set[MakeTag(labelKey, id)] = struct{}{}
	for _, t := range tags {
		set[t] = struct{}{}
	}
	m.muLoc.Unlock()

	// bootstrap the adjacency bucket so Neighbors never sees a missing key
	m.muAdj.Lock()
	if _, ok = m.distances[id]; !ok {
		m.distances[id] = make(map[string]float64)
	}
	m.muAdj.Unlock()

	return nil
}

// HasLocation reports whether id is present.
func (m *Map) HasLocation(id string) bool {
	m.muLoc.RLock()
	defer m.muLoc.RUnlock()
	_, ok := m.geo[id]

	return ok
}

// Locations returns every location ID, sorted ascending.
// Complexity: O(V log V).
func (m *Map) Locations() []string {
	m.muLoc.RLock()
	ids := make([]string, 0, len(m.geo))
	for id := range m.geo {
		ids = append(ids, id)
	}
	m.muLoc.RUnlock()
	sort.Strings(ids)

	return ids
}

// LocationCount returns the number of locations.
func (m *Map) LocationCount() int {
	m.muLoc.RLock()
	defer m.muLoc.RUnlock()

	return len(m.geo)
}

// Tags returns the sorted tag set of id, or nil if id is unknown.
func (m *Map) Tags(id string) []string {
	m.muLoc.RLock()
	set, ok := m.tags[id]
	if !ok {
		m.muLoc.RUnlock()
		return nil
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	m.muLoc.RUnlock()
	sort.Strings(out)

	return out
}

// HasTag reports whether location id carries tag.
// Unknown locations carry no tags.
// Complexity: O(1).
func (m *Map) HasTag(id, tag string) bool {
	m.muLoc.RLock()
	defer m.muLoc.RUnlock()
	_, ok := m.tags[id][tag]

	return ok
}

// GeoLocationOf returns the coordinates of id and whether id exists.
func (m *Map) GeoLocationOf(id string) (GeoLocation, bool) {
	m.muLoc.RLock()
	defer m.muLoc.RUnlock()
	g, ok := m.geo[id]

	return g, ok
}

// replaceTags swaps the tag set of id for tags, keeping the label tag.
// Used by grid constructors with custom tag layouts.
func (m *Map) replaceTags(id string, tags []string) {
	m.muLoc.Lock()
	defer m.muLoc.Unlock()
	set := make(map[string]struct{}, len(tags)+1)
	set[MakeTag(labelKey, id)] = struct{}{}
	for _, t := range tags {
		set[t] = struct{}{}
	}
	m.tags[id] = set
}
