// SPDX-License-Identifier: MIT

package citymap

import (
	"fmt"
	"sort"
)

// MakeTag formats a "key=value" tag. Non-string values are rendered with fmt.
func MakeTag(key string, value any) string {
	return fmt.Sprintf("%s=%v", key, value)
}

// LocationsWithTag returns every location carrying tag, sorted ascending.
// Complexity: O(V + k log k) for k matches.
func (m *Map) LocationsWithTag(tag string) []string {
	m.muLoc.RLock()
	var out []string
	for id, set := range m.tags {
		if _, ok := set[tag]; ok {
			out = append(out, id)
		}
	}
	m.muLoc.RUnlock()
	sort.Strings(out)

	return out
}

// LocationFromTag returns a location carrying tag. When several match, the
// smallest ID wins so repeated calls agree. ok is false if none match.
func (m *Map) LocationFromTag(tag string) (string, bool) {
	ids := m.LocationsWithTag(tag)
	if len(ids) == 0 {
		return "", false
	}

	return ids[0], true
}
