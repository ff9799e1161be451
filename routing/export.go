// SPDX-License-Identifier: MIT

package routing

import (
	"encoding/json"
	"fmt"
	"io"
)

// PathDocument is the visualization dump of a route.
type PathDocument struct {
	WaypointTags []string `json:"waypointTags"`
	Path         []string `json:"path"`
}

// ExtractPath prepends start to the action sequence of a routing result,
// yielding the full list of visited locations.
func ExtractPath(start string, actions []string) []string {
	path := make([]string, 0, len(actions)+1)
	path = append(path, start)

	return append(path, actions...)
}

// WritePathJSON writes doc as indented JSON. Nil slices are written as [].
func WritePathJSON(w io.Writer, doc PathDocument) error {
	if doc.WaypointTags == nil {
		doc.WaypointTags = []string{}
	}
	if doc.Path == nil {
		doc.Path = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("routing: encode path document: %w", err)
	}

	return nil
}
