// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvsearch/citymap"
)

// ErrNilMap is returned when ToGonum receives a nil map.
var ErrNilMap = errors.New("converters: map is nil")

// Export is a gonum view of a citymap.Map.
type Export struct {
	// Graph holds one node per location and one weighted edge per connection.
	Graph *simple.WeightedDirectedGraph

	ids   map[string]int64
	names []string
}

// ToGonum converts m. Node IDs follow the sorted order of m.Locations().
// Self-connections are skipped because simple graphs cannot hold them.
// Complexity: O(V log V + E).
func ToGonum(m *citymap.Map) (*Export, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	// 1) Number locations deterministically.
	names := m.Locations()
	ex := &Export{
		Graph: simple.NewWeightedDirectedGraph(0, math.Inf(1)),
		ids:   make(map[string]int64, len(names)),
		names: names,
	}
	for i, name := range names {
		ex.ids[name] = int64(i)
		ex.Graph.AddNode(simple.Node(i))
	}

	// 2) Copy every directed connection.
	for _, from := range names {
		for _, nb := range m.Neighbors(from) {
			if nb.ID == from {
				continue
			}
			to, ok := ex.ids[nb.ID]
			if !ok {
				return nil, fmt.Errorf("converters: %w: %q", citymap.ErrLocationNotFound, nb.ID)
			}
			ex.Graph.SetWeightedEdge(ex.Graph.NewWeightedEdge(simple.Node(ex.ids[from]), simple.Node(to), nb.Distance))
		}
	}

	return ex, nil
}

// ID returns the gonum node ID of location name, or -1 if unknown.
func (ex *Export) ID(name string) int64 {
	id, ok := ex.ids[name]
	if !ok {
		return -1
	}

	return id
}

// Node returns the gonum node for location name, or nil if unknown.
func (ex *Export) Node(name string) graph.Node {
	id, ok := ex.ids[name]
	if !ok {
		return nil
	}

	return ex.Graph.Node(id)
}

// Name returns the location ID of gonum node id, or "" if out of range.
func (ex *Export) Name(id int64) string {
	if id < 0 || id >= int64(len(ex.names)) {
		return ""
	}

	return ex.names[id]
}

// Names maps a gonum node path back to location IDs.
func (ex *Export) Names(nodes []graph.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = ex.Name(n.ID())
	}

	return out
}
