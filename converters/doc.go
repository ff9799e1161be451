// SPDX-License-Identifier: MIT

// Package converters exports a citymap.Map into gonum's graph model.
//
// Locations become simple.Node values numbered in sorted-ID order, and every
// directed connection becomes a weighted edge. The export lets callers run
// gonum's own traversal and shortest-path algorithms against the same data
// the routing problems search over:
//
//	ex, err := converters.ToGonum(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	shortest := path.DijkstraFrom(ex.Node("0,0"), ex.Graph)
//	_, cost := shortest.To(ex.ID("2,2"))
package converters
