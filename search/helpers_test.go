// SPDX-License-Identifier: MIT

package search_test

import (
	"sort"

	"github.com/katalvlaran/lvsearch/search"
)

// edge is one directed weighted arc of a test graph.
type edge struct {
	to   string
	cost float64
}

// graphProblem is a plain location-only problem over an explicit arc list.
// Successors are listed in insertion order.
type graphProblem struct {
	start string
	goals map[string]bool
	arcs  map[string][]edge
}

func newGraphProblem(start string, goals ...string) *graphProblem {
	g := &graphProblem{start: start, goals: map[string]bool{}, arcs: map[string][]edge{}}
	for _, goal := range goals {
		g.goals[goal] = true
	}

	return g
}

// link adds u→v and v→u with the same cost.
func (g *graphProblem) link(u, v string, cost float64) *graphProblem {
	g.arcs[u] = append(g.arcs[u], edge{v, cost})
	g.arcs[v] = append(g.arcs[v], edge{u, cost})

	return g
}

// arc adds u→v only.
func (g *graphProblem) arc(u, v string, cost float64) *graphProblem {
	g.arcs[u] = append(g.arcs[u], edge{v, cost})

	return g
}

func (g *graphProblem) StartState() search.State[search.NoMemory] {
	return search.NewState[search.NoMemory](g.start)
}

func (g *graphProblem) IsEnd(s search.State[search.NoMemory]) bool { return g.goals[s.Location] }

func (g *graphProblem) SuccessorsAndCosts(s search.State[search.NoMemory]) []search.Successor[search.NoMemory] {
	var out []search.Successor[search.NoMemory]
	for _, e := range g.arcs[s.Location] {
		out = append(out, search.Successor[search.NoMemory]{
			Action: e.to,
			State:  search.NewState[search.NoMemory](e.to),
			Cost:   e.cost,
		})
	}

	return out
}

// nodes returns every location mentioned by the graph, sorted.
func (g *graphProblem) nodes() []string {
	set := map[string]bool{g.start: true}
	for u, es := range g.arcs {
		set[u] = true
		for _, e := range es {
			set[e.to] = true
		}
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// distancesTo computes exact remaining cost to the nearest goal for every
// node by Bellman-Ford style relaxation over reversed arcs.
func (g *graphProblem) distancesTo() map[string]float64 {
	const inf = 1e18
	dist := map[string]float64{}
	for _, n := range g.nodes() {
		dist[n] = inf
		if g.goals[n] {
			dist[n] = 0
		}
	}
	for changed := true; changed; {
		changed = false
		for u, es := range g.arcs {
			for _, e := range es {
				if d := e.cost + dist[e.to]; d < dist[u] {
					dist[u] = d
					changed = true
				}
			}
		}
	}

	return dist
}

// pathCost sums the cost of following actions from start, taking the
// cheapest arc for each hop.
func (g *graphProblem) pathCost(actions []string) float64 {
	total, at := 0.0, g.start
	for _, next := range actions {
		best := -1.0
		for _, e := range g.arcs[at] {
			if e.to == next && (best < 0 || e.cost < best) {
				best = e.cost
			}
		}
		if best < 0 {
			return -1
		}
		total += best
		at = next
	}

	return total
}
