// SPDX-License-Identifier: MIT

package routing

import (
	"github.com/katalvlaran/lvsearch/citymap"
	"github.com/katalvlaran/lvsearch/search"
)

// ShortestPathProblem finds the cheapest route from a start location to any
// location tagged endTag. States carry no memory.
type ShortestPathProblem struct {
	start  string
	endTag string
	m      *citymap.Map
}

// NewShortestPathProblem returns the problem over m. An unknown start or end
// tag simply yields a search with no path.
func NewShortestPathProblem(start, endTag string, m *citymap.Map) *ShortestPathProblem {
	return &ShortestPathProblem{start: start, endTag: endTag, m: m}
}

// StartState returns (start, ∅).
func (p *ShortestPathProblem) StartState() search.State[search.NoMemory] {
	return search.NewState[search.NoMemory](p.start)
}

// IsEnd reports whether the state's location carries the end tag.
func (p *ShortestPathProblem) IsEnd(s search.State[search.NoMemory]) bool {
	return p.m.HasTag(s.Location, p.endTag)
}

// SuccessorsAndCosts lists every neighbour with its connection distance.
func (p *ShortestPathProblem) SuccessorsAndCosts(s search.State[search.NoMemory]) []search.Successor[search.NoMemory] {
	nbs := p.m.Neighbors(s.Location)
	out := make([]search.Successor[search.NoMemory], 0, len(nbs))
	for _, nb := range nbs {
		out = append(out, search.Successor[search.NoMemory]{
			Action: nb.ID,
			State:  search.NewState[search.NoMemory](nb.ID),
			Cost:   nb.Distance,
		})
	}

	return out
}
