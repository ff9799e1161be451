// SPDX-License-Identifier: MIT

package search

import "math"

// AStarReduction returns a Problem with the start state and goal test of p
// whose transition costs are shifted by h:
//
//	c'(s, s') = c(s, s') + h(s') − h(s)
//
// Along any path the shifts telescope to h(end) − h(start), so with
// h(goal) = 0 every path's reduced cost is its true cost minus the constant
// h(start), and uniform-cost search on the result expands states in A*
// order f = g + h. A consistent h keeps every c' non-negative, which is the
// engine's own precondition; neither property is checked here.
func AStarReduction[M comparable](p Problem[M], h Heuristic[M]) Problem[M] {
	return &aStarProblem[M]{base: p, h: h}
}

type aStarProblem[M comparable] struct {
	base Problem[M]
	h    Heuristic[M]
}

func (a *aStarProblem[M]) StartState() State[M] { return a.base.StartState() }

func (a *aStarProblem[M]) IsEnd(s State[M]) bool { return a.base.IsEnd(s) }

func (a *aStarProblem[M]) SuccessorsAndCosts(s State[M]) []Successor[M] {
	succs := a.base.SuccessorsAndCosts(s)
	hs := a.h.Evaluate(s)
	out := make([]Successor[M], len(succs))
	for i, succ := range succs {
		succ.Cost = succ.Cost + a.h.Evaluate(succ.State) - hs
		out[i] = succ
	}

	return out
}

// AStar runs uniform-cost search on AStarReduction(p, h) and reports the
// path cost in the units of p. The cost is re-summed from p's own transition
// costs along the found path, so it equals the exact sum of those costs.
func AStar[M comparable](p Problem[M], h Heuristic[M], opts ...Option) (*Result[M], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	res, path, err := run(AStarReduction(p, h), opts)
	if err != nil {
		return nil, err
	}
	if res.Found {
		res.PathCost = replayCost(p, path, res.Actions)
	}

	return res, nil
}

// replayCost sums the costs p assigns to the transitions of path, taking
// step i as the successor of path[i] labelled actions[i] that reaches
// path[i+1]. Among duplicate transitions the cheapest counts, which is the
// one uniform-cost search can have kept.
func replayCost[M comparable](p Problem[M], path []State[M], actions []string) float64 {
	total := 0.0
	for i, a := range actions {
		step := math.Inf(1)
		for _, succ := range p.SuccessorsAndCosts(path[i]) {
			if succ.Action == a && succ.State == path[i+1] {
				step = math.Min(step, succ.Cost)
			}
		}
		total += step
	}

	return total
}
