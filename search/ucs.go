// SPDX-License-Identifier: MIT

package search

import (
	"container/heap"
	"log/slog"
	"slices"
)

// UniformCostSearch finds a minimum-cost action sequence from
// p.StartState() to any state satisfying p.IsEnd.
//
// Returns:
//
//   - *Result: Found reports success; on success PathCost, Actions and End
//     describe the optimal path. NumStatesExplored is always set.
//   - error: ErrNilProblem or an invalid option; never "no path".
//
// Preconditions:
//
//   - All successor costs are non-negative (not checked).
//
// Complexity:
//
//   - Time:  O((S + T) log T)
//   - Space: O(S + T)
func UniformCostSearch[M comparable](p Problem[M], opts ...Option) (*Result[M], error) {
	res, _, err := run(p, opts)

	return res, err
}

// run executes one search and also returns the state sequence of the found
// path, start first (nil when no path exists).
func run[M comparable](p Problem[M], opts []Option) (*Result[M], []State[M], error) {
	// 1) Validate inputs.
	if p == nil {
		return nil, nil, ErrNilProblem
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	// 2) Seed the frontier with the start state at cost 0.
	r := &runner[M]{
		p:        p,
		log:      cfg.Logger,
		pastCost: make(map[State[M]]float64),
		back:     make(map[State[M]]backpointer[M]),
		done:     make(map[State[M]]bool),
	}
	r.init()

	// 3) Expand until a goal pops or the frontier drains.
	res := r.process()
	r.log.Info("uniform cost search finished",
		slog.Bool("found", res.Found),
		slog.Float64("cost", res.PathCost),
		slog.Int("explored", res.NumStatesExplored))

	return res, r.path, nil
}

// backpointer records how a state was best reached.
type backpointer[M comparable] struct {
	action string
	prev   State[M]
}

// runner holds the mutable state of one search execution.
type runner[M comparable] struct {
	p        Problem[M]
	log      *slog.Logger
	pastCost map[State[M]]float64        // best known cost per discovered state
	back     map[State[M]]backpointer[M] // predecessor on the best known path
	done     map[State[M]]bool           // finalized states
	pq       frontier[M]
	seq      uint64 // insertion counter for FIFO tie-breaking
	explored int
	path     []State[M] // states of the found path, start first
}

func (r *runner[M]) init() {
	start := r.p.StartState()
	r.pastCost[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner[M]) push(s State[M], cost float64) {
	heap.Push(&r.pq, &frontierItem[M]{state: s, cost: cost, seq: r.seq})
	r.seq++
}

// process is the main loop. It returns as soon as a goal state is finalized.
func (r *runner[M]) process() *Result[M] {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(*frontierItem[M])
		s := item.state

		// 2) Skip stale entries: already finalized, or superseded by a
		//    cheaper push of the same state.
		if r.done[s] || item.cost > r.pastCost[s] {
			continue
		}

		// 3) Finalize s; its cost is now optimal.
		r.done[s] = true
		r.explored++
		r.log.Debug("expand", slog.String("location", s.Location), slog.Float64("cost", item.cost))

		// 4) Goal test on pop, not on push.
		if r.p.IsEnd(s) {
			return r.result(s, item.cost)
		}

		// 5) Relax successors.
		for _, succ := range r.p.SuccessorsAndCosts(s) {
			next := succ.State
			if r.done[next] {
				continue
			}
			newCost := item.cost + succ.Cost
			if old, seen := r.pastCost[next]; seen && newCost >= old {
				continue
			}
			r.pastCost[next] = newCost
			r.back[next] = backpointer[M]{action: succ.Action, prev: s}
			r.push(next, newCost)
		}
	}

	return &Result[M]{NumStatesExplored: r.explored}
}

// result rebuilds the action sequence by walking backpointers from end.
func (r *runner[M]) result(end State[M], cost float64) *Result[M] {
	start := r.p.StartState()
	var actions []string
	r.path = []State[M]{end}
	for s := end; s != start; {
		bp := r.back[s]
		actions = append(actions, bp.action)
		s = bp.prev
		r.path = append(r.path, s)
	}
	slices.Reverse(actions)
	slices.Reverse(r.path)
	if actions == nil {
		actions = []string{}
	}

	return &Result[M]{
		Found:             true,
		PathCost:          cost,
		Actions:           actions,
		End:               end,
		NumStatesExplored: r.explored,
	}
}

// frontierItem is one heap entry.
type frontierItem[M comparable] struct {
	state State[M]
	cost  float64
	seq   uint64
}

// frontier is a min-heap ordered by cost, then by insertion order.
type frontier[M comparable] []*frontierItem[M]

func (pq frontier[M]) Len() int { return len(pq) }

func (pq frontier[M]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier[M]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[M]) Push(x any) { *pq = append(*pq, x.(*frontierItem[M])) }

func (pq *frontier[M]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
