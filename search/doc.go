// SPDX-License-Identifier: MIT

// Package search provides a generic best-first search framework: the
// State/Problem/Heuristic contracts, a uniform-cost search engine, and the
// reduction that turns A* into uniform-cost search on a re-weighted problem.
//
// Overview:
//
//   - A State pairs a location with a typed memory payload M. Two states at
//     the same location but with different memory are different states; both
//     fields take part in the equality used for deduplication. Memory must be
//     derivable from the path taken so far.
//   - A Problem supplies the start state, the goal test, and successor
//     generation as (action, successor, cost) triples.
//   - UniformCostSearch finds a minimum-cost action sequence from the start
//     state to any goal state, or reports that none exists.
//   - AStarReduction wraps a Problem and a Heuristic into a new Problem
//     whose uniform-cost search is A* on the original.
//
// Algorithm:
//
//   - Dijkstra-style expansion with a min-heap frontier keyed by accumulated
//     path cost, using the lazy decrease-key strategy: improved entries are
//     pushed again and stale entries are skipped on pop.
//   - A state is finalized when popped with the minimum key; it is never
//     expanded or re-inserted afterwards.
//   - Each improvement records the predecessor state and the action, so the
//     path is rebuilt by walking back from the goal.
//   - The search stops the moment a popped state passes the goal test.
//   - Equal keys pop in insertion order, so results are reproducible when a
//     Problem lists its successors in a stable order.
//
// Preconditions (documented, not detected):
//
//   - Every successor cost must be non-negative. Negative costs do not raise
//     an error; they make the returned cost and path unreliable.
//   - AStarReduction requires a consistent heuristic (h(s) ≤ c(s,s') + h(s')
//     for every edge) with h(goal) = 0 for every goal state. Otherwise the
//     reduced costs may go negative and the path may be suboptimal.
//
// Results:
//
//   - "No path" is an ordinary result (Result.Found == false), never an error.
//   - Errors are reserved for a nil Problem or Heuristic and invalid options.
//
// Complexity:
//
//   - Time:  O((S + T) log T) for S reachable states and T generated
//     successors; each state is finalized once, each successor may push once.
//   - Space: O(S + T) for cost/backpointer maps and the lazy heap.
//
// Example:
//
//	res, err := search.UniformCostSearch[search.NoMemory](problem)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	}
//	fmt.Println(res.PathCost, res.Actions)
package search
