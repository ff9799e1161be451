// SPDX-License-Identifier: MIT

// Package lvsearch is a toolkit for best-first search over city maps and for
// solving small Markov decision processes and two-player games.
//
// 🚀 What is inside?
//
//	• citymap/    : locations, tags, geolocations and weighted connections;
//	                grid fixtures; YAML map documents; path checker
//	• search/     : generic uniform-cost search engine and the A* reduction
//	• routing/    : shortest-path and waypoint problems, geo heuristics,
//	                JSON path export
//	• converters/ : export of a citymap to gonum graphs
//	• mdp/        : value iteration, reachable-state discovery, noise,
//	                transition checks
//	• mdp/blackjack, mdp/counterexample: reference MDPs
//	• game/       : minimax, game playouts and the halving game
//	• config/     : YAML configuration of the lvsearch command
//	• cmd/lvsearch: command-line front end
//
// ✨ Guarantees
//
//   - Search is exact for non-negative costs; A* is exact for consistent
//     heuristics with h(goal) = 0.
//   - Engines are pure functions of their input: no globals, silent unless a
//     logger is supplied.
//   - Output is deterministic: neighbours, states and ties follow a fixed order.
//
// Quick example (3×5 grid, corner to cell 2,2):
//
//	m, _ := citymap.NewGridMap(3, 5)
//	p := routing.NewShortestPathProblem("0,0", "label=2,2", m)
//	res, _ := search.UniformCostSearch[search.NoMemory](p)
//	// res.PathCost == 4
package lvsearch
