// SPDX-License-Identifier: MIT

// Package routing models route planning over a citymap.Map as search
// problems for package search.
//
//   - ShortestPathProblem: reach any location carrying an end tag.
//   - WaypointsShortestPathProblem: reach an end-tagged location after
//     covering every waypoint tag at least once, in any order.
//   - StraightLineHeuristic, NorthSouthHeuristic, ZeroHeuristic: admissible
//     estimates for use with search.AStar / search.AStarReduction.
//
// Actions are the IDs of the next location, so a route is recovered with
// ExtractPath(start, result.Actions).
//
// Waypoint memory is a Coverage bitmask over the canonical (sorted,
// de-duplicated) waypoint list. It only grows along a path, and the state
// space is bounded by |locations| × 2^|waypoints|.
package routing
