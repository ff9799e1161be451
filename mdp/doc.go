// SPDX-License-Identifier: MIT

// Package mdp solves finite Markov decision processes by value iteration.
//
// An MDP is described by the MDP interface: a start state, the legal actions
// of each state, a transition model returning (next state, probability,
// reward) triples, and a discount factor γ ∈ [0,1].
//
// ValueIteration works in three steps:
//
//  1. Discover the state space by following every transition reachable from
//     StartState (ReachableStates).
//  2. Apply synchronous Bellman backups
//     V'(s) = max_a Σ p·(r + γ·V(s'))
//     until the largest per-state change of a sweep drops below the
//     tolerance.
//  3. Derive the greedy policy against the converged values.
//
// Terminal states (no action with a non-empty transition list) keep value 0.
// An action whose transition list is empty is a dead end and takes no part in
// the max.
//
// Preconditions that are documented, not detected:
//   - the reachable state space is finite;
//   - γ = 1 is only used with episodic (acyclic) models; otherwise iteration
//     may not terminate unless WithMaxIterations bounds it.
//
// AddNoise wraps a model with transitions mixed toward uniform, and
// CheckTransitions validates that every non-empty list sums to 1.
package mdp
