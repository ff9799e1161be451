// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Play runs g from its start state until an end state, asking
// policies[Player(s)] for every move.
//
// Errors:
//   - ErrNilGame if g is nil.
//   - ErrNoPolicy if the player to move has no policy.
//   - ErrNoActions if a non-end state offers no moves.
//   - ErrIllegalAction if a policy returns a move not in Actions.
//   - any error returned by a policy.
func Play[S, A comparable](g Game[S, A], policies map[int]Policy[S, A]) (*Playout[S, A], error) {
	if g == nil {
		return nil, ErrNilGame
	}
	var moves []A
	state := g.StartState()
	for !g.IsEnd(state) {
		// 1) Who controls this state?
		player := g.Player(state)
		policy, ok := policies[player]
		if !ok || policy == nil {
			return nil, fmt.Errorf("%w: %d", ErrNoPolicy, player)
		}
		legal := g.Actions(state)
		if len(legal) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrNoActions, state)
		}

		// 2) Ask the policy and check the move.
		a, err := policy(g, state)
		if err != nil {
			return nil, fmt.Errorf("game: policy for player %d at %v: %w", player, state, err)
		}
		if !slices.Contains(legal, a) {
			return nil, fmt.Errorf("%w: %v at %v", ErrIllegalAction, a, state)
		}

		// 3) Advance.
		moves = append(moves, a)
		state = g.Succ(state, a)
	}

	return &Playout[S, A]{Final: state, Utility: g.Utility(state), Moves: moves}, nil
}

// FirstActionPolicy always plays the first legal action.
func FirstActionPolicy[S, A comparable](g Game[S, A], s S) (A, error) {
	legal := g.Actions(s)
	if len(legal) == 0 {
		var zero A
		return zero, fmt.Errorf("%w: %v", ErrNoActions, s)
	}

	return legal[0], nil
}

// RandomPolicy plays a uniformly random legal action drawn from rng.
func RandomPolicy[S, A comparable](rng *rand.Rand) Policy[S, A] {
	return func(g Game[S, A], s S) (A, error) {
		legal := g.Actions(s)
		if len(legal) == 0 {
			var zero A
			return zero, fmt.Errorf("%w: %v", ErrNoActions, s)
		}

		return legal[rng.IntN(len(legal))], nil
	}
}
