// SPDX-License-Identifier: MIT

package game

import "fmt"

type outcome[A comparable] struct {
	value  float64
	action A
}

// Minimax returns the value of s under optimal play by both sides and the
// move achieving it. At an end state the value is Utility(s) and action is
// the zero A. Ties go to the first action in Actions order.
//
// Complexity: O(|reachable states| · branching), subgames are memoized.
func Minimax[S, A comparable](g Game[S, A], s S) (float64, A, error) {
	if g == nil {
		var zero A
		return 0, zero, ErrNilGame
	}
	o, err := (&solver[S, A]{g: g, memo: map[S]outcome[A]{}}).recurse(s)

	return o.value, o.action, err
}

// MinimaxPolicy returns a Policy playing minimax moves. The policy keeps its
// memo across calls, so it must only be used with one game value.
func MinimaxPolicy[S, A comparable]() Policy[S, A] {
	var sv *solver[S, A]

	return func(g Game[S, A], s S) (A, error) {
		if g == nil {
			var zero A
			return zero, ErrNilGame
		}
		if sv == nil {
			sv = &solver[S, A]{g: g, memo: map[S]outcome[A]{}}
		}
		o, err := sv.recurse(s)

		return o.action, err
	}
}

type solver[S, A comparable] struct {
	g    Game[S, A]
	memo map[S]outcome[A]
}

func (sv *solver[S, A]) recurse(s S) (outcome[A], error) {
	if o, ok := sv.memo[s]; ok {
		return o, nil
	}
	if sv.g.IsEnd(s) {
		o := outcome[A]{value: sv.g.Utility(s)}
		sv.memo[s] = o
		return o, nil
	}

	player := sv.g.Player(s)
	if player != MaxPlayer && player != MinPlayer {
		return outcome[A]{}, fmt.Errorf("%w: got %d in %v", ErrBadPlayer, player, s)
	}
	actions := sv.g.Actions(s)
	if len(actions) == 0 {
		return outcome[A]{}, fmt.Errorf("%w: %v", ErrNoActions, s)
	}

	var best outcome[A]
	for i, a := range actions {
		child, err := sv.recurse(sv.g.Succ(s, a))
		if err != nil {
			return outcome[A]{}, err
		}
		better := child.value > best.value
		if player == MinPlayer {
			better = child.value < best.value
		}
		if i == 0 || better {
			best = outcome[A]{value: child.value, action: a}
		}
	}
	sv.memo[s] = best

	return best, nil
}
