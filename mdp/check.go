// SPDX-License-Identifier: MIT

package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ProbTolerance is the slack CheckTransitions allows on a probability sum.
const ProbTolerance = 1e-9

// CheckTransitions verifies that, for every state in states and every action
// of it, the transition list is either empty or has non-negative
// probabilities summing to 1 within ProbTolerance.
// A nil states slice checks ReachableStates(m).
func CheckTransitions[S, A comparable](m MDP[S, A], states []S) error {
	if m == nil {
		return ErrNilMDP
	}
	if states == nil {
		states = ReachableStates(m)
	}
	for _, s := range states {
		for _, a := range m.Actions(s) {
			ts := m.SuccAndProbReward(s, a)
			if len(ts) == 0 {
				continue
			}
			probs := make([]float64, len(ts))
			for i, t := range ts {
				if t.Prob < 0 || math.IsNaN(t.Prob) {
					return fmt.Errorf("%w: state %v action %v: probability %v", ErrBadTransitions, s, a, t.Prob)
				}
				probs[i] = t.Prob
			}
			if sum := floats.Sum(probs); math.Abs(sum-1) > ProbTolerance {
				return fmt.Errorf("%w: state %v action %v: sum %v", ErrBadTransitions, s, a, sum)
			}
		}
	}

	return nil
}
