// SPDX-License-Identifier: MIT

package mdp

// AddNoise wraps m so that each transition probability is mixed halfway
// toward uniform over the listed outcomes: p' = 0.5·p + 0.5/n.
// States, actions, rewards and discount are unchanged, so the wrapped model
// still sums to 1 wherever m does.
func AddNoise[S, A comparable](m MDP[S, A]) MDP[S, A] {
	return &noisy[S, A]{MDP: m}
}

type noisy[S, A comparable] struct {
	MDP[S, A]
}

func (n *noisy[S, A]) SuccAndProbReward(s S, a A) []Transition[S] {
	ts := n.MDP.SuccAndProbReward(s, a)
	if len(ts) == 0 {
		return ts
	}
	uniform := 1 / float64(len(ts))
	out := make([]Transition[S], len(ts))
	for i, t := range ts {
		t.Prob = 0.5*t.Prob + 0.5*uniform
		out[i] = t
	}

	return out
}
