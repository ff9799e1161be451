// SPDX-License-Identifier: MIT

// Package counterexample provides a five-state MDP whose optimal start value
// rises when transitions are made noisier with mdp.AddNoise.
//
// From state 0, action B pays 1 for certain; action A almost always leads to
// a worthless state and rarely to a state worth 10. Without noise B is best
// (V(0) = 1 against 0.9 for A). Noise pushes A's rare jackpot toward 50%,
// lifting V(0) to 2.7, so "noise never helps" does not hold.
//
//	state 0: A → 1 (p=0.9) | 2 (p=0.1), reward 0
//	         B → 3 (p=1), reward 1
//	state 1: → 4, reward 0
//	state 2: → 4, reward 10
//	state 3: → 4, reward 0
//	state 4: terminal
package counterexample

import "github.com/katalvlaran/lvsearch/mdp"

// Action names.
const (
	A = "A"
	B = "B"
)

// Discount is γ of the model.
const Discount = 0.9

// Terminal is the absorbing end state.
const Terminal = 4

// MDP is the counterexample model. The zero value is ready to use.
type MDP struct{}

// New returns the model.
func New() MDP { return MDP{} }

// StartState returns 0.
func (MDP) StartState() int { return 0 }

// Actions returns A and B for every non-terminal state.
func (MDP) Actions(s int) []string {
	if s == Terminal {
		return nil
	}

	return []string{A, B}
}

// SuccAndProbReward lists the outcomes of a in s.
func (MDP) SuccAndProbReward(s int, a string) []mdp.Transition[int] {
	switch s {
	case 0:
		if a == A {
			return []mdp.Transition[int]{{State: 1, Prob: 0.9}, {State: 2, Prob: 0.1}}
		}
		return []mdp.Transition[int]{{State: 3, Prob: 1, Reward: 1}}
	case 1, 3:
		return []mdp.Transition[int]{{State: Terminal, Prob: 1}}
	case 2:
		return []mdp.Transition[int]{{State: Terminal, Prob: 1, Reward: 10}}
	default:
		return nil
	}
}

// Discount returns 0.9.
func (MDP) Discount() float64 { return Discount }
