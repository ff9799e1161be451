// SPDX-License-Identifier: MIT

package mdp_test

import "github.com/katalvlaran/lvsearch/mdp"

type key struct{ state, action string }

// tableMDP is a model spelled out as explicit tables.
type tableMDP struct {
	start   string
	gamma   float64
	actions map[string][]string
	trans   map[key][]mdp.Transition[string]
}

func newTable(start string, gamma float64) *tableMDP {
	return &tableMDP{start: start, gamma: gamma, actions: map[string][]string{}, trans: map[key][]mdp.Transition[string]{}}
}

// on registers action a in state s with the given outcomes.
func (t *tableMDP) on(s, a string, ts ...mdp.Transition[string]) *tableMDP {
	t.actions[s] = append(t.actions[s], a)
	t.trans[key{s, a}] = ts

	return t
}

func (t *tableMDP) StartState() string        { return t.start }
func (t *tableMDP) Actions(s string) []string { return t.actions[s] }
func (t *tableMDP) Discount() float64         { return t.gamma }
func (t *tableMDP) SuccAndProbReward(s, a string) []mdp.Transition[string] {
	return t.trans[key{s, a}]
}

func to(s string, p, r float64) mdp.Transition[string] {
	return mdp.Transition[string]{State: s, Prob: p, Reward: r}
}

// chainMDP walks 0 → 1 → … → n collecting reward 1 per step.
type chainMDP struct{ n int }

func (c chainMDP) StartState() int        { return 0 }
func (c chainMDP) Actions(s int) []string { return []string{"step"} }
func (c chainMDP) Discount() float64      { return 1 }
func (c chainMDP) SuccAndProbReward(s int, _ string) []mdp.Transition[int] {
	if s >= c.n {
		return nil
	}

	return []mdp.Transition[int]{{State: s + 1, Prob: 1, Reward: 1}}
}
