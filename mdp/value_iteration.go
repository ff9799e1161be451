// SPDX-License-Identifier: MIT

package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ValueIteration computes the optimal values and a greedy policy of m.
// Sweeps stop once the sup-norm change of a sweep is below tolerance.
//
// Errors:
//   - ErrNilMDP if m is nil.
//   - ErrBadTolerance if tolerance is not a positive finite number.
//   - ErrBadDiscount if m.Discount() is outside [0,1].
//   - option errors (ErrNilLogger, ErrBadMaxIterations).
//   - ErrNotConverged if WithMaxIterations is set and exhausted.
//
// Complexity: O(k·T) for k sweeps over T listed transitions, plus the cost of
// one discovery pass.
func ValueIteration[S, A comparable](m MDP[S, A], tolerance float64, opts ...Option) (*Solution[S, A], error) {
	// 1) Validate inputs.
	if m == nil {
		return nil, ErrNilMDP
	}
	if !(tolerance > 0) || math.IsInf(tolerance, 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadTolerance, tolerance)
	}
	gamma := m.Discount()
	if !(gamma >= 0 && gamma <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadDiscount, gamma)
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Discover the state space and compile transitions to index form.
	sv := &solver[S, A]{gamma: gamma, opts: cfg}
	sv.compile(m)

	// 3) Sweep until the residual drops below tolerance.
	if err := sv.iterate(tolerance); err != nil {
		return nil, err
	}

	// 4) Greedy policy against the converged values.
	return sv.solution(), nil
}

// compiledAction is one live action with its outcomes as state indices.
type compiledAction[A comparable] struct {
	action A
	next   []int
	prob   []float64
	reward float64 // expected immediate reward Σ p·r
}

type solver[S, A comparable] struct {
	gamma      float64
	opts       Options
	states     []S
	index      map[S]int
	acts       [][]compiledAction[A] // per state; empty for terminal states
	v          []float64
	iterations int
	residuals  []float64
}

func (sv *solver[S, A]) compile(m MDP[S, A]) {
	sv.states = ReachableStates(m)
	sv.index = make(map[S]int, len(sv.states))
	for i, s := range sv.states {
		sv.index[s] = i
	}
	sv.acts = make([][]compiledAction[A], len(sv.states))
	for i, s := range sv.states {
		for _, a := range m.Actions(s) {
			ts := m.SuccAndProbReward(s, a)
			if len(ts) == 0 {
				continue // dead end
			}
			ca := compiledAction[A]{action: a, next: make([]int, len(ts)), prob: make([]float64, len(ts))}
			rewards := make([]float64, len(ts))
			for j, t := range ts {
				ca.next[j] = sv.index[t.State]
				ca.prob[j] = t.Prob
				rewards[j] = t.Reward
			}
			ca.reward = floats.Dot(ca.prob, rewards)
			sv.acts[i] = append(sv.acts[i], ca)
		}
	}
	sv.v = make([]float64, len(sv.states))
}

// q is the expected return of ca under the values v.
func (sv *solver[S, A]) q(ca compiledAction[A], v []float64) float64 {
	future := 0.0
	for j, n := range ca.next {
		future += ca.prob[j] * v[n]
	}

	return ca.reward + sv.gamma*future
}

func (sv *solver[S, A]) iterate(tolerance float64) error {
	next := make([]float64, len(sv.v))
	for {
		for i, acts := range sv.acts {
			if len(acts) == 0 {
				next[i] = 0
				continue
			}
			best := math.Inf(-1)
			for _, ca := range acts {
				best = math.Max(best, sv.q(ca, sv.v))
			}
			next[i] = best
		}

		residual := floats.Distance(next, sv.v, math.Inf(1))
		sv.v, next = next, sv.v
		sv.iterations++
		sv.residuals = append(sv.residuals, residual)
		sv.opts.Logger.Debug("sweep", "iteration", sv.iterations, "residual", residual)

		if residual < tolerance {
			sv.opts.Logger.Info("value iteration converged",
				"states", len(sv.states), "iterations", sv.iterations, "residual", residual)
			return nil
		}
		if sv.opts.MaxIterations > 0 && sv.iterations >= sv.opts.MaxIterations {
			return fmt.Errorf("%w: residual %g after %d iterations", ErrNotConverged, residual, sv.iterations)
		}
	}
}

func (sv *solver[S, A]) solution() *Solution[S, A] {
	sol := &Solution[S, A]{
		V:          make(map[S]float64, len(sv.states)),
		Pi:         make(map[S]A, len(sv.states)),
		States:     sv.states,
		Iterations: sv.iterations,
		Residuals:  sv.residuals,
	}
	for i, s := range sv.states {
		sol.V[s] = sv.v[i]
		acts := sv.acts[i]
		if len(acts) == 0 {
			continue
		}
		// first action wins ties
		bestA, bestQ := acts[0].action, sv.q(acts[0], sv.v)
		for _, ca := range acts[1:] {
			if q := sv.q(ca, sv.v); q > bestQ {
				bestA, bestQ = ca.action, q
			}
		}
		sol.Pi[s] = bestA
	}

	return sol
}
