// SPDX-License-Identifier: MIT

package mdp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors returned by the solver and validators.
var (
	// ErrNilMDP indicates a nil model was passed.
	ErrNilMDP = errors.New("mdp: model is nil")

	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("mdp: tolerance must be positive")

	// ErrBadDiscount indicates a discount factor outside [0,1].
	ErrBadDiscount = errors.New("mdp: discount must be in [0,1]")

	// ErrBadMaxIterations indicates WithMaxIterations received n < 1.
	ErrBadMaxIterations = errors.New("mdp: max iterations must be at least 1")

	// ErrNilLogger indicates WithLogger received a nil logger.
	ErrNilLogger = errors.New("mdp: logger is nil")

	// ErrNotConverged indicates the iteration cap was hit before convergence.
	ErrNotConverged = errors.New("mdp: value iteration did not converge")

	// ErrBadTransitions indicates a transition list with invalid probabilities.
	ErrBadTransitions = errors.New("mdp: invalid transition probabilities")
)

// Transition is one outcome of taking an action.
type Transition[S comparable] struct {
	State  S       // next state
	Prob   float64 // probability of this outcome
	Reward float64 // reward collected on the way
}

// MDP is the contract a model satisfies to be solved.
type MDP[S, A comparable] interface {
	// StartState returns the initial state.
	StartState() S
	// Actions lists the actions available in s.
	Actions(s S) []A
	// SuccAndProbReward lists the outcomes of taking a in s. An empty list
	// marks a dead end (or, for every action, a terminal state).
	SuccAndProbReward(s S, a A) []Transition[S]
	// Discount returns γ.
	Discount() float64
}

// Solution is the output of ValueIteration.
type Solution[S, A comparable] struct {
	V          map[S]float64 // optimal value of every reachable state
	Pi         map[S]A       // greedy action for every non-terminal state
	States     []S           // reachable states in discovery order
	Iterations int           // Bellman sweeps performed
	Residuals  []float64     // sup-norm value change of each sweep
}

// Options configures ValueIteration.
type Options struct {
	// Logger receives Debug records per sweep and an Info summary.
	Logger *slog.Logger

	// MaxIterations caps the number of sweeps; 0 means unbounded.
	MaxIterations int

	err error
}

// Option is a functional option for ValueIteration.
type Option func(*Options)

// WithLogger routes solver logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.setErr(ErrNilLogger)
			return
		}
		o.Logger = l
	}
}

// WithMaxIterations stops the solver with ErrNotConverged after n sweeps.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: %d", ErrBadMaxIterations, n))
			return
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns unbounded iteration with a discard logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

func resolveOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
