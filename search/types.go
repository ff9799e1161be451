// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilProblem indicates a nil Problem was passed to the engine.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to AStar.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrNilLogger indicates WithLogger received a nil logger.
	ErrNilLogger = errors.New("search: logger is nil")
)

// NoMemory is the memory payload of problems that only track location.
type NoMemory struct{}

// State is an immutable search state: a location plus problem-specific
// memory. M must be comparable so that State can key maps.
type State[M comparable] struct {
	Location string
	Memory   M
}

// NewState returns a State with the zero memory value.
func NewState[M comparable](location string) State[M] {
	return State[M]{Location: location}
}

// Successor is one outgoing transition of a state.
type Successor[M comparable] struct {
	Action string   // label recorded in Result.Actions
	State  State[M] // state reached by Action
	Cost   float64  // non-negative transition cost
}

// Problem is the contract every search problem satisfies.
type Problem[M comparable] interface {
	// StartState returns the initial state.
	StartState() State[M]
	// IsEnd reports whether s is a goal state.
	IsEnd(s State[M]) bool
	// SuccessorsAndCosts lists the transitions out of s.
	SuccessorsAndCosts(s State[M]) []Successor[M]
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// Evaluate must return a non-negative lower bound.
type Heuristic[M comparable] interface {
	Evaluate(s State[M]) float64
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc[M comparable] func(State[M]) float64

// Evaluate calls f(s).
func (f HeuristicFunc[M]) Evaluate(s State[M]) float64 { return f(s) }

// Result is the outcome of a search.
//
// When Found is false, PathCost is zero and Actions and End are zero values.
type Result[M comparable] struct {
	Found             bool     // a goal state was reached
	PathCost          float64  // total cost of Actions
	Actions           []string // actions from the start state to End, in order
	End               State[M] // goal state reached
	NumStatesExplored int      // states finalized before stopping
}

// Options configures the search engine.
type Options struct {
	// Logger receives Debug records per expansion and an Info summary.
	Logger *slog.Logger

	err error // first invalid option, surfaced by the engine
}

// Option is a functional option for the search engine.
type Option func(*Options)

// WithLogger routes engine logs to l. A nil l is reported as ErrNilLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.setErr(ErrNilLogger)
			return
		}
		o.Logger = l
	}
}

// DefaultOptions returns Options that log nowhere.
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
