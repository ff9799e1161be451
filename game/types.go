// SPDX-License-Identifier: MIT

package game

import "errors"

// Players.
const (
	MaxPlayer = +1
	MinPlayer = -1
)

// Sentinel errors.
var (
	ErrNilGame       = errors.New("game: game is nil")
	ErrNoActions     = errors.New("game: non-end state has no actions")
	ErrBadPlayer     = errors.New("game: player must be +1 or -1")
	ErrNoPolicy      = errors.New("game: no policy for player")
	ErrIllegalAction = errors.New("game: policy chose an illegal action")
	ErrBadN          = errors.New("game: N must be at least 1")
)

// Game is a deterministic two-player zero-sum game.
type Game[S, A comparable] interface {
	StartState() S
	Actions(s S) []A
	Succ(s S, a A) S
	IsEnd(s S) bool
	// Utility is the payoff to MaxPlayer at an end state.
	Utility(s S) float64
	// Player is the player to move in s: MaxPlayer or MinPlayer.
	Player(s S) int
}

// Policy picks a move for the player to move in s.
type Policy[S, A comparable] func(g Game[S, A], s S) (A, error)

// Playout is the record of one finished game.
type Playout[S, A comparable] struct {
	Final   S       // end state reached
	Utility float64 // Utility(Final)
	Moves   []A     // actions played, in order
}
