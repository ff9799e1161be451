// SPDX-License-Identifier: MIT

package game

import "fmt"

// Halving moves.
const (
	Decrement = "-"
	Halve     = "/"
)

// HalvingState is the player to move and the current number.
type HalvingState struct {
	Player int
	Number int
}

// String formats s as "(player, number)".
func (s HalvingState) String() string { return fmt.Sprintf("(%+d, %d)", s.Player, s.Number) }

// HalvingGame starts at N with MaxPlayer to move. Decrement is always legal,
// Halve only on even numbers; reaching 1 ends the game and the player who
// made the last move wins.
type HalvingGame struct {
	N int
}

// NewHalvingGame returns the game starting at n.
func NewHalvingGame(n int) (*HalvingGame, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadN, n)
	}

	return &HalvingGame{N: n}, nil
}

func (h *HalvingGame) StartState() HalvingState {
	return HalvingState{Player: MaxPlayer, Number: h.N}
}

func (h *HalvingGame) Actions(s HalvingState) []string {
	if s.Number%2 == 0 {
		return []string{Decrement, Halve}
	}

	return []string{Decrement}
}

func (h *HalvingGame) Succ(s HalvingState, a string) HalvingState {
	next := s.Number - 1
	if a == Halve {
		next = s.Number / 2
	}

	return HalvingState{Player: -s.Player, Number: next}
}

func (h *HalvingGame) IsEnd(s HalvingState) bool { return s.Number <= 1 }

// Utility is -Player: the player to move at the end has lost.
func (h *HalvingGame) Utility(s HalvingState) float64 { return float64(-s.Player) }

func (h *HalvingGame) Player(s HalvingState) int { return s.Player }
