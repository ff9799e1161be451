// SPDX-License-Identifier: MIT

package blackjack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/mdp"
)

// Action is a player move.
type Action string

// Player moves, in the order Actions lists them.
const (
	Take Action = "Take"
	Peek Action = "Peek"
	Quit Action = "Quit"
)

// Sentinel errors returned by NewMDP.
var (
	ErrNoCards         = errors.New("blackjack: card values are empty")
	ErrTooManyCards    = errors.New("blackjack: too many card values")
	ErrBadCardValue    = errors.New("blackjack: card values must be positive")
	ErrBadMultiplicity = errors.New("blackjack: multiplicity out of range")
	ErrBadThreshold    = errors.New("blackjack: threshold must be non-negative")
	ErrBadPeekCost     = errors.New("blackjack: peek cost must be non-negative")
)

// Params describes a game.
type Params struct {
	CardValues   []int `yaml:"card_values"`  // value of each card index
	Multiplicity int   `yaml:"multiplicity"` // copies of each card in the deck
	Threshold    int   `yaml:"threshold"`    // a total above this busts
	PeekCost     int   `yaml:"peek_cost"`    // price of a Peek
}

// Validate checks p.
func (p Params) Validate() error {
	if len(p.CardValues) == 0 {
		return ErrNoCards
	}
	if len(p.CardValues) > MaxCardKinds {
		return fmt.Errorf("%w: %d > %d", ErrTooManyCards, len(p.CardValues), MaxCardKinds)
	}
	for i, v := range p.CardValues {
		if v <= 0 {
			return fmt.Errorf("%w: cardValues[%d]=%d", ErrBadCardValue, i, v)
		}
	}
	if p.Multiplicity < 1 || p.Multiplicity > MaxMultiplicity {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrBadMultiplicity, p.Multiplicity, MaxMultiplicity)
	}
	if p.Threshold < 0 {
		return fmt.Errorf("%w: %d", ErrBadThreshold, p.Threshold)
	}
	if p.PeekCost < 0 {
		return fmt.Errorf("%w: %d", ErrBadPeekCost, p.PeekCost)
	}

	return nil
}

// MDP is the card game. It implements mdp.MDP[State, Action].
type MDP struct {
	p Params
}

// NewMDP validates p and returns the game.
func NewMDP(p Params) (*MDP, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.CardValues = append([]int(nil), p.CardValues...)

	return &MDP{p: p}, nil
}

// PeekingMDP returns a game whose optimal policy peeks in at least a tenth
// of the non-terminal states: a single high card makes knowing the next
// draw worth its price.
func PeekingMDP() *MDP {
	m, _ := NewMDP(Params{CardValues: []int{2, 3, 4, 5, 19}, Multiplicity: 2, Threshold: 20, PeekCost: 1})

	return m
}

// Params returns a copy of the game parameters.
func (m *MDP) Params() Params {
	p := m.p
	p.CardValues = append([]int(nil), p.CardValues...)

	return p
}

// StartState is an empty hand, nothing peeked, the full deck.
func (m *MDP) StartState() State {
	counts := make([]int, len(m.p.CardValues))
	for i := range counts {
		counts[i] = m.p.Multiplicity
	}

	return State{Total: 0, Peeked: NoPeek, Deck: NewDeck(counts...)}
}

// Actions always returns Take, Peek and Quit; illegal ones have no outcomes.
func (m *MDP) Actions(State) []Action {
	return []Action{Take, Peek, Quit}
}

// Discount is 1: the game is episodic.
func (m *MDP) Discount() float64 { return 1 }

// SuccAndProbReward lists the outcomes of a in s.
func (m *MDP) SuccAndProbReward(s State, a Action) []mdp.Transition[State] {
	if s.IsTerminal() {
		return nil
	}
	switch a {
	case Quit:
		return []mdp.Transition[State]{{State: terminal(s.Total), Prob: 1, Reward: float64(s.Total)}}
	case Peek:
		return m.peek(s)
	case Take:
		return m.take(s)
	default:
		return nil
	}
}

func (m *MDP) peek(s State) []mdp.Transition[State] {
	if s.Peeked != NoPeek {
		return nil
	}
	size := float64(s.Deck.Size())
	var out []mdp.Transition[State]
	for i := 0; i < s.Deck.Len(); i++ {
		c := s.Deck.Count(i)
		if c == 0 {
			continue
		}
		out = append(out, mdp.Transition[State]{
			State:  State{Total: s.Total, Peeked: i, Deck: s.Deck},
			Prob:   float64(c) / size,
			Reward: -float64(m.p.PeekCost),
		})
	}

	return out
}

func (m *MDP) take(s State) []mdp.Transition[State] {
	if s.Peeked != NoPeek {
		next, reward := m.draw(s.Total, s.Deck, s.Peeked)
		return []mdp.Transition[State]{{State: next, Prob: 1, Reward: reward}}
	}
	size := float64(s.Deck.Size())
	var out []mdp.Transition[State]
	for i := 0; i < s.Deck.Len(); i++ {
		c := s.Deck.Count(i)
		if c == 0 {
			continue
		}
		next, reward := m.draw(s.Total, s.Deck, i)
		out = append(out, mdp.Transition[State]{State: next, Prob: float64(c) / size, Reward: reward})
	}

	return out
}

// draw takes card i from deck on top of total.
func (m *MDP) draw(total int, deck Deck, i int) (State, float64) {
	total += m.p.CardValues[i]
	if total > m.p.Threshold {
		return terminal(total), 0
	}
	rest := deck.without(i)
	if rest.Size() == 0 {
		return terminal(total), float64(total)
	}

	return State{Total: total, Peeked: NoPeek, Deck: rest}, 0
}
