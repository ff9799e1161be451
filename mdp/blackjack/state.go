// SPDX-License-Identifier: MIT

package blackjack

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoPeek is the Peeked value of a state with no card revealed.
const NoPeek = -1

// MaxCardKinds is the largest number of distinct card indices a Deck holds.
const MaxCardKinds = 16

// MaxMultiplicity is the largest per-index count a Deck holds.
const MaxMultiplicity = math.MaxUint8

// Deck is the multiset of remaining cards as one count per card index.
// It is comparable so states can key maps; the zero Deck means "no deck".
type Deck struct {
	n      uint8 // number of card indices; 0 for the zero Deck
	counts [MaxCardKinds]uint8
}

// NewDeck returns a deck with the given counts per card index.
// It panics if more than MaxCardKinds counts are given or a count lies
// outside [0, MaxMultiplicity]; Params.Validate rules both out.
func NewDeck(counts ...int) Deck {
	if len(counts) > MaxCardKinds {
		panic(fmt.Sprintf("blackjack: %d card kinds > %d", len(counts), MaxCardKinds))
	}
	d := Deck{n: uint8(len(counts))}
	for i, c := range counts {
		if c < 0 || c > MaxMultiplicity {
			panic(fmt.Sprintf("blackjack: card count %d out of range", c))
		}
		d.counts[i] = uint8(c)
	}

	return d
}

// IsZero reports whether d is the zero ("no deck") value.
func (d Deck) IsZero() bool { return d.n == 0 }

// Len returns the number of card indices.
func (d Deck) Len() int { return int(d.n) }

// Count returns the number of copies of card i left.
func (d Deck) Count(i int) int { return int(d.counts[i]) }

// Counts returns a fresh slice of per-index counts; nil for the zero Deck.
func (d Deck) Counts() []int {
	if d.IsZero() {
		return nil
	}
	out := make([]int, d.n)
	for i := range out {
		out[i] = int(d.counts[i])
	}

	return out
}

// Size returns the number of cards left.
func (d Deck) Size() int {
	n := 0
	for _, c := range d.counts[:d.n] {
		n += int(c)
	}

	return n
}

// without returns d with one copy of card i removed.
func (d Deck) without(i int) Deck {
	d.counts[i]--

	return d
}

// String formats d as "(c0,c1,...)" or "None".
func (d Deck) String() string {
	if d.IsZero() {
		return "None"
	}
	parts := make([]string, d.n)
	for i, c := range d.counts[:d.n] {
		parts[i] = strconv.Itoa(int(c))
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// State is one situation of the game.
type State struct {
	Total  int  // sum of the card values taken so far
	Peeked int  // index of the revealed next card, or NoPeek
	Deck   Deck // remaining cards; zero when the game is over
}

// IsTerminal reports whether the game has ended.
func (s State) IsTerminal() bool { return s.Deck.IsZero() }

// String formats s as "(total, peeked, deck)".
func (s State) String() string {
	peek := "None"
	if s.Peeked != NoPeek {
		peek = strconv.Itoa(s.Peeked)
	}

	return fmt.Sprintf("(%d, %s, %s)", s.Total, peek, s.Deck)
}

func terminal(total int) State {
	return State{Total: total, Peeked: NoPeek}
}
