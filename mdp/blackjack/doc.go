// SPDX-License-Identifier: MIT

// Package blackjack models a simplified card game as an MDP.
//
// A deck holds Multiplicity copies of each card value and is drawn without
// replacement. The player repeatedly chooses:
//
//   - Take: draw the next card (the peeked one if any, otherwise a card chosen
//     with probability proportional to its remaining count). Exceeding
//     Threshold busts the hand with reward 0; drawing the last card ends the
//     game paying the hand total.
//   - Peek: pay PeekCost to learn which card comes next. Peeking twice in a
//     row is a dead end.
//   - Quit: end the game, collecting the hand total.
//
// A State is (Total, Peeked, Deck). The zero Deck marks a terminal state,
// from which every action has no outcomes.
package blackjack
