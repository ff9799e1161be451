// SPDX-License-Identifier: MIT

// Package game provides two-player, zero-sum, turn-based games and a minimax
// solver for them.
//
// A Game reports whose turn it is with Player: MaxPlayer (+1) wants to
// maximize Utility, MinPlayer (-1) to minimize it. Utility is only read at
// end states.
//
// Minimax returns the game value of a state and the move that achieves it,
// memoizing subgames (states are comparable). Play drives a game from its
// start state to an end, asking one Policy per player for each move.
//
// HalvingGame is the reference game: from a number N players alternately
// subtract one or, when the number is even, halve it; whoever must move at 1
// has lost.
package game
