// SPDX-License-Identifier: MIT

// Command lvsearch runs the route planners, the blackjack solver and the
// halving game from the command line.
//
//	lvsearch route --width 3 --height 5 --start 0,0 --end-tag label=2,2
//	lvsearch waypoints --width 30 --height 30 --start 20,10 --waypoint x=5 --waypoint x=7 --end-tag label=3,3
//	lvsearch blackjack --cards 1,5 --multiplicity 2 --threshold 10 --peek-cost 1
//	lvsearch halving --n 15 --opponent random
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
