// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/mdp"
	"github.com/katalvlaran/lvsearch/mdp/blackjack"
)

func newBlackjackCmd(a *app) *cobra.Command {
	var (
		cards         []int
		multiplicity  int
		threshold     int
		peekCost      int
		tolerance     float64
		maxIterations int
		preset        string
		showPolicy    bool
	)
	cmd := &cobra.Command{
		Use:   "blackjack",
		Short: "Solve the card game MDP by value iteration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc := &a.cfg.Blackjack
			fl := cmd.Flags()
			if fl.Changed("cards") {
				bc.CardValues = cards
			}
			if fl.Changed("multiplicity") {
				bc.Multiplicity = multiplicity
			}
			if fl.Changed("threshold") {
				bc.Threshold = threshold
			}
			if fl.Changed("peek-cost") {
				bc.PeekCost = peekCost
			}
			if fl.Changed("tolerance") {
				bc.Tolerance = tolerance
			}
			if fl.Changed("max-iterations") {
				bc.MaxIterations = maxIterations
			}
			if fl.Changed("preset") {
				bc.Preset = preset
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.runBlackjack(cmd, showPolicy)
		},
	}
	cmd.Flags().IntSliceVar(&cards, "cards", nil, "card values, e.g. 1,5")
	cmd.Flags().IntVar(&multiplicity, "multiplicity", 0, "copies of each card")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "bust above this total")
	cmd.Flags().IntVar(&peekCost, "peek-cost", 0, "cost of peeking at the next card")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "value iteration tolerance")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "stop after this many sweeps (0 = unbounded)")
	cmd.Flags().StringVar(&preset, "preset", "", `use a built-in game: "peeking"`)
	cmd.Flags().BoolVar(&showPolicy, "show-policy", false, "print the action of every state")

	return cmd
}

func (a *app) runBlackjack(cmd *cobra.Command, showPolicy bool) error {
	bc := a.cfg.Blackjack
	var (
		model *blackjack.MDP
		err   error
	)
	if bc.Preset == "peeking" {
		model = blackjack.PeekingMDP()
	} else if model, err = blackjack.NewMDP(bc.Params); err != nil {
		return err
	}

	opts := []mdp.Option{mdp.WithLogger(a.logger)}
	if bc.MaxIterations > 0 {
		opts = append(opts, mdp.WithMaxIterations(bc.MaxIterations))
	}
	sol, err := mdp.ValueIteration[blackjack.State, blackjack.Action](model, bc.Tolerance, opts...)
	if err != nil {
		return err
	}

	counts := map[blackjack.Action]int{}
	for _, act := range sol.Pi {
		counts[act]++
	}
	out := cmd.OutOrStdout()
	p := model.Params()
	fmt.Fprintf(out, "game: cards=%v multiplicity=%d threshold=%d peekCost=%d\n", p.CardValues, p.Multiplicity, p.Threshold, p.PeekCost)
	fmt.Fprintf(out, "start value: %.4f\n", sol.V[model.StartState()])
	fmt.Fprintf(out, "states: %d, iterations: %d\n", len(sol.States), sol.Iterations)
	for _, act := range []blackjack.Action{blackjack.Take, blackjack.Peek, blackjack.Quit} {
		fmt.Fprintf(out, "%s: %d\n", act, counts[act])
	}

	if showPolicy {
		states := make([]blackjack.State, 0, len(sol.Pi))
		for s := range sol.Pi {
			states = append(states, s)
		}
		sort.Slice(states, func(i, j int) bool { return states[i].String() < states[j].String() })
		for _, s := range states {
			fmt.Fprintf(out, "%s => %s (%.4f)\n", s, sol.Pi[s], sol.V[s])
		}
	}

	return nil
}
