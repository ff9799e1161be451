// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/game"
)

type halvingPolicy = game.Policy[game.HalvingState, string]

func newHalvingCmd(a *app) *cobra.Command {
	var (
		n        int
		opponent string
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "halving",
		Short: "Play the halving game: minimax against an opponent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hc := &a.cfg.Halving
			if cmd.Flags().Changed("n") {
				hc.N = n
			}
			if cmd.Flags().Changed("opponent") {
				hc.Opponent = opponent
			}
			if cmd.Flags().Changed("seed") {
				hc.Seed = seed
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.runHalving(cmd)
		},
	}
	cmd.Flags().IntVar(&n, "n", 0, "starting number")
	cmd.Flags().StringVar(&opponent, "opponent", "", "opponent policy: minimax, first, random")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed of the random opponent")

	return cmd
}

func (a *app) runHalving(cmd *cobra.Command) error {
	hc := a.cfg.Halving
	g, err := game.NewHalvingGame(hc.N)
	if err != nil {
		return err
	}
	value, best, err := game.Minimax[game.HalvingState, string](g, g.StartState())
	if err != nil {
		return err
	}

	var opp halvingPolicy
	switch hc.Opponent {
	case config.OpponentFirst:
		opp = game.FirstActionPolicy[game.HalvingState, string]
	case config.OpponentRandom:
		opp = game.RandomPolicy[game.HalvingState, string](rand.New(rand.NewPCG(hc.Seed, hc.Seed^0x9e3779b97f4a7c15)))
	default:
		opp = game.MinimaxPolicy[game.HalvingState, string]()
	}
	play, err := game.Play[game.HalvingState, string](g, map[int]halvingPolicy{
		game.MaxPlayer: game.MinimaxPolicy[game.HalvingState, string](),
		game.MinPlayer: opp,
	})
	if err != nil {
		return err
	}
	a.logger.Info("halving game finished", "n", hc.N, "opponent", hc.Opponent, "moves", len(play.Moves), "utility", play.Utility)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "minimax value: %+g (first move %s)\n", value, best)
	fmt.Fprintf(out, "moves: %s\n", strings.Join(play.Moves, " "))
	fmt.Fprintf(out, "final utility: %+g\n", play.Utility)

	return nil
}
