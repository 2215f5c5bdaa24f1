// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"

	"github.com/mdhender/mississippiqueen/internal/config"
	"github.com/mdhender/mississippiqueen/internal/movegen"
	"github.com/spf13/cobra"
)

var argsMoves struct {
	input      string
	configPath string
	maxCoal    int
	rank       int
}

var cmdMoves = &cobra.Command{
	Use:   "moves",
	Short: "enumerate the legal moves for the current team in a fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		fx, err := loadFixture(argsMoves.input)
		if err != nil {
			return fmt.Errorf("moves: %w", err)
		}
		cfg, err := config.Load(argsMoves.configPath, false)
		if err != nil {
			return fmt.Errorf("moves: %w", err)
		}
		gs := fx.gameState(cfg)

		moves := movegen.GetActions(gs, argsMoves.rank, argsMoves.maxCoal)
		fmt.Printf("%s to move, %d legal move(s):\n", gs.CurrentTeam(), len(moves))
		for i, mv := range moves {
			fmt.Printf("%4d: %v\n", i, mv.Actions)
		}
		return nil
	},
}

func init() {
	cmdMoves.Flags().StringVar(&argsMoves.input, "input", "", "path to a fixture JSON file")
	_ = cmdMoves.MarkFlagRequired("input")
	cmdMoves.Flags().StringVar(&argsMoves.configPath, "config", "", "path to a MatchConfig JSON file (optional)")
	cmdMoves.Flags().IntVar(&argsMoves.maxCoal, "max-coal", 1, "coal budget beyond the ship's free allowance")
	cmdMoves.Flags().IntVar(&argsMoves.rank, "rank", 4, "maximum number of actions per generated move")
}
