// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"

	"github.com/mdhender/mississippiqueen/internal/actions"
	"github.com/mdhender/mississippiqueen/internal/config"
	"github.com/mdhender/mississippiqueen/internal/direction"
	"github.com/spf13/cobra"
)

var argsApply struct {
	input      string
	output     string
	configPath string
	action     string
	acc        int
	direction  string
	distance   int
}

var cmdApply = &cobra.Command{
	Use:   "apply",
	Short: "apply one action to a fixture and print the resulting state or problem",
	Long: `apply builds a single-action Move from --action and its
parameters, replays it against the current team's ship in the
fixture, and either prints the resulting ship states (writing the
updated fixture to --output, if given) or the rejection problem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		act, err := buildAction()
		if err != nil {
			return fmt.Errorf("apply: %w", err)
		}

		fx, err := loadFixture(argsApply.input)
		if err != nil {
			return fmt.Errorf("apply: %w", err)
		}
		cfg, err := config.Load(argsApply.configPath, false)
		if err != nil {
			return fmt.Errorf("apply: %w", err)
		}
		gs := fx.gameState(cfg)

		next, err := gs.PerformMove(actions.NewMove(act))
		if err != nil {
			fmt.Printf("rejected: %v\n", err)
			return nil
		}

		fmt.Printf("turn %d, team one: %s\n", next.Turn, next.TeamOne)
		fmt.Printf("turn %d, team two: %s\n", next.Turn, next.TeamTwo)

		if argsApply.output != "" {
			out := &fixture{Board: next.Board, TeamOne: next.TeamOne, TeamTwo: next.TeamTwo}
			if err := writeFixture(argsApply.output, out); err != nil {
				return fmt.Errorf("apply: %w", err)
			}
		}
		return nil
	},
}

func buildAction() (actions.Action, error) {
	switch argsApply.action {
	case "accelerate":
		return actions.Accelerate{Acc: argsApply.acc}, nil
	case "turn":
		d, ok := direction.StringToEnum[argsApply.direction]
		if !ok {
			return nil, fmt.Errorf("invalid --direction %q", argsApply.direction)
		}
		return actions.Turn{Direction: d}, nil
	case "advance":
		return actions.Advance{Distance: argsApply.distance}, nil
	case "push":
		d, ok := direction.StringToEnum[argsApply.direction]
		if !ok {
			return nil, fmt.Errorf("invalid --direction %q", argsApply.direction)
		}
		return actions.Push{Direction: d}, nil
	default:
		return nil, fmt.Errorf("invalid --action %q (want accelerate, turn, advance, or push)", argsApply.action)
	}
}

func init() {
	cmdApply.Flags().StringVar(&argsApply.input, "input", "", "path to a fixture JSON file")
	_ = cmdApply.MarkFlagRequired("input")
	cmdApply.Flags().StringVar(&argsApply.output, "output", "", "path to write the resulting fixture (optional)")
	cmdApply.Flags().StringVar(&argsApply.configPath, "config", "", "path to a MatchConfig JSON file (optional)")
	cmdApply.Flags().StringVar(&argsApply.action, "action", "", "accelerate, turn, advance, or push")
	_ = cmdApply.MarkFlagRequired("action")
	cmdApply.Flags().IntVar(&argsApply.acc, "acc", 0, "acceleration delta (for --action=accelerate)")
	cmdApply.Flags().StringVar(&argsApply.direction, "direction", "", "heading (for --action=turn or --action=push)")
	cmdApply.Flags().IntVar(&argsApply.distance, "distance", 0, "advance distance (for --action=advance)")
}
