// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var argsFixturesNew struct {
	output string
}

var cmdFixtures = &cobra.Command{
	Use:   "fixtures",
	Short: "generate fixture files for manual exploration and testing",
}

var cmdFixturesNew = &cobra.Command{
	Use:   "new",
	Short: "emit a minimal valid board and ship pair as a JSON fixture",
	Long: `Writes a single all-water segment with a Goal field at its far
end and two ships a field apart. With no --output, the fixture is
printed to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fx := newFixture()
		if argsFixturesNew.output == "" {
			data, err := json.MarshalIndent(fx, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		if err := writeFixture(argsFixturesNew.output, fx); err != nil {
			return err
		}
		log.Printf("fixtures new: wrote %s\n", argsFixturesNew.output)
		return nil
	},
}

func init() {
	cmdFixturesNew.Flags().StringVar(&argsFixturesNew.output, "output", "", "path to write the fixture (default: stdout)")
}
