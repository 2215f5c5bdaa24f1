// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package main implements mqctl, an ambient CLI over the Mississippi
// Queen rules engine: it loads a fixture, enumerates or applies moves
// against it, and reports the engine's version. It consumes the
// engine's internal packages as a library and is never imported by
// them.
package main

import (
	"log"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

var cmdRoot = &cobra.Command{
	Use:   "mqctl",
	Short: "ambient CLI for the Mississippi Queen rules engine",
	Long:  `mqctl loads JSON fixtures and drives the rules engine's move generator and move application from the command line.`,
}

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime)
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

// Execute wires the subcommand tree and runs it.
func Execute() error {
	cmdRoot.AddCommand(cmdVersion)
	cmdRoot.AddCommand(cmdMoves)
	cmdRoot.AddCommand(cmdApply)

	cmdRoot.AddCommand(cmdFixtures)
	cmdFixtures.AddCommand(cmdFixturesNew)

	return cmdRoot.Execute()
}
