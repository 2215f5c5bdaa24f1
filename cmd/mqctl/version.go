// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "print the engine version",
	Long:  `All software has versions. This is our engine's version.`,
	Run: func(cmd *cobra.Command, args []string) {
		if buildInfo, _ := cmd.Flags().GetBool("build-info"); buildInfo {
			fmt.Printf("%s\n", version.String())
			return
		}
		fmt.Printf("%s\n", version.Short())
	},
}

func init() {
	cmdVersion.Flags().Bool("build-info", false, "print commit and build metadata")
}
