// ABOUTME: CLI command printing the build version.
// ABOUTME: Runs without touching config or storage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the biome version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("biome %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
