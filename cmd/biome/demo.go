// ABOUTME: CLI command for toggling demo mode.
// ABOUTME: Persists the partition selection in config so it spans invocations.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo <on|off|status>",
	Short: "Switch between real and demo data",
	Long: `Switch which partition the analytics read from.

With demo mode on, overview, trends, insights, and the rest of the read
surface use the demo partition. Logging a set always writes to your real
log regardless of this setting.

Examples:
  biome demo on
  biome demo off
  biome demo status`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "on":
			cfg.DemoMode = true
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			color.Yellow("Demo mode on. Reads now use the demo partition.")
		case "off":
			cfg.DemoMode = false
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			color.Green("Demo mode off. Reads now use your real log.")
		case "status":
			count, err := store.Count(store.ActivePartition())
			if err != nil {
				return fmt.Errorf("failed to count entries: %w", err)
			}
			if cfg.DemoMode {
				fmt.Printf("Demo mode is on (%d demo entries).\n", count)
			} else {
				fmt.Printf("Demo mode is off (%d entries).\n", count)
			}
		default:
			return fmt.Errorf("unknown argument: %s (want on, off, or status)", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
