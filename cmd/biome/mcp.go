// ABOUTME: CLI command to run the MCP server over stdio.
// ABOUTME: Exposes the analytics engine and profile store to AI assistants.
package main

import (
	"fmt"

	"github.com/harperreed/biome/internal/mcp"
	"github.com/harperreed/biome/internal/profile"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio)",
	Long: `Start the Model Context Protocol server over stdio.

Exposes tools for logging sets, reading KPIs, trends, insights, and the
coaching profile. Intended to be launched by an MCP client such as Claude
Desktop, not run interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := profile.Open(cfg.ProfileDir())
		if err != nil {
			return err
		}
		defer profiles.Close()

		server, err := mcp.NewServer(engine, store, profiles)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
