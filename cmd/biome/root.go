// ABOUTME: Root Cobra command for biome CLI.
// ABOUTME: Handles config load and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/biome/internal/analytics"
	"github.com/harperreed/biome/internal/config"
	"github.com/harperreed/biome/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	store  *storage.DB
	engine *analytics.Engine
)

var rootCmd = &cobra.Command{
	Use:   "biome",
	Short: "Strength training log and analytics",
	Long: `Biome is a CLI tool for logging strength training and analyzing progress.

LOGGING:

  $ biome log "Bench Press" --weight 80 --reps 5 --rpe 8   # Log a working set
  $ biome log "Leg Press" --level 12 --reps 10             # Machine exercise
  $ biome weight 82.5                                      # Log body weight
  $ biome import training.csv                              # Bulk import a CSV export

ANALYTICS:

  $ biome overview                    # Current-week KPIs
  $ biome trend volume_load           # Chartable time series
  $ biome trend max_weight -e "Squat" # Filtered to one exercise
  $ biome progression                 # Top weight progressions + recent sessions
  $ biome insights                    # Heuristic coaching findings
  $ biome exercises                   # All logged exercises
  $ biome stats "Bench Press"         # Lifetime stats for one exercise

DEMO MODE:

  A separate demo partition lets you explore the analytics on sample data
  without touching your real log. Reads follow the selected partition;
  single-set logging always writes to your real log.

  $ biome demo on       # Read from the demo partition
  $ biome demo off      # Back to your real data
  $ biome import demo.csv --demo    # Load sample data into the demo partition

MCP INTEGRATION:

  Run 'biome mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "biome": { "command": "biome", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Training data lives in a SQLite database at ~/.local/share/biome/biome.db.
  The coaching profile and memories live in a badger store alongside it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch the training database
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open training database: %w", err)
		}
		engine = analytics.New(store)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}
