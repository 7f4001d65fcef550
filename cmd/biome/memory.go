// ABOUTME: CLI commands for coaching memory records.
// ABOUTME: Save and list plan snapshots, findings, feedback, and reflections.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/biome/internal/profile"
	"github.com/spf13/cobra"
)

var (
	memorySaveType string
	memorySaveTags []string
	memoryListN    int
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Manage coaching memory records",
	Long: `Manage long-term coaching memories: plan snapshots, finding snapshots,
user feedback, and reflections. These survive across sessions and give an
agent coach continuity.

Examples:
  biome memory save --type user_feedback '{"note": "knee felt off on squats"}'
  biome memory list
  biome memory list -n 5`,
}

var memorySaveCmd = &cobra.Command{
	Use:   "save <json>",
	Short: "Save a memory record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var content map[string]any
		if err := json.Unmarshal([]byte(args[0]), &content); err != nil {
			return fmt.Errorf("content must be a JSON object: %w", err)
		}

		profiles, err := profile.Open(cfg.ProfileDir())
		if err != nil {
			return err
		}
		defer profiles.Close()

		id, err := profiles.SaveMemory(&profile.MemoryRecord{
			Type:    memorySaveType,
			Content: content,
			Tags:    memorySaveTags,
		})
		if err != nil {
			return err
		}
		color.Green("✓ Saved %s memory", memorySaveType)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(id[:8]))
		return nil
	},
}

var memoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List memory records, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := profile.Open(cfg.ProfileDir())
		if err != nil {
			return err
		}
		defer profiles.Close()

		records, err := profiles.ListMemories(memoryListN)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No memories saved yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, rec := range records {
			content, _ := json.Marshal(rec.Content)
			fmt.Printf("%s %s %-18s %s\n",
				faint.Sprint(rec.ID[:8]),
				faint.Sprint(rec.CreatedAt.Format("2006-01-02 15:04")),
				rec.Type,
				truncate(string(content), 60))
		}
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func init() {
	memorySaveCmd.Flags().StringVar(&memorySaveType, "type", profile.MemoryReflection,
		"record type (plan_snapshot, finding_snapshot, user_feedback, reflection)")
	memorySaveCmd.Flags().StringSliceVar(&memorySaveTags, "tags", nil, "optional tags")
	memoryListCmd.Flags().IntVarP(&memoryListN, "limit", "n", 20, "max number of records")
	memoryCmd.AddCommand(memorySaveCmd)
	memoryCmd.AddCommand(memoryListCmd)
	rootCmd.AddCommand(memoryCmd)
}
