// ABOUTME: CLI commands for the coaching profile.
// ABOUTME: Show and update goals, experience, and biography fields.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/biome/internal/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your coaching profile",
	Long: `Show or update your coaching profile: the permanent context a coach
(human or agent) needs to tailor a plan.

Examples:
  biome profile
  biome profile set --goal "hypertrophy" --experience intermediate
  biome profile set --name "Sam" --age 34`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := profile.Open(cfg.ProfileDir())
		if err != nil {
			return err
		}
		defer profiles.Close()

		p, err := profiles.GetProfile()
		if err != nil {
			return err
		}

		printField := func(label string, v *string) {
			if v != nil {
				fmt.Printf("  %-12s %s\n", label, *v)
			}
		}
		color.New(color.Bold).Println("Profile")
		printField("Name", p.Name)
		printField("Bio", p.Bio)
		printField("Sex", p.Sex)
		printField("Born", p.DateOfBirth)
		if p.Age != nil {
			fmt.Printf("  %-12s %d\n", "Age", *p.Age)
		}
		printField("Goal", p.Goal)
		printField("Experience", p.ExperienceLevel)
		if p.WagePerHour != nil {
			fmt.Printf("  %-12s %.2f\n", "Wage/hour", *p.WagePerHour)
		}
		if p.UpdatedAt.IsZero() {
			fmt.Println("  (empty — set fields with 'biome profile set')")
		}
		return nil
	},
}

var (
	profileName       string
	profileBio        string
	profileSex        string
	profileDOB        string
	profileAge        string
	profileGoal       string
	profileExperience string
	profileWage       string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := profile.Open(cfg.ProfileDir())
		if err != nil {
			return err
		}
		defer profiles.Close()

		p, err := profiles.GetProfile()
		if err != nil {
			return err
		}

		if profileName != "" {
			p.Name = &profileName
		}
		if profileBio != "" {
			p.Bio = &profileBio
		}
		if profileSex != "" {
			p.Sex = &profileSex
		}
		if profileDOB != "" {
			p.DateOfBirth = &profileDOB
		}
		if profileAge != "" {
			age, err := strconv.Atoi(profileAge)
			if err != nil {
				return fmt.Errorf("invalid age: %s", profileAge)
			}
			p.Age = &age
		}
		if profileGoal != "" {
			p.Goal = &profileGoal
		}
		if profileExperience != "" {
			p.ExperienceLevel = &profileExperience
		}
		if profileWage != "" {
			wage, err := strconv.ParseFloat(profileWage, 64)
			if err != nil {
				return fmt.Errorf("invalid wage: %s", profileWage)
			}
			p.WagePerHour = &wage
		}

		if err := profiles.SaveProfile(p); err != nil {
			return err
		}
		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileBio, "bio", "", "short biography")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "sex")
	profileSetCmd.Flags().StringVar(&profileDOB, "born", "", "date of birth (YYYY-MM-DD)")
	profileSetCmd.Flags().StringVar(&profileAge, "age", "", "age in years")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "training goal")
	profileSetCmd.Flags().StringVar(&profileExperience, "experience", "", "training experience level")
	profileSetCmd.Flags().StringVar(&profileWage, "wage", "", "hourly wage for time-cost estimates")
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
