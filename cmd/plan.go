package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiz/internal/planner"
	"github.com/abhisek/studiz/internal/profile"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a day-by-day study plan",
	Long: `Generate a study plan for a subject, spreading topics over the days
until the deadline with revision and a final review day at the end.

Topic difficulty can be overridden per topic:

  studiz plan --subject "Linear Algebra" --topics vectors,matrices,eigenvalues \
      --days 10 --difficulty matrices=hard --difficulty vectors=easy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topics, _ := cmd.Flags().GetStringSlice("topics")
		days, _ := cmd.Flags().GetInt("days")
		profilePath, _ := cmd.Flags().GetString("profile")
		difficultyFlags, _ := cmd.Flags().GetStringSlice("difficulty")
		asJSON, _ := cmd.Flags().GetBool("json")

		prof, err := loadProfile(profilePath)
		if err != nil {
			return err
		}

		difficulties, err := parseDifficulties(difficultyFlags)
		if err != nil {
			return err
		}

		plan, err := planner.New().GeneratePlan(prof, subject, topics, days, difficulties)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		}

		fmt.Print(planner.Summary(plan))
		return nil
	},
}

// loadProfile reads the profile file, or returns the default profile when no
// path is given.
func loadProfile(path string) (planner.Profile, error) {
	if path == "" {
		return profile.Parse([]byte(`{}`))
	}
	return profile.LoadFile(path)
}

// parseDifficulties turns "topic=hard" flag values into a difficulty map.
func parseDifficulties(flags []string) (map[string]planner.Difficulty, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[string]planner.Difficulty, len(flags))
	for _, f := range flags {
		topic, level, ok := strings.Cut(f, "=")
		if !ok || topic == "" {
			return nil, fmt.Errorf("invalid --difficulty %q, expected topic=easy|medium|hard", f)
		}
		d, err := planner.ParseDifficulty(level)
		if err != nil {
			return nil, err
		}
		out[topic] = d
	}
	return out, nil
}

func init() {
	planCmd.Flags().String("subject", "", "Subject the plan is for")
	planCmd.Flags().StringSlice("topics", nil, "Comma-separated list of topics to cover")
	planCmd.Flags().Int("days", 0, "Days until the deadline")
	planCmd.Flags().String("profile", "", "Path to a student profile JSON file")
	planCmd.Flags().StringSlice("difficulty", nil, "Per-topic difficulty override (topic=easy|medium|hard)")
	planCmd.Flags().Bool("json", false, "Print the full plan as JSON")

	_ = planCmd.MarkFlagRequired("subject")
	_ = planCmd.MarkFlagRequired("topics")
	_ = planCmd.MarkFlagRequired("days")
}
