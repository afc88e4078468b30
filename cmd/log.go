package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiz/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a completed study session",
	Long: `Record a study session after the fact:

  studiz log --topic calculus --minutes 50 --completed --difficulty 4 --focus 7 \
      --notes "integration by parts"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		minutes, _ := cmd.Flags().GetFloat64("minutes")
		if minutes <= 0 {
			return fmt.Errorf("--minutes must be positive, got %v", minutes)
		}

		completed, _ := cmd.Flags().GetBool("completed")
		notes, _ := cmd.Flags().GetString("notes")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		focus, _ := cmd.Flags().GetInt("focus")
		dateStr, _ := cmd.Flags().GetString("date")

		if difficulty != 0 && (difficulty < 1 || difficulty > 5) {
			return fmt.Errorf("--difficulty must be 1-5, got %d", difficulty)
		}
		if focus != 0 && (focus < 1 || focus > 10) {
			return fmt.Errorf("--focus must be 1-10, got %d", focus)
		}

		var date time.Time
		if dateStr != "" {
			var err error
			date, err = time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateStr, err)
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		session, err := st.SessionRepo().Create(cmd.Context(), store.CreateSessionData{
			Topic:            topic,
			DurationMinutes:  minutes,
			Completed:        completed,
			Date:             date,
			Notes:            notes,
			DifficultyRating: difficulty,
			FocusLevel:       focus,
		})
		if err != nil {
			return fmt.Errorf("log session: %w", err)
		}

		fmt.Printf("Logged session #%d: %s, %.0f min\n", session.ID, session.Topic, session.DurationMinutes)
		return nil
	},
}

func init() {
	logCmd.Flags().StringP("topic", "t", "", "Topic that was studied")
	logCmd.Flags().Float64P("minutes", "m", 0, "Session length in minutes")
	logCmd.Flags().Bool("completed", false, "Mark the session as completed")
	logCmd.Flags().String("notes", "", "Free-form notes")
	logCmd.Flags().Int("difficulty", 0, "How hard the material felt (1-5)")
	logCmd.Flags().Int("focus", 0, "How focused you were (1-10)")
	logCmd.Flags().String("date", "", "Session date as YYYY-MM-DD (default: now)")

	_ = logCmd.MarkFlagRequired("topic")
	_ = logCmd.MarkFlagRequired("minutes")
}
