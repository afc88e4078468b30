package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiz/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect logged study sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent study sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		topic, _ := cmd.Flags().GetString("topic")
		completedOnly, _ := cmd.Flags().GetBool("completed")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := st.SessionRepo().List(cmd.Context(), store.SessionQueryOpts{
			Limit:         limit,
			Topic:         topic,
			CompletedOnly: completedOnly,
		})
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No study sessions logged yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-20s  %-7s  %-4s  %-5s  %s\n",
			"ID", "Date", "Topic", "Min", "Done", "Focus", "Notes")
		fmt.Println(strings.Repeat("─", 80))

		for _, s := range sessions {
			done := " "
			if s.Completed {
				done = "✓"
			}
			focus := "-"
			if s.FocusLevel > 0 {
				focus = strconv.Itoa(s.FocusLevel)
			}
			topic := s.Topic
			if len(topic) > 20 {
				topic = topic[:20]
			}
			notes := s.Notes
			if len(notes) > 24 {
				notes = notes[:24] + "..."
			}
			fmt.Printf("%-5d  %-16s  %-20s  %-7.0f  %-4s  %-5s  %s\n",
				s.ID,
				s.Date.Local().Format("2006-01-02 15:04"),
				topic,
				s.DurationMinutes,
				done,
				focus,
				notes,
			)
		}
		return nil
	},
}

var sessionsDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a study session as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		completed := true
		session, err := st.SessionRepo().Update(cmd.Context(), id, store.SessionUpdate{Completed: &completed})
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}

		fmt.Printf("Session #%d (%s) marked completed.\n", session.ID, session.Topic)
		return nil
	},
}

var sessionsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a study session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SessionRepo().Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}

		fmt.Printf("Session #%d deleted.\n", id)
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	sessionsListCmd.Flags().StringP("topic", "t", "", "Filter by exact topic")
	sessionsListCmd.Flags().Bool("completed", false, "Show only completed sessions")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsDoneCmd)
	sessionsCmd.AddCommand(sessionsRmCmd)
}
