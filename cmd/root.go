package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/studiz/internal/chatbot"
	"github.com/abhisek/studiz/internal/llm"
	"github.com/abhisek/studiz/internal/store"
	"github.com/abhisek/studiz/internal/tui/chat"
)

var rootCmd = &cobra.Command{
	Use:   "studiz",
	Short: "Personal study planning assistant",
	Long:  "Studiz — terminal study assistant that builds day-by-day study plans, answers questions, and tracks study sessions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	// Load a local .env if present; real env vars win over file values.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDIZ_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// runChat opens the store, builds the assistant, and launches the chat screen.
func runChat(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set STUDIZ_LLM_PROVIDER and the matching API key, then try again.")
		return err
	}

	return chat.Run(chatbot.New(provider))
}
