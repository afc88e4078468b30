package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiz/internal/chatbot"
	"github.com/abhisek/studiz/internal/llm"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the study assistant a question",
	Long: `Answer a single question and exit, or open the interactive chat view:

  studiz ask "What is a derivative?"
  studiz ask -i`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive {
			return runChat(cmd)
		}
		if len(args) == 0 {
			return fmt.Errorf("provide a question, or use -i for interactive chat")
		}

		question := strings.Join(args, " ")
		contextText, _ := cmd.Flags().GetString("context")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		ctx := llm.WithPurpose(cmd.Context(), "ask")
		fmt.Println(chatbot.New(provider).Ask(ctx, question, contextText))
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("context", "c", "", "Extra context for the question (e.g. the subject or chapter)")
	askCmd.Flags().BoolP("interactive", "i", false, "Open the interactive chat view")
}
