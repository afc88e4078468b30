// Package chat is the interactive question-answering screen.
package chat

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/studiz/internal/chatbot"
	"github.com/abhisek/studiz/internal/llm"
	"github.com/abhisek/studiz/internal/ui/theme"
)

// entry is a single line of the transcript.
type entry struct {
	fromStudent bool
	text        string
}

// answerMsg is sent when the assistant finishes answering.
type answerMsg struct {
	text string
}

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	assistant      *chatbot.Assistant
	conversationID string
	input          textinput.Model
	transcript     []entry
	thinking       bool
	width          int
	height         int
}

// New creates a fresh chat screen. Each screen gets its own conversation id
// so logged LLM events can be grouped per chat.
func New(assistant *chatbot.Assistant) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask a study question..."
	ti.Focus()
	ti.CharLimit = 500

	return Model{
		assistant:      assistant,
		conversationID: uuid.NewString(),
		input:          ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.thinking {
				return m, nil
			}
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, entry{fromStudent: true, text: question})
			m.input.SetValue("")
			m.thinking = true
			return m, m.ask(question)
		}

	case answerMsg:
		m.thinking = false
		m.transcript = append(m.transcript, entry{text: msg.text})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask runs the assistant call off the UI loop.
func (m Model) ask(question string) tea.Cmd {
	assistant := m.assistant
	purpose := "chat:" + m.conversationID
	return func() tea.Msg {
		ctx := llm.WithPurpose(context.Background(), purpose)
		return answerMsg{text: assistant.Ask(ctx, question, "")}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder

	b.WriteString(theme.Title.Render("Study Chat"))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(m.assistant.ModelID()))
	b.WriteString("\n\n")

	if len(m.transcript) == 0 {
		b.WriteString(theme.Hint.Render("Ask anything about your studies. Esc to quit."))
		b.WriteString("\n")
	}

	for _, e := range m.transcript {
		label := theme.AssistantLabel.Render("assistant")
		if e.fromStudent {
			label = theme.StudentLabel.Render("you")
		}
		text := e.text
		if strings.HasPrefix(text, "Error: ") {
			text = theme.ErrorText.Render(text)
		} else {
			text = theme.Body.Render(text)
		}
		fmt.Fprintf(&b, "%s  %s\n\n", label, wrap(text, m.width-4))
	}

	if m.thinking {
		b.WriteString(theme.Hint.Render("thinking..."))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.InputFrame.Render(m.input.View()))

	v.SetContent(b.String())
	return v
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// Run starts the chat screen and blocks until the student quits.
func Run(assistant *chatbot.Assistant) error {
	p := tea.NewProgram(New(assistant))
	_, err := p.Run()
	return err
}
