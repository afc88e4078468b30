package chat

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studiz/internal/chatbot"
	"github.com/abhisek/studiz/internal/llm"
)

func newTestModel(responses ...llm.MockResponse) (Model, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(chatbot.New(mock)), mock
}

func TestEnterWithEmptyInputDoesNothing(t *testing.T) {
	m, mock := newTestModel()

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for empty input")
	}
	got := updated.(Model)
	if got.thinking || len(got.transcript) != 0 {
		t.Errorf("model = thinking=%v transcript=%d", got.thinking, len(got.transcript))
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times", mock.CallCount())
	}
}

func TestAskRoundTrip(t *testing.T) {
	m, mock := newTestModel(llm.MockResponse{Text: "Review your notes daily."})
	m.input.SetValue("How do I retain more?")

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = updated.(Model)
	if !m.thinking {
		t.Error("expected model to be thinking")
	}
	if len(m.transcript) != 1 || !m.transcript[0].fromStudent {
		t.Fatalf("transcript = %+v", m.transcript)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	if cmd == nil {
		t.Fatal("expected an ask command")
	}

	msg := cmd()
	ans, ok := msg.(answerMsg)
	if !ok {
		t.Fatalf("cmd returned %T", msg)
	}
	if ans.text != "Review your notes daily." {
		t.Errorf("answer = %q", ans.text)
	}

	updated, _ = m.Update(ans)
	m = updated.(Model)
	if m.thinking {
		t.Error("expected thinking to clear")
	}
	if len(m.transcript) != 2 || m.transcript[1].fromStudent {
		t.Fatalf("transcript = %+v", m.transcript)
	}
	if m.transcript[1].text != "Review your notes daily." {
		t.Errorf("transcript answer = %q", m.transcript[1].text)
	}

	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestEnterWhileThinkingIsIgnored(t *testing.T) {
	m, mock := newTestModel(llm.MockResponse{Text: "a"}, llm.MockResponse{Text: "b"})
	m.thinking = true
	m.input.SetValue("second question")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command while thinking")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times", mock.CallCount())
	}
}

func TestEscQuits(t *testing.T) {
	m, _ := newTestModel()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestConversationIDIsFreshPerScreen(t *testing.T) {
	a, _ := newTestModel()
	b, _ := newTestModel()
	if a.conversationID == "" || a.conversationID == b.conversationID {
		t.Errorf("conversation ids: %q vs %q", a.conversationID, b.conversationID)
	}
}
