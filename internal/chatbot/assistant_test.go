package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/llm"
)

func TestAskReturnsTrimmedAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "  Spaced repetition beats cramming.\n",
	})
	a := New(mock)

	got := a.Ask(context.Background(), "How should I revise?", "")
	if got != "Spaced repetition beats cramming." {
		t.Errorf("Ask() = %q", got)
	}
}

func TestAskIncludesQuestionAndContextInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	a := New(mock)

	a.Ask(context.Background(), "What is a derivative?", "Calculus, week 3")

	if mock.CallCount() != 1 {
		t.Fatalf("got %d calls, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("messages = %+v", req.Messages)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{
		"helpful study assistant",
		"Context: Calculus, week 3",
		"Question: What is a derivative?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if req.MaxTokens != 512 {
		t.Errorf("max tokens = %d, want 512", req.MaxTokens)
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
}

func TestAskEmptyContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	a := New(mock)

	a.Ask(context.Background(), "q", "")

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Context: \n") {
		t.Errorf("expected empty context line, got:\n%s", prompt)
	}
}

func TestAskProviderErrorBecomesText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("too many requests")},
	})
	a := New(mock)

	got := a.Ask(context.Background(), "q", "")
	if !strings.HasPrefix(got, "Error: ") {
		t.Errorf("Ask() = %q, want Error: prefix", got)
	}
	if !strings.Contains(got, "too many requests") {
		t.Errorf("Ask() = %q, want underlying cause", got)
	}
}
