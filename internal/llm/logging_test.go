package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/store"
)

// recordingEventRepo captures appended events in memory.
type recordingEventRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *recordingEventRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Text:  "Try spaced repetition.",
		Usage: Usage{InputTokens: 12, OutputTokens: 34, TotalTokens: 46},
	})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "ask")
	resp, err := p.Generate(ctx, Request{
		System:   "You are a study assistant.",
		Messages: []Message{{Role: RoleUser, Content: "How do I remember formulas?"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text != "Try spaced repetition." {
		t.Errorf("text = %q", resp.Text)
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "mock" {
		t.Errorf("provider = %q", ev.Provider)
	}
	if ev.Purpose != "ask" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if !ev.Success {
		t.Error("expected success event")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if ev.ResponseBody != "Try spaced repetition." {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
	if !strings.Contains(ev.RequestBody, "[system]") || !strings.Contains(ev.RequestBody, "How do I remember formulas?") {
		t.Errorf("request body = %q", ev.RequestBody)
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrRateLimit{Err: errors.New("429")},
	})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, "anthropic", repo)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected rate limit error, got %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", ev.Purpose)
	}
}

func TestLoggingProviderSurvivesLogFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	repo := &recordingEventRepo{err: errors.New("disk full")}
	p := WithLogging(mock, "mock", repo)

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Generate should not fail when logging fails: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("text = %q", resp.Text)
	}
}

func TestSerializeRequest(t *testing.T) {
	got := serializeRequest(Request{
		System: "sys",
		Messages: []Message{
			{Role: RoleUser, Content: "q1"},
			{Role: RoleAssistant, Content: "a1"},
		},
	})
	for _, want := range []string{"[system]\nsys", "[user]\nq1", "[assistant]\na1"} {
		if !strings.Contains(got, want) {
			t.Errorf("serialized request missing %q:\n%s", want, got)
		}
	}
}
