package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProviderReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first answer", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second answer"},
	)

	resp1, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "first"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first answer" {
		t.Errorf("text = %q", resp1.Text)
	}
	if resp1.Usage.TotalTokens != 15 {
		t.Errorf("total tokens = %d, want 15", resp1.Usage.TotalTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "second"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second answer" {
		t.Errorf("text = %q", resp2.Text)
	}
}

func TestMockProviderEmptyQueue(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestMockProviderCannedError(t *testing.T) {
	wantErr := &ErrRateLimit{Err: errors.New("too many requests")}
	mock := NewMockProvider(MockResponse{Err: wantErr})

	_, err := mock.Generate(context.Background(), Request{})
	var rateLimited *ErrRateLimit
	if !errors.As(err, &rateLimited) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestMockProviderRecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "a"},
		MockResponse{Text: "b"},
	)

	mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "q1"}}})
	mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "q2"}}})

	if mock.CallCount() != 2 {
		t.Errorf("call count = %d, want 2", mock.CallCount())
	}
	if mock.Calls[1].Messages[0].Content != "q2" {
		t.Errorf("recorded call = %+v", mock.Calls[1])
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("friendly name: got %q", got)
	}
	// Unknown names pass through as direct model IDs.
	if got := resolveModel("my-custom-model", anthropicModels); got != "my-custom-model" {
		t.Errorf("direct ID: got %q", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("bare context purpose = %q, want unknown", got)
	}

	ctx = WithPurpose(ctx, "ask")
	if got := PurposeFrom(ctx); got != "ask" {
		t.Errorf("purpose = %q, want ask", got)
	}
}
