// Package chatbot answers free-form study questions through an LLM provider.
package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/llm"
)

const (
	// defaultMaxTokens caps answer length; study answers should stay short.
	defaultMaxTokens = 512

	// defaultTemperature keeps answers varied without rambling.
	defaultTemperature = 0.7
)

const promptTemplate = `You are a helpful study assistant. Answer the student's question clearly and concisely.

Context: %s
Question: %s

Answer:`

// Assistant answers study questions using an LLM provider. It is a thin,
// stateless layer; conversation memory, if any, is the caller's concern.
type Assistant struct {
	provider llm.Provider
}

// New creates an Assistant backed by the given provider.
func New(provider llm.Provider) *Assistant {
	return &Assistant{provider: provider}
}

// Ask sends the question to the LLM and returns the trimmed answer text.
// The optional context string is interpolated into the prompt; pass "" when
// there is nothing to add.
//
// Ask never returns an error: provider failures come back as a readable
// "Error: ..." string so callers can show them to the student directly.
func (a *Assistant) Ask(ctx context.Context, question, contextText string) string {
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf(promptTemplate, contextText, question)},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	return strings.TrimSpace(resp.Text)
}

// ModelID reports which model serves the answers.
func (a *Assistant) ModelID() string {
	return a.provider.ModelID()
}
