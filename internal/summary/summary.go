// Package summary condenses long conversation content through a
// memoized model call, so identical inputs are never resubmitted.
package summary

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"gomate/internal/message"
)

// Backend produces a natural-language summary of a text.
type Backend interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// OpenAIBackend summarizes through the completion API with deterministic
// sampling.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates a backend for the given model; an empty model
// selects the instruct default.
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	if model == "" {
		model = openai.GPT3Dot5TurboInstruct
	}
	return &OpenAIBackend{client: openai.NewClient(apiKey), model: model}
}

// Summarize issues the completion call. Temperature is fixed at 0 and the
// summary is bounded to 256 tokens.
func (b *OpenAIBackend) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := b.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       b.model,
		Prompt:      "Please summarize the following:\n" + text + "\n\nSummary:",
		Temperature: 0,
		MaxTokens:   256,
	})
	if err != nil {
		return "", fmt.Errorf("summarize call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarize call returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Text), nil
}

const (
	longMessageTokens = 200
	headWords         = 150
	tailWords         = 100
)

// Summarizer condenses messages through a backend, reducing long content
// to its head and tail before the call.
type Summarizer struct {
	backend Backend
}

// New wraps a backend. Pass a Cached backend to memoize the calls.
func New(backend Backend) *Summarizer {
	return &Summarizer{backend: backend}
}

// Summarize returns a system message summarizing msg.
func (s *Summarizer) Summarize(ctx context.Context, msg message.Message) (message.Message, error) {
	content := msg.Content
	if CountTokens(content) > longMessageTokens {
		words := strings.Fields(content)
		head := strings.Join(words[:min(headWords, len(words))], " ")
		tail := strings.Join(words[max(0, len(words)-tailWords):], " ")
		content = head + "\n...\n" + tail
	}
	text, err := s.backend.Summarize(ctx, content)
	if err != nil {
		return message.Message{}, err
	}
	return message.New(message.RoleSystem, "Here is a summary of the response:\n"+text), nil
}
