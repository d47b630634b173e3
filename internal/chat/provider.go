package chat

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"gomate/internal/message"
)

// Provider generates assistant replies for a conversation.
type Provider interface {
	// Name returns the provider name for display purposes
	Name() string
	// Reply produces the next assistant message for the conversation.
	Reply(ctx context.Context, msgs []message.Message) (message.Message, error)
}

// OpenAIProvider calls the chat completion API with deterministic
// sampling.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a provider for the given model; an empty
// model selects the default chat model.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIProvider{client: openai.NewClient(apiKey), model: model}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

// Reply sends the conversation and returns the assistant's answer.
func (p *OpenAIProvider) Reply(ctx context.Context, msgs []message.Message) (message.Message, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    message.ToChat(msgs),
		Temperature: 0,
	})
	if err != nil {
		return message.Message{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return message.Message{}, fmt.Errorf("chat completion returned no choices")
	}
	return message.New(message.RoleAssistant, resp.Choices[0].Message.Content), nil
}
