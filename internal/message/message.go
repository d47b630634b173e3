// Package message defines the conversation message record shared by the
// chat loop, the tool executors and the log manager.
package message

import (
	openai "github.com/sashabaranov/go-openai"
)

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation entry. Immutable once built.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// New builds a message with the given role and text body.
func New(role, content string) Message {
	return Message{Role: role, Content: content}
}

// ToChat converts a conversation to the chat completion wire format.
func ToChat(msgs []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}
