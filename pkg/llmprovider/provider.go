package llmprovider

import (
	"context"
	"strings"
)

// Message roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider is a chat-completion backend.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "openai", "deepseek").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Request is a normalized generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message is one turn of the conversation.
type Message struct {
	Role    string
	Content string
}

// Response is a normalized generation response.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the trimmed response text.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.Content.Content)
}

// NewPrompt builds a single-turn request.
func NewPrompt(system, prompt string) *Request {
	return &Request{
		SystemInstruction: system,
		Messages:          []Message{{Role: RoleUser, Content: prompt}},
	}
}
