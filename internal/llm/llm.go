package llm

import (
	"context"
	"errors"
)

// Message is a single turn in a conversation, role "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// DocumentInput carries an uploaded document plus the analysis instruction.
type DocumentInput struct {
	MIMEType string
	Data     []byte
	Prompt   string
}

// ChatInput carries a persona instruction, a canned acknowledgment turn and
// the full prior history. The last history entry is the message to answer.
type ChatInput struct {
	System          string
	Acknowledgment  string
	History         []Message
	Temperature     float32
	MaxOutputTokens int32
}

// Client abstracts the generative-text provider behind the three pipelines.
type Client interface {
	// AnalyzeDocument sends the document bytes inline with the instruction
	// text and returns the raw completion.
	AnalyzeDocument(ctx context.Context, input DocumentInput) (string, error)
	// Chat produces the next assistant turn for a conversation.
	Chat(ctx context.Context, input ChatInput) (string, error)
	// Complete sends instruction text alone and returns the raw completion.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub used when no provider credential is set.
type PlaceholderClient struct{}

func (PlaceholderClient) AnalyzeDocument(ctx context.Context, input DocumentInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}

func (PlaceholderClient) Chat(ctx context.Context, input ChatInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}

func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

var _ Client = (*PlaceholderClient)(nil)
