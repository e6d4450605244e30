package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"legalease-backend/internal/llm"
	"legalease-backend/internal/shared/metrics"
	"legalease-backend/internal/shared/telemetry"
)

const (
	temperature     = 0.7
	maxOutputTokens = 2048
	pipelineName    = "chat"

	// apology is returned whenever the provider fails or produces nothing.
	// The chat path degrades gracefully instead of surfacing an error.
	apology = "I apologize, but I couldn't generate a response. Please try again."
)

// ErrEmptyHistory indicates the request carried no conversation turns.
var ErrEmptyHistory = errors.New("messages array is required")

// Service runs the chat-turn pipeline.
type Service struct {
	LLM     llm.Client
	Metrics *metrics.Metrics
}

// NextTurn produces the next assistant message for the given history. The
// only error it returns is ErrEmptyHistory; provider failures degrade to the
// canned apology.
func (s *Service) NextTurn(ctx context.Context, history []llm.Message, documentContext json.RawMessage) (string, error) {
	if len(history) == 0 {
		s.Metrics.ObserveRequest(pipelineName, "validation_error")
		return "", ErrEmptyHistory
	}

	start := time.Now()
	text, err := s.LLM.Chat(ctx, llm.ChatInput{
		System:          BuildSystemPrompt(documentContext),
		Acknowledgment:  acknowledgment,
		History:         history,
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
	})
	s.Metrics.ObserveProviderLatency(pipelineName, time.Since(start).Seconds())
	if err != nil {
		s.Metrics.ObserveRequest(pipelineName, "provider_error")
		telemetry.Error("chat.provider_failed", map[string]any{"err": err.Error()})
		return apology, nil
	}
	if strings.TrimSpace(text) == "" {
		s.Metrics.ObserveRequest(pipelineName, "provider_error")
		return apology, nil
	}

	s.Metrics.ObserveRequest(pipelineName, "ok")
	return text, nil
}
