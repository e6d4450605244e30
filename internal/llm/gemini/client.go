package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"legalease-backend/internal/llm"
)

const defaultModelID = "gemini-2.5-flash"

// Client implements llm.Client using Google's Gemini API.
type Client struct {
	client  *genai.Client
	modelID string
}

// NewClient constructs a Gemini client. The API key is required; the model
// identifier defaults to gemini-2.5-flash.
func NewClient(ctx context.Context, apiKey, modelID string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = defaultModelID
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{client: client, modelID: modelID}, nil
}

// AnalyzeDocument sends the document bytes inline with the instruction text.
func (c *Client) AnalyzeDocument(ctx context.Context, input llm.DocumentInput) (string, error) {
	model := c.client.GenerativeModel(c.modelID)

	return withRetry(ctx, func() (string, error) {
		resp, err := model.GenerateContent(ctx,
			genai.Blob{MIMEType: input.MIMEType, Data: input.Data},
			genai.Text(input.Prompt),
		)
		if err != nil {
			return "", fmt.Errorf("gemini: analyze document: %w", err)
		}
		return responseText(resp)
	})
}

// Chat produces the next assistant turn. The persona instruction and its
// canned acknowledgment are prepended as user/model turns, matching the
// provider's multi-turn content format.
func (c *Client) Chat(ctx context.Context, input llm.ChatInput) (string, error) {
	if len(input.History) == 0 {
		return "", errors.New("gemini: chat requires at least one message")
	}

	model := c.client.GenerativeModel(c.modelID)
	if input.Temperature > 0 {
		model.SetTemperature(input.Temperature)
	}
	if input.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(input.MaxOutputTokens)
	}

	cs := model.StartChat()
	if strings.TrimSpace(input.System) != "" {
		cs.History = append(cs.History, &genai.Content{
			Role:  "user",
			Parts: []genai.Part{genai.Text(input.System)},
		})
		if strings.TrimSpace(input.Acknowledgment) != "" {
			cs.History = append(cs.History, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(input.Acknowledgment)},
			})
		}
	}
	for _, msg := range input.History[:len(input.History)-1] {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	last := input.History[len(input.History)-1]
	return withRetry(ctx, func() (string, error) {
		resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
		if err != nil {
			return "", fmt.Errorf("gemini: chat completion: %w", err)
		}
		return responseText(resp)
	})
}

// Complete sends instruction text alone.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelID)

	return withRetry(ctx, func() (string, error) {
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", fmt.Errorf("gemini: completion: %w", err)
		}
		return responseText(resp)
	})
}

// Close releases resources held by the underlying client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini: response has no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("gemini: response has empty content")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}

var _ llm.Client = (*Client)(nil)
