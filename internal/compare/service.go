package compare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"legalease-backend/internal/llm"
	"legalease-backend/internal/shared/jsonx"
	"legalease-backend/internal/shared/metrics"
	"legalease-backend/internal/shared/telemetry"
)

const pipelineName = "compare"

var (
	// ErrMissingFields indicates a required comparison parameter was empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrProvider indicates the model call failed.
	ErrProvider = errors.New("comparison failed")
	// ErrParse indicates the completion could not be parsed as JSON.
	ErrParse = errors.New("failed to parse comparison")
)

// Service runs the state-comparison pipeline.
type Service struct {
	LLM     llm.Client
	Metrics *metrics.Metrics
}

// Compare asks the model for a structured two-state comparison of the given
// section. sectionLabel falls back to the section identifier when empty.
func (s *Service) Compare(ctx context.Context, section, sectionLabel, state1, state2 string) (Result, error) {
	section = strings.TrimSpace(section)
	state1 = strings.TrimSpace(state1)
	state2 = strings.TrimSpace(state2)
	if section == "" || state1 == "" || state2 == "" {
		s.Metrics.ObserveRequest(pipelineName, "validation_error")
		return Result{}, ErrMissingFields
	}
	sectionLabel = strings.TrimSpace(sectionLabel)
	if sectionLabel == "" {
		sectionLabel = section
	}

	start := time.Now()
	raw, err := s.LLM.Complete(ctx, BuildPrompt(sectionLabel, state1, state2))
	s.Metrics.ObserveProviderLatency(pipelineName, time.Since(start).Seconds())
	if err != nil {
		s.Metrics.ObserveRequest(pipelineName, "provider_error")
		return Result{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	cleaned := jsonx.StripFences(raw)
	candidate, ok := jsonx.ExtractObject(cleaned)
	if !ok {
		s.Metrics.ObserveRequest(pipelineName, "parse_error")
		return Result{}, fmt.Errorf("%w: no JSON object in response", ErrParse)
	}

	var result Result
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		s.Metrics.ObserveRequest(pipelineName, "parse_error")
		telemetry.Error("compare.parse_failed", map[string]any{
			"raw_length": len(raw),
			"err":        err.Error(),
		})
		return Result{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	s.Metrics.ObserveRequest(pipelineName, "ok")
	return result, nil
}
