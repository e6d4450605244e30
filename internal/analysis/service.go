package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"legalease-backend/internal/llm"
	"legalease-backend/internal/shared/metrics"
	"legalease-backend/internal/shared/telemetry"
)

const (
	defaultMIMEType = "application/pdf"
	pipelineName    = "analyze"
)

var (
	// ErrNoFile indicates the request carried no document bytes.
	ErrNoFile = errors.New("no file provided")
	// ErrProvider indicates the model call failed or returned nothing.
	ErrProvider = errors.New("analysis failed")
)

// Service runs the document-analysis pipeline: prompt, provider call,
// normalization. It holds no per-request state.
type Service struct {
	LLM     llm.Client
	Metrics *metrics.Metrics
}

// Analyze runs the pipeline for one uploaded document. On a parse failure
// the raw completion is returned alongside ErrParse so the handler can echo
// it for diagnostics.
func (s *Service) Analyze(ctx context.Context, data []byte, mimeType string) (Result, string, error) {
	if len(data) == 0 {
		s.Metrics.ObserveRequest(pipelineName, "validation_error")
		return Result{}, "", ErrNoFile
	}

	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = defaultMIMEType
	}

	logAnalyzeRequest(data, mimeType)

	start := time.Now()
	raw, err := s.LLM.AnalyzeDocument(ctx, llm.DocumentInput{
		MIMEType: mimeType,
		Data:     data,
		Prompt:   Prompt(),
	})
	s.Metrics.ObserveProviderLatency(pipelineName, time.Since(start).Seconds())
	if err != nil {
		s.Metrics.ObserveRequest(pipelineName, "provider_error")
		return Result{}, "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if strings.TrimSpace(raw) == "" {
		s.Metrics.ObserveRequest(pipelineName, "provider_error")
		return Result{}, "", fmt.Errorf("%w: empty completion", ErrProvider)
	}

	result, err := Normalize(raw)
	if err != nil {
		s.Metrics.ObserveRequest(pipelineName, "parse_error")
		telemetry.Error("analysis.parse_failed", map[string]any{
			"raw_length": len(raw),
			"err":        err.Error(),
		})
		return Result{}, raw, err
	}

	s.Metrics.ObserveRequest(pipelineName, "ok")
	return result, raw, nil
}

// logAnalyzeRequest records document metadata before the provider call.
// Page count is best-effort and only attempted for PDFs.
func logAnalyzeRequest(data []byte, mimeType string) {
	fields := map[string]any{
		"mime_type":  mimeType,
		"size_bytes": len(data),
	}
	if mimeType == defaultMIMEType {
		if pages, err := pdfPageCount(data); err == nil {
			fields["pdf_pages"] = pages
		}
	}
	telemetry.Info("analysis.request", fields)
}

func pdfPageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}
