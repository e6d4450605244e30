package analysis

import (
	"errors"
	"testing"
)

func TestNormalizeBackfillsDefaults(t *testing.T) {
	raw := "```json\n{\"documentType\":\"Traffic Challan\",\"riskScore\":70}\n```"

	result, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if result.DocumentType != "Traffic Challan" {
		t.Fatalf("expected documentType from payload, got %q", result.DocumentType)
	}
	if result.RiskScore != 70 {
		t.Fatalf("expected riskScore 70, got %v", result.RiskScore)
	}
	if result.State != "Not specified" {
		t.Fatalf("expected default state, got %q", result.State)
	}
	if result.RiskLevel != "medium" {
		t.Fatalf("expected default riskLevel, got %q", result.RiskLevel)
	}
	if result.Verdict == "" {
		t.Fatalf("expected default verdict")
	}
	if result.Sections == nil || result.IPCSections == nil || result.MissingInfo == nil ||
		result.Timeline == nil || result.NextSteps == nil {
		t.Fatalf("expected all arrays non-nil after normalization: %+v", result)
	}
	if len(result.SuggestedQuestions) != 3 {
		t.Fatalf("expected 3 default suggested questions, got %d", len(result.SuggestedQuestions))
	}
	if result.ExtractedDetails["caseNumber"] != "Not found" {
		t.Fatalf("expected default caseNumber, got %q", result.ExtractedDetails["caseNumber"])
	}
}

func TestNormalizeMergesExtractedDetails(t *testing.T) {
	raw := `{"extractedDetails":{"caseNumber":"MH-1234/2025","amount":5000,"contested":true,"note":null}}`

	result, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if result.ExtractedDetails["caseNumber"] != "MH-1234/2025" {
		t.Fatalf("expected merged caseNumber, got %q", result.ExtractedDetails["caseNumber"])
	}
	// Sibling defaults survive a partial details object.
	if result.ExtractedDetails["date"] != "Not specified" {
		t.Fatalf("expected default date to survive, got %q", result.ExtractedDetails["date"])
	}
	if result.ExtractedDetails["jurisdiction"] != "Not specified" {
		t.Fatalf("expected default jurisdiction to survive, got %q", result.ExtractedDetails["jurisdiction"])
	}
	// Non-string scalars are coerced, nulls dropped.
	if result.ExtractedDetails["amount"] != "5000" {
		t.Fatalf("expected coerced amount, got %q", result.ExtractedDetails["amount"])
	}
	if result.ExtractedDetails["contested"] != "true" {
		t.Fatalf("expected coerced bool, got %q", result.ExtractedDetails["contested"])
	}
	if _, present := result.ExtractedDetails["note"]; present {
		t.Fatalf("expected null detail to be dropped")
	}
}

func TestNormalizeEmptyArrayOverridesDefault(t *testing.T) {
	raw := `{"suggestedQuestions":[]}`

	result, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(result.SuggestedQuestions) != 0 {
		t.Fatalf("expected explicit empty array to override defaults, got %v", result.SuggestedQuestions)
	}
}

func TestNormalizeRiskScorePassthrough(t *testing.T) {
	// Out-of-range scores are preserved, not clamped.
	result, err := Normalize(`{"riskScore":140}`)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if result.RiskScore != 140 {
		t.Fatalf("expected riskScore 140, got %v", result.RiskScore)
	}
}

func TestNormalizeProseWrappedObject(t *testing.T) {
	raw := `Here is the result: {"documentType":"FIR"} Thanks!`

	result, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if result.DocumentType != "FIR" {
		t.Fatalf("expected documentType FIR, got %q", result.DocumentType)
	}
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	if _, err := Normalize("I cannot analyze this document."); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if _, err := Normalize("prefix {not json} suffix"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for invalid object, got %v", err)
	}
}
