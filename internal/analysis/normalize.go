package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"legalease-backend/internal/shared/jsonx"
)

// ErrParse indicates the completion text could not be reduced to valid JSON.
var ErrParse = errors.New("failed to parse analysis")

// parsedResult mirrors Result with pointer scalars so a missing field can be
// told apart from a zero value. extractedDetails stays untyped because
// models frequently emit numbers or nulls for detail values.
type parsedResult struct {
	DocumentType       *string              `json:"documentType"`
	State              *string              `json:"state"`
	RiskLevel          *string              `json:"riskLevel"`
	RiskScore          *float64             `json:"riskScore"`
	Verdict            *string              `json:"verdict"`
	Sections           []LegalSectionMatch  `json:"sections"`
	IPCSections        []StatutoryReference `json:"ipcSections"`
	ExtractedDetails   map[string]any       `json:"extractedDetails"`
	MissingInfo        []string             `json:"missingInfo"`
	Timeline           []TimelineStep       `json:"timeline"`
	NextSteps          []ActionItem         `json:"nextSteps"`
	SuggestedQuestions []string             `json:"suggestedQuestions"`
}

// Normalize converts a raw model completion into a fully-populated Result.
// It strips markdown fences, extracts the JSON object span, parses it and
// merges it over the defaults: each top-level field present in the parsed
// object overrides the default wholesale, except extractedDetails which is
// merged key-by-key so unspecified sibling keys survive. riskScore is passed
// through un-clamped.
func Normalize(raw string) (Result, error) {
	cleaned := jsonx.StripFences(raw)
	candidate, ok := jsonx.ExtractObject(cleaned)
	if !ok {
		return Result{}, fmt.Errorf("%w: no JSON object in response", ErrParse)
	}

	var parsed parsedResult
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	out := defaultResult()
	if parsed.DocumentType != nil {
		out.DocumentType = *parsed.DocumentType
	}
	if parsed.State != nil {
		out.State = *parsed.State
	}
	if parsed.RiskLevel != nil {
		out.RiskLevel = *parsed.RiskLevel
	}
	if parsed.RiskScore != nil {
		out.RiskScore = *parsed.RiskScore
	}
	if parsed.Verdict != nil {
		out.Verdict = *parsed.Verdict
	}
	if parsed.Sections != nil {
		out.Sections = parsed.Sections
	}
	if parsed.IPCSections != nil {
		out.IPCSections = parsed.IPCSections
	}
	if parsed.MissingInfo != nil {
		out.MissingInfo = parsed.MissingInfo
	}
	if parsed.Timeline != nil {
		out.Timeline = parsed.Timeline
	}
	if parsed.NextSteps != nil {
		out.NextSteps = parsed.NextSteps
	}
	if parsed.SuggestedQuestions != nil {
		out.SuggestedQuestions = parsed.SuggestedQuestions
	}
	for key, value := range parsed.ExtractedDetails {
		if str, ok := detailString(value); ok {
			out.ExtractedDetails[key] = str
		}
	}

	return out, nil
}

func detailString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
