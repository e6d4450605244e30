package analysis

import _ "embed"

//go:embed prompts/analyze.txt
var analyzePrompt string

// Prompt returns the fixed analysis instruction. The template declares the
// output schema field-by-field and does not vary per document.
func Prompt() string {
	return analyzePrompt
}
