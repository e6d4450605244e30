package chat

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed prompts/persona.txt
var personaPrompt string

// acknowledgment is the canned model turn that follows the persona
// instruction in the conversation history sent to the provider.
const acknowledgment = "Understood. I am LegalEase AI, your Indian legal adviser assistant. I will provide helpful, accurate information about Indian law while being clear that my responses are informational and not legal advice. How can I help you today?"

// BuildSystemPrompt folds an optional serialized prior analysis into the
// fixed persona instruction.
func BuildSystemPrompt(documentContext json.RawMessage) string {
	prompt := strings.TrimSpace(personaPrompt)
	if len(documentContext) == 0 {
		return prompt
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, documentContext, "", "  "); err != nil {
		return prompt
	}
	return prompt + "\n\nThe user has uploaded a legal document with the following analysis:\n" +
		indented.String() +
		"\n\nUse this context to provide more specific and relevant answers."
}
