package compare

import (
	_ "embed"
	"strings"
)

//go:embed prompts/compare.txt
var compareTemplate string

// BuildPrompt parameterizes the comparison template with the section label
// and the two jurisdiction names.
func BuildPrompt(sectionLabel, state1, state2 string) string {
	replacer := strings.NewReplacer(
		"{{SECTION_LABEL}}", sectionLabel,
		"{{STATE_1}}", state1,
		"{{STATE_2}}", state2,
	)
	return replacer.Replace(compareTemplate)
}
