package analysis

// LegalSectionMatch is one statutory section the model matched in the
// document, ordered by relevance as produced by the model.
type LegalSectionMatch struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ActName       string `json:"actName"`
	SectionNumber string `json:"sectionNumber"`
	Risk          string `json:"risk"`
	LegalText     string `json:"legalText"`
	PlainText     string `json:"plainText"`
	Penalty       string `json:"penalty"`
	StateNote     string `json:"stateNote"`
	IsBailable    string `json:"isBailable"`
	Cognizable    string `json:"cognizable"`
}

// StatutoryReference is a penal-code specific citation.
type StatutoryReference struct {
	Section     string `json:"section"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Punishment  string `json:"punishment"`
}

// TimelineStep is one stage of the expected legal process.
type TimelineStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
}

// ActionItem is a recommended next step for the user.
type ActionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline,omitempty"`
}

// Result is the normalized analysis contract handed to the rendering layer.
// Every field is always present after normalization.
type Result struct {
	DocumentType       string               `json:"documentType"`
	State              string               `json:"state"`
	RiskLevel          string               `json:"riskLevel"`
	RiskScore          float64              `json:"riskScore"`
	Verdict            string               `json:"verdict"`
	Sections           []LegalSectionMatch  `json:"sections"`
	IPCSections        []StatutoryReference `json:"ipcSections"`
	ExtractedDetails   map[string]string    `json:"extractedDetails"`
	MissingInfo        []string             `json:"missingInfo"`
	Timeline           []TimelineStep       `json:"timeline"`
	NextSteps          []ActionItem         `json:"nextSteps"`
	SuggestedQuestions []string             `json:"suggestedQuestions"`
}

func defaultSuggestedQuestions() []string {
	return []string{
		"What should I do next?",
		"Is there a deadline I should be aware of?",
		"What are my rights in this situation?",
	}
}

func defaultExtractedDetails() map[string]string {
	return map[string]string{
		"caseNumber":   "Not found",
		"date":         "Not specified",
		"jurisdiction": "Not specified",
	}
}

func defaultResult() Result {
	return Result{
		DocumentType:       "Legal Document",
		State:              "Not specified",
		RiskLevel:          "medium",
		RiskScore:          50,
		Verdict:            "Document analyzed. Please review the details below.",
		Sections:           []LegalSectionMatch{},
		IPCSections:        []StatutoryReference{},
		ExtractedDetails:   defaultExtractedDetails(),
		MissingInfo:        []string{},
		Timeline:           []TimelineStep{},
		NextSteps:          []ActionItem{},
		SuggestedQuestions: defaultSuggestedQuestions(),
	}
}
