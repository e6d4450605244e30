package laws

// StateVariation notes whether a law's application differs across states.
type StateVariation struct {
	Varies  bool   `json:"varies"`
	Details string `json:"details,omitempty"`
}

// LawEntry is one entry of the curated law database.
type LawEntry struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ShortTitle       string         `json:"shortTitle"`
	Category         string         `json:"category"`
	PlainExplanation string         `json:"plainExplanation"`
	Penalties        []string       `json:"penalties"`
	StateVariations  StateVariation `json:"stateVariations"`
	Icon             string         `json:"icon"`
	Tags             []string       `json:"tags"`
	Source           string         `json:"source"`
	RelatedSections  []string       `json:"relatedSections,omitempty"`
	ImportantNotes   []string       `json:"importantNotes,omitempty"`
}
