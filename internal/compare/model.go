package compare

// StateComparison describes how one jurisdiction applies a statutory section.
type StateComparison struct {
	State           string `json:"state"`
	Penalty         string `json:"penalty"`
	CompoundingFee  string `json:"compoundingFee"`
	AdditionalNotes string `json:"additionalNotes"`
	Severity        string `json:"severity"`
	CourtProcedure  string `json:"courtProcedure"`
	LicenseImpact   string `json:"licenseImpact"`
	VehicleImpact   string `json:"vehicleImpact"`
}

// Result is the two-state comparison returned to the caller.
type Result struct {
	State1         StateComparison `json:"state1"`
	State2         StateComparison `json:"state2"`
	KeyDifferences []string        `json:"keyDifferences"`
	Recommendation string          `json:"recommendation"`
}
