package lawyers

// Lawyer is one entry of the curated, verified lawyer directory.
type Lawyer struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Firm            string   `json:"firm"`
	PracticeAreas   []string `json:"practiceAreas"`
	YearsExperience int      `json:"yearsExperience"`
	State           string   `json:"state"`
	City            string   `json:"city"`
	Languages       []string `json:"languages"`
	FeeType         string   `json:"feeType"`
	FeeRange        string   `json:"feeRange,omitempty"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	Bio             string   `json:"bio"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	OfficeHours     string   `json:"officeHours"`
	Verified        bool     `json:"verified"`
	VerifiedDate    string   `json:"verifiedDate"`
	VerifiedBy      string   `json:"verifiedBy"`
	Availability    string   `json:"availability"`
	Specializations []string `json:"specializations"`
}

// Filters narrows a directory listing. Empty fields match everything.
type Filters struct {
	State        string
	PracticeArea string
	FeeType      string
	Language     string
}

// ContactRequest is a consent-gated request to be contacted by a lawyer.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Consent bool   `json:"consent"`
}

// ContactReceipt acknowledges an accepted contact request.
type ContactReceipt struct {
	RequestID string `json:"requestId"`
	LawyerID  string `json:"lawyerId"`
	Status    string `json:"status"`
}
