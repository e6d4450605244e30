package lawyers

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"legalease-backend/internal/shared/telemetry"
)

//go:embed data/lawyers.json
var lawyersJSON []byte

var (
	// ErrNotFound indicates no lawyer with the given id exists.
	ErrNotFound = errors.New("lawyer not found")
	// ErrConsentRequired indicates the contact request lacked explicit consent.
	ErrConsentRequired = errors.New("consent is required")
	// ErrInvalidContact indicates the contact request was incomplete.
	ErrInvalidContact = errors.New("name and a contact channel are required")
)

// Service serves the curated lawyer directory and the consent-gated contact
// flow. Contact requests are acknowledged and logged, never stored.
type Service struct {
	lawyers []Lawyer
}

// NewService parses the embedded dataset.
func NewService() (*Service, error) {
	var entries []Lawyer
	if err := json.Unmarshal(lawyersJSON, &entries); err != nil {
		return nil, fmt.Errorf("lawyers: parse dataset: %w", err)
	}
	return &Service{lawyers: entries}, nil
}

// Filter returns lawyers matching every non-empty filter field.
func (s *Service) Filter(f Filters) []Lawyer {
	out := make([]Lawyer, 0)
	for _, lawyer := range s.lawyers {
		if f.State != "" && lawyer.State != f.State {
			continue
		}
		if f.PracticeArea != "" && !contains(lawyer.PracticeAreas, f.PracticeArea) {
			continue
		}
		if f.FeeType != "" && lawyer.FeeType != f.FeeType {
			continue
		}
		if f.Language != "" && !contains(lawyer.Languages, f.Language) {
			continue
		}
		out = append(out, lawyer)
	}
	return out
}

// ByID returns a single lawyer.
func (s *Service) ByID(id string) (Lawyer, error) {
	for _, lawyer := range s.lawyers {
		if lawyer.ID == id {
			return lawyer, nil
		}
	}
	return Lawyer{}, ErrNotFound
}

// Contact validates a consent-gated contact request and returns a receipt.
// Refused consent and incomplete requests fail before anything is logged.
func (s *Service) Contact(lawyerID string, req ContactRequest) (ContactReceipt, error) {
	lawyer, err := s.ByID(lawyerID)
	if err != nil {
		return ContactReceipt{}, err
	}
	if !req.Consent {
		return ContactReceipt{}, ErrConsentRequired
	}
	if strings.TrimSpace(req.Name) == "" ||
		(strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.Phone) == "") {
		return ContactReceipt{}, ErrInvalidContact
	}

	receipt := ContactReceipt{
		RequestID: uuid.NewString(),
		LawyerID:  lawyer.ID,
		Status:    "accepted",
	}
	telemetry.Info("lawyers.contact_request", map[string]any{
		"request_id": receipt.RequestID,
		"lawyer_id":  lawyer.ID,
		"consent":    req.Consent,
	})
	return receipt, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
