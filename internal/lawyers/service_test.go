package lawyers

import (
	"errors"
	"testing"
)

func TestFilterMatchesEveryField(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	all := svc.Filter(Filters{})
	if len(all) == 0 {
		t.Fatalf("expected directory entries")
	}

	maharashtra := svc.Filter(Filters{State: "Maharashtra"})
	for _, lawyer := range maharashtra {
		if lawyer.State != "Maharashtra" {
			t.Fatalf("expected only Maharashtra lawyers, got %q", lawyer.State)
		}
	}
	if len(maharashtra) == 0 || len(maharashtra) == len(all) {
		t.Fatalf("expected state filter to narrow results: %d of %d", len(maharashtra), len(all))
	}

	combined := svc.Filter(Filters{State: "Delhi", PracticeArea: "Traffic Law"})
	for _, lawyer := range combined {
		if lawyer.State != "Delhi" {
			t.Fatalf("expected Delhi lawyer, got %q", lawyer.State)
		}
		found := false
		for _, area := range lawyer.PracticeAreas {
			if area == "Traffic Law" {
				found = true
			}
		}
		if !found {
			t.Fatalf("lawyer %q does not practice Traffic Law", lawyer.ID)
		}
	}

	if got := svc.Filter(Filters{State: "Goa"}); len(got) != 0 {
		t.Fatalf("expected no lawyers for unlisted state, got %d", len(got))
	}
}

func TestByID(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	lawyer, err := svc.ByID("mh-001")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if lawyer.ID != "mh-001" {
		t.Fatalf("expected mh-001, got %q", lawyer.ID)
	}

	if _, err := svc.ByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContactRequiresConsent(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Contact("mh-001", ContactRequest{
		Name:  "Asha",
		Email: "asha@example.in",
	})
	if !errors.Is(err, ErrConsentRequired) {
		t.Fatalf("expected ErrConsentRequired, got %v", err)
	}
}

func TestContactRequiresNameAndChannel(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	cases := []struct {
		name string
		req  ContactRequest
	}{
		{"missing name", ContactRequest{Email: "a@example.in", Consent: true}},
		{"missing channels", ContactRequest{Name: "Asha", Consent: true}},
		{"whitespace only", ContactRequest{Name: "  ", Email: "  ", Consent: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Contact("mh-001", tc.req); !errors.Is(err, ErrInvalidContact) {
				t.Fatalf("expected ErrInvalidContact, got %v", err)
			}
		})
	}
}

func TestContactAccepted(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	receipt, err := svc.Contact("dl-001", ContactRequest{
		Name:    "Ravi",
		Phone:   "+91-98000-00000",
		Message: "Need help with a challan.",
		Consent: true,
	})
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	if receipt.RequestID == "" {
		t.Fatalf("expected a request id")
	}
	if receipt.LawyerID != "dl-001" {
		t.Fatalf("expected lawyer id dl-001, got %q", receipt.LawyerID)
	}
	if receipt.Status != "accepted" {
		t.Fatalf("expected status accepted, got %q", receipt.Status)
	}
}

func TestContactUnknownLawyer(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Contact("nope", ContactRequest{Name: "Asha", Email: "a@example.in", Consent: true})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
