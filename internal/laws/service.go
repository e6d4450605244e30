package laws

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

//go:embed data/laws.json
var lawsJSON []byte

// Service serves the curated law database. The dataset is embedded and
// read-only; the service holds no mutable state.
type Service struct {
	laws []LawEntry
}

// NewService parses the embedded dataset.
func NewService() (*Service, error) {
	var entries []LawEntry
	if err := json.Unmarshal(lawsJSON, &entries); err != nil {
		return nil, fmt.Errorf("laws: parse dataset: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("laws: dataset is empty")
	}
	return &Service{laws: entries}, nil
}

// All returns every law entry.
func (s *Service) All() []LawEntry {
	return s.laws
}

// ByCategory returns the laws in the given category.
func (s *Service) ByCategory(category string) []LawEntry {
	out := make([]LawEntry, 0)
	for _, law := range s.laws {
		if law.Category == category {
			out = append(out, law)
		}
	}
	return out
}

// CategoryCounts returns the number of laws per category.
func (s *Service) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, law := range s.laws {
		counts[law.Category]++
	}
	return counts
}

// LawOfTheDay selects a law deterministically from the day of year, so every
// caller sees the same law on the same date.
func (s *Service) LawOfTheDay(now time.Time) LawEntry {
	return s.laws[now.YearDay()%len(s.laws)]
}

// Random returns a random law, optionally excluding one id.
func (s *Service) Random(excludeID string) LawEntry {
	filtered := s.laws
	if excludeID != "" {
		filtered = make([]LawEntry, 0, len(s.laws))
		for _, law := range s.laws {
			if law.ID != excludeID {
				filtered = append(filtered, law)
			}
		}
		if len(filtered) == 0 {
			filtered = s.laws
		}
	}
	return filtered[rand.Intn(len(filtered))]
}
