package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed data/quiz.json
var quizJSON []byte

var (
	// ErrPackNotFound indicates no pack with the given id exists.
	ErrPackNotFound = errors.New("quiz pack not found")
	// ErrNoAnswers indicates a submission carried no answers at all.
	ErrNoAnswers = errors.New("answers are required")
)

type dataset struct {
	Packs     []Pack                `json:"packs"`
	Questions map[string][]Question `json:"questions"`
	Badges    []Badge               `json:"badges"`
}

// Service grades quiz attempts against the embedded question bank. Grading is
// stateless; progress-based badges are the client's concern.
type Service struct {
	data dataset
}

// NewService parses the embedded dataset and verifies every pack has questions.
func NewService() (*Service, error) {
	var data dataset
	if err := json.Unmarshal(quizJSON, &data); err != nil {
		return nil, fmt.Errorf("quiz: parse dataset: %w", err)
	}
	for _, pack := range data.Packs {
		if len(data.Questions[pack.ID]) == 0 {
			return nil, fmt.Errorf("quiz: pack %q has no questions", pack.ID)
		}
	}
	return &Service{data: data}, nil
}

// Packs lists quiz packs, optionally narrowed to one state.
func (s *Service) Packs(state string) []Pack {
	out := make([]Pack, 0, len(s.data.Packs))
	for _, pack := range s.data.Packs {
		if state != "" && pack.State != state {
			continue
		}
		out = append(out, pack)
	}
	return out
}

// Questions returns the client-facing questions of a pack, without the
// answer key.
func (s *Service) Questions(packID string) ([]QuestionView, error) {
	questions, ok := s.data.Questions[packID]
	if !ok {
		return nil, ErrPackNotFound
	}
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, QuestionView{
			ID:         q.ID,
			Question:   q.Question,
			Options:    q.Options,
			Reference:  q.Reference,
			Difficulty: q.Difficulty,
		})
	}
	return views, nil
}

// Grade scores a submission against the pack's answer key. Unanswered
// questions score zero and are reported with a selected index of -1.
func (s *Service) Grade(sub Submission) (Result, error) {
	questions, ok := s.data.Questions[sub.PackID]
	if !ok {
		return Result{}, ErrPackNotFound
	}
	if len(sub.Answers) == 0 {
		return Result{}, ErrNoAnswers
	}

	result := Result{
		PackID:       sub.PackID,
		Total:        len(questions),
		Answers:      make([]AnswerResult, 0, len(questions)),
		EarnedBadges: []Badge{},
	}
	for _, q := range questions {
		selected, answered := sub.Answers[q.ID]
		if !answered {
			selected = -1
		}
		correct := answered && selected == q.CorrectAnswer
		if correct {
			result.Score++
		}
		result.Answers = append(result.Answers, AnswerResult{
			QuestionID:    q.ID,
			Selected:      selected,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
			Explanation:   q.Explanation,
		})
	}
	result.Percentage = result.Score * 100 / result.Total
	if result.Score == result.Total {
		if badge, ok := s.badge("perfect-score"); ok {
			result.EarnedBadges = append(result.EarnedBadges, badge)
		}
	}
	return result, nil
}

// Badges returns the full badge catalog.
func (s *Service) Badges() []Badge {
	return s.data.Badges
}

func (s *Service) badge(id string) (Badge, bool) {
	for _, b := range s.data.Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
