package quiz

// Pack is one themed quiz for a given state and difficulty.
type Pack struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Difficulty     string `json:"difficulty"`
	State          string `json:"state"`
	QuestionsCount int    `json:"questionsCount"`
	EstimatedTime  string `json:"estimatedTime"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
}

// Reference cites the statute a question is drawn from.
type Reference struct {
	Act     string `json:"act"`
	Section string `json:"section"`
	Source  string `json:"source"`
}

// Question is a multiple-choice question with the answer key.
type Question struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
	Reference     Reference `json:"reference"`
	Difficulty    string    `json:"difficulty"`
}

// QuestionView is the client-facing shape of a question. The answer key and
// explanation stay server-side until the attempt is graded.
type QuestionView struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Options    []string  `json:"options"`
	Reference  Reference `json:"reference"`
	Difficulty string    `json:"difficulty"`
}

// Badge is an achievement the grader can award.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Submission is one graded attempt: selected option index per question id.
// An omitted question counts as unanswered and scores zero.
type Submission struct {
	PackID  string         `json:"packId"`
	Answers map[string]int `json:"answers"`
}

// AnswerResult reports the grading of a single question.
type AnswerResult struct {
	QuestionID    string `json:"questionId"`
	Selected      int    `json:"selected"`
	CorrectAnswer int    `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

// Result is the graded outcome of a submission.
type Result struct {
	PackID       string         `json:"packId"`
	Score        int            `json:"score"`
	Total        int            `json:"total"`
	Percentage   int            `json:"percentage"`
	Answers      []AnswerResult `json:"answers"`
	EarnedBadges []Badge        `json:"earnedBadges"`
}
