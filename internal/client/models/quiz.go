package models

import "math"

// QuizQuestion is the subset of a term delivered by the quiz endpoint.
// The term itself stays server-side until the answer is graded.
type QuizQuestion struct {
	ID         int64      `json:"id"`
	Definition string     `json:"definition"`
	Example    string     `json:"example"`
	Difficulty Difficulty `json:"difficulty"`
}

// AnswerFeedback is the grading result for one submitted answer.
type AnswerFeedback struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	RealWorld     string `json:"real_world"`
}

// ScoreTally is the running count of correct vs. answered questions in
// one quiz session. Total grows by exactly one per graded answer.
type ScoreTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percentage returns round(correct/total*100), or 0 for an empty tally.
func (t ScoreTally) Percentage() int {
	if t.Total == 0 {
		return 0
	}
	return int(math.Round(float64(t.Correct) / float64(t.Total) * 100))
}

// Score is a persisted quiz result from the score-history endpoints.
type Score struct {
	ID         int64   `json:"id"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	CreatedAt  string  `json:"created_at"`
}

// Stats is the aggregate snapshot shown on the statistics view.
type Stats struct {
	TotalUsers             int     `json:"total_users"`
	TotalQuizzes           int     `json:"total_quizzes"`
	AverageScore           float64 `json:"average_score"`
	TotalQuestionsAnswered int     `json:"total_questions_answered"`
}
