package models

// Progress reports where a session stands after an operation.
type Progress struct {
	QuestionsAnswered int     `json:"questions_answered"`
	CatalogSize       int     `json:"catalog_size"`
	Entropy           float64 `json:"entropy"`
}

// SelectionCandidate is one eligible question's score during selection.
type SelectionCandidate struct {
	QuestionID string  `json:"question_id"`
	Score      float64 `json:"score"`
}

// SelectionRationale is the advisory snapshot recorded for the winning
// question: why it was picked and what it was picked over. It is caller
// transparency output, not engine state.
type SelectionRationale struct {
	Score float64 `json:"score"`
	// TopUndecided lists the three benefits currently closest to the
	// undecided midpoint, by slug.
	TopUndecided []string             `json:"top_undecided"`
	Candidates   []SelectionCandidate `json:"candidates"`
}

// CreateSessionOutput returns the freshly seeded session.
type CreateSessionOutput struct {
	Session  *SessionState `json:"session"`
	Progress Progress      `json:"progress"`
}

// NextQuestionOutput carries the selected question, or a nil Question when
// the session has reached a terminal state.
type NextQuestionOutput struct {
	Question  *QuestionSpec       `json:"question,omitempty"`
	Selection *SelectionRationale `json:"selection,omitempty"`
	Progress  Progress            `json:"progress"`
}

// SubmitAnswerOutput confirms one applied answer.
type SubmitAnswerOutput struct {
	Answer   AnsweredQuestion `json:"answer"`
	Done     bool             `json:"done"`
	Progress Progress         `json:"progress"`
}

// FinalizeOutput is the end-of-session artifact.
type FinalizeOutput struct {
	Recommendations []Recommendation `json:"recommendations"`
	Progress        Progress         `json:"progress"`
}
