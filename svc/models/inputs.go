package models

// CreateSessionInput starts a new questionnaire session.
type CreateSessionInput struct {
	Profile UserProfile `json:"profile"`
	// Config overrides the default stopping tuning when non-nil.
	Config *SessionConfig `json:"config,omitempty"`
}

// SubmitAnswerInput records the chosen side of one question.
type SubmitAnswerInput struct {
	QuestionID string     `json:"question_id"`
	Side       ChoiceSide `json:"side"`
}
