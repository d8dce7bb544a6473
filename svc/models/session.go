package models

import "encoding/json"

// SessionStatus tracks the one-way ACTIVE -> DONE state machine.
type SessionStatus int32

const (
	SessionActive SessionStatus = iota
	SessionDone
)

func (s SessionStatus) String() string {
	if s == SessionDone {
		return "done"
	}
	return "active"
}

// SessionConfig carries the stopping-rule tuning for one session.
type SessionConfig struct {
	MinQuestions int `json:"min_questions"`
	MaxQuestions int `json:"max_questions"`
	// EntropyThreshold is compared against the normalized uncertainty.
	EntropyThreshold float64 `json:"entropy_threshold"`
	// DiminishingGainThreshold is compared against the mean selection score
	// of the last three answered questions.
	DiminishingGainThreshold float64 `json:"diminishing_gain_threshold"`
}

// DefaultSessionConfig returns the standard tuning: sessions converge in
// 8-15 questions.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MinQuestions:             8,
		MaxQuestions:             15,
		EntropyThreshold:         2.5,
		DiminishingGainThreshold: 0.02,
	}
}

// SessionState owns everything one questionnaire run mutates: the profile,
// the score map, the answer log, and the stopping counters. A session is
// exclusively owned by one logical conversation and never shared.
type SessionState struct {
	ID       string             `json:"id"`
	Profile  UserProfile        `json:"profile"`
	Scores   ScoreMap           `json:"scores"`
	Answered []AnsweredQuestion `json:"answered"`
	Status   SessionStatus      `json:"status"`
	Config   SessionConfig      `json:"config"`
}

// HasAnswered reports whether the question id is already in the answer log.
func (s *SessionState) HasAnswered(questionID string) bool {
	for _, a := range s.Answered {
		if a.QuestionID == questionID {
			return true
		}
	}
	return false
}

// QuestionsAnswered returns the answer-log length.
func (s *SessionState) QuestionsAnswered() int {
	return len(s.Answered)
}

func (s *SessionState) MarshalBinary() ([]byte, error) {
	return json.Marshal(s)
}

func (s *SessionState) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, s)
}
