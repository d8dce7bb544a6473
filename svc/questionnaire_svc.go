package svc

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	db "benefits-advisor-core/db"
	"benefits-advisor-core/svc/models"
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var currentLogLevel = LogLevelInfo

func logf(level int, format string, v ...interface{}) {
	if level >= currentLogLevel {
		log.Printf(format, v...)
	}
}

var (
	// ErrSessionDone rejects answers submitted after the session reached its
	// terminal state.
	ErrSessionDone = errors.New("session is done")
	// ErrUnknownQuestion rejects answers referencing a question id not in
	// the bank.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrQuestionAlreadyAnswered enforces the at-most-once answer rule.
	ErrQuestionAlreadyAnswered = errors.New("question already answered")
	// ErrQuestionNotApplicable rejects answers to questions filtered out by
	// the profile's demographics.
	ErrQuestionNotApplicable = errors.New("question not applicable to profile")
	// ErrInvalidChoice rejects answer sides other than A or B.
	ErrInvalidChoice = errors.New("invalid choice side")
)

const sessionStateKey = "SessionState"

// QuestionnaireService runs adaptive benefit-need sessions: it seeds priors
// from the profile, picks the most informative next question, applies
// answers, and decides when to stop. Sessions are persisted in the KV store
// keyed by session id, so any instance can resume any session.
type QuestionnaireService struct {
	kvStore *db.KeyValueStore
	bank    []*models.QuestionSpec
	byID    map[string]*models.QuestionSpec
}

// NewQuestionnaireService initializes the service. A nil bank falls back to
// the built-in question catalog.
func NewQuestionnaireService(kvStore *db.KeyValueStore, bank []*models.QuestionSpec) *QuestionnaireService {
	if bank == nil {
		bank = models.DefaultQuestionBank()
	}
	byID := make(map[string]*models.QuestionSpec, len(bank))
	for _, q := range bank {
		byID[q.ID] = q
	}
	return &QuestionnaireService{
		kvStore: kvStore,
		bank:    bank,
		byID:    byID,
	}
}

// QuestionBank exposes the read-only bank this service runs against.
func (qsvc *QuestionnaireService) QuestionBank() []*models.QuestionSpec {
	return qsvc.bank
}

// CreateSession validates the profile, seeds the prior score map, and
// persists a new ACTIVE session.
func (qsvc *QuestionnaireService) CreateSession(input *models.CreateSessionInput) (*models.CreateSessionOutput, error) {
	if err := input.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	config := models.DefaultSessionConfig()
	if input.Config != nil {
		config = *input.Config
	}
	if config.MinQuestions < 1 || config.MaxQuestions < config.MinQuestions {
		return nil, fmt.Errorf("invalid session config: min=%d max=%d", config.MinQuestions, config.MaxQuestions)
	}

	session := &models.SessionState{
		ID:       "qs_" + uuid.New().String(),
		Profile:  input.Profile,
		Scores:   EstimatePriors(&input.Profile),
		Answered: make([]models.AnsweredQuestion, 0, config.MaxQuestions),
		Status:   models.SessionActive,
		Config:   config,
	}

	if err := qsvc.storeSession(session); err != nil {
		return nil, err
	}

	logf(LogLevelInfo, "created session %s (age=%d dependents=%d)", session.ID, input.Profile.Age, input.Profile.Dependents)
	return &models.CreateSessionOutput{
		Session:  session,
		Progress: qsvc.progress(session),
	}, nil
}

// GetSession loads a persisted session by id.
func (qsvc *QuestionnaireService) GetSession(sessionID string) (*models.SessionState, error) {
	value, err := qsvc.kvStore.Retrieve(sessionID, sessionStateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve session %s: %w", sessionID, err)
	}
	session, ok := value.(*models.SessionState)
	if !ok {
		if v, ok := value.(models.SessionState); ok {
			return &v, nil
		}
		return nil, fmt.Errorf("unexpected session type %T for %s", value, sessionID)
	}
	return session, nil
}

// NextQuestion selects the highest-information unanswered question. When a
// stopping rule fires, or no eligible question remains, the session flips
// to DONE and the output carries a nil Question.
func (qsvc *QuestionnaireService) NextQuestion(sessionID string) (*models.NextQuestionOutput, error) {
	session, err := qsvc.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == models.SessionDone {
		return &models.NextQuestionOutput{Progress: qsvc.progress(session)}, nil
	}

	if qsvc.shouldStop(session) {
		if err := qsvc.markDone(session); err != nil {
			return nil, err
		}
		return &models.NextQuestionOutput{Progress: qsvc.progress(session)}, nil
	}

	question, rationale := SelectQuestion(session, qsvc.bank)
	if question == nil {
		if err := qsvc.markDone(session); err != nil {
			return nil, err
		}
		return &models.NextQuestionOutput{Progress: qsvc.progress(session)}, nil
	}

	logf(LogLevelDebug, "session %s selected %s (score=%.4f)", session.ID, question.ID, rationale.Score)
	return &models.NextQuestionOutput{
		Question:  question,
		Selection: rationale,
		Progress:  qsvc.progress(session),
	}, nil
}

// SubmitAnswer applies one answer to the session's belief state. The
// question's selection score is recomputed against the live map right
// before the update, so out-of-band answers still feed the
// diminishing-returns rule honestly.
func (qsvc *QuestionnaireService) SubmitAnswer(sessionID string, input *models.SubmitAnswerInput) (*models.SubmitAnswerOutput, error) {
	session, err := qsvc.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == models.SessionDone {
		return nil, ErrSessionDone
	}
	if !input.Side.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChoice, input.Side)
	}
	question, ok := qsvc.byID[input.QuestionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, input.QuestionID)
	}
	if session.HasAnswered(input.QuestionID) {
		return nil, fmt.Errorf("%w: %s", ErrQuestionAlreadyAnswered, input.QuestionID)
	}
	if !question.AppliesTo(&session.Profile) {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotApplicable, input.QuestionID)
	}

	selectionScore := scoreQuestion(session.Scores, question)
	answer := ApplyAnswer(session, question, input.Side, selectionScore)

	done := qsvc.shouldStop(session)
	if done {
		session.Status = models.SessionDone
	}
	if err := qsvc.storeSession(session); err != nil {
		return nil, err
	}

	logf(LogLevelDebug, "session %s answered %s/%s (weight=%.2f done=%t)", session.ID, answer.QuestionID, answer.Side, answer.Weight, done)
	return &models.SubmitAnswerOutput{
		Answer:   answer,
		Done:     done,
		Progress: qsvc.progress(session),
	}, nil
}

// Finalize closes the session if still active and synthesizes the
// recommendation set from the final score map. Finalizing an already DONE
// session is valid and idempotent.
func (qsvc *QuestionnaireService) Finalize(sessionID string) (*models.FinalizeOutput, error) {
	session, err := qsvc.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionDone {
		if err := qsvc.markDone(session); err != nil {
			return nil, err
		}
	}

	recommendations := Synthesize(session)
	logf(LogLevelInfo, "finalized session %s after %d answers", session.ID, session.QuestionsAnswered())
	return &models.FinalizeOutput{
		Recommendations: recommendations,
		Progress:        qsvc.progress(session),
	}, nil
}

// DeleteSession removes all persisted state for a session.
func (qsvc *QuestionnaireService) DeleteSession(sessionID string) error {
	if err := qsvc.kvStore.DeleteOwner(sessionID); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

// shouldStop evaluates the stopping rules in fixed priority order:
// hard question cap, bank exhaustion, entropy convergence, diminishing
// selection returns. The last two only fire at or past the minimum floor.
func (qsvc *QuestionnaireService) shouldStop(session *models.SessionState) bool {
	answered := session.QuestionsAnswered()
	if answered >= session.Config.MaxQuestions {
		return true
	}

	remaining := 0
	for _, q := range qsvc.bank {
		if !session.HasAnswered(q.ID) && q.AppliesTo(&session.Profile) {
			remaining++
		}
	}
	if remaining == 0 {
		return true
	}

	if answered < session.Config.MinQuestions {
		return false
	}

	if NormalizedEntropy(session.Scores) < session.Config.EntropyThreshold {
		return true
	}

	if answered >= 3 {
		var sum float64
		for _, a := range session.Answered[answered-3:] {
			sum += a.SelectionScore
		}
		if sum/3 < session.Config.DiminishingGainThreshold {
			return true
		}
	}
	return false
}

func (qsvc *QuestionnaireService) markDone(session *models.SessionState) error {
	session.Status = models.SessionDone
	return qsvc.storeSession(session)
}

func (qsvc *QuestionnaireService) storeSession(session *models.SessionState) error {
	if err := qsvc.kvStore.Store(session.ID, sessionStateKey, *session, len(session.Answered)+1); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.ID, err)
	}
	return nil
}

func (qsvc *QuestionnaireService) progress(session *models.SessionState) models.Progress {
	return models.Progress{
		QuestionsAnswered: session.QuestionsAnswered(),
		CatalogSize:       models.NumBenefitCategories,
		Entropy:           NormalizedEntropy(session.Scores),
	}
}
