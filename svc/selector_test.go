package svc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefits-advisor-core/svc/models"
)

func newTestSession(profile *models.UserProfile) *models.SessionState {
	return &models.SessionState{
		ID:      "qs_test",
		Profile: *profile,
		Scores:  EstimatePriors(profile),
		Status:  models.SessionActive,
		Config:  models.DefaultSessionConfig(),
	}
}

func TestSelectQuestionSkipsAnsweredAndInapplicable(t *testing.T) {
	session := newTestSession(&models.UserProfile{Age: 30}) // no dependents
	bank := models.DefaultQuestionBank()

	session.Answered = append(session.Answered, models.AnsweredQuestion{QuestionID: "Q1_risk_behavior"})

	question, rationale := SelectQuestion(session, bank)
	require.NotNil(t, question)
	require.NotNil(t, rationale)

	for _, c := range rationale.Candidates {
		assert.NotEqual(t, "Q1_risk_behavior", c.QuestionID)
		assert.NotEqual(t, "Q11_childcare", c.QuestionID, "dependents-gated question offered to a profile without dependents")
		assert.NotEqual(t, "Q13_kids_activities", c.QuestionID)
	}
}

func TestSelectQuestionExhaustedBankReturnsNil(t *testing.T) {
	session := newTestSession(&models.UserProfile{Age: 30})
	bank := models.DefaultQuestionBank()
	for _, q := range bank {
		session.Answered = append(session.Answered, models.AnsweredQuestion{QuestionID: q.ID})
	}

	question, rationale := SelectQuestion(session, bank)
	assert.Nil(t, question)
	assert.Nil(t, rationale)
}

func TestSelectQuestionDoesNotMutateScores(t *testing.T) {
	session := newTestSession(sampleProfile())
	before := session.Scores.Clone()

	_, _ = SelectQuestion(session, models.DefaultQuestionBank())

	assert.Equal(t, before, session.Scores)
}

func TestSelectQuestionIsDeterministic(t *testing.T) {
	bank := models.DefaultQuestionBank()
	first, _ := SelectQuestion(newTestSession(sampleProfile()), bank)
	require.NotNil(t, first)

	for i := 0; i < 20; i++ {
		q, _ := SelectQuestion(newTestSession(sampleProfile()), bank)
		require.NotNil(t, q)
		assert.Equal(t, first.ID, q.ID)
	}
}

func TestSelectQuestionTieBreaksOnBankOrder(t *testing.T) {
	corr := models.CorrelationMap{models.BenefitMedical: 0.5}
	twin := func(id string) *models.QuestionSpec {
		return &models.QuestionSpec{
			ID:            id,
			Text:          "t",
			ChoiceA:       "a",
			ChoiceB:       "b",
			CorrelationsA: corr,
			CorrelationsB: models.CorrelationMap{models.BenefitMedical: -0.5},
		}
	}
	bank := []*models.QuestionSpec{twin("first"), twin("second")}

	session := newTestSession(&models.UserProfile{Age: 30})
	question, rationale := SelectQuestion(session, bank)
	require.NotNil(t, question)
	assert.Equal(t, "first", question.ID)
	assert.Len(t, rationale.Candidates, 2)
}

func TestSelectionRationaleTopUndecided(t *testing.T) {
	session := newTestSession(&models.UserProfile{Age: 30})
	for _, b := range models.AllBenefitCategories() {
		session.Scores.Set(b, 100)
	}
	session.Scores.Set(models.BenefitPetInsurance, 50)
	session.Scores.Set(models.BenefitDental, 55)
	session.Scores.Set(models.BenefitVision, 60)

	_, rationale := SelectQuestion(session, models.DefaultQuestionBank())
	require.NotNil(t, rationale)
	assert.Equal(t, []string{"pet_insurance", "dental", "vision"}, rationale.TopUndecided)
}

func TestScoreQuestionNeverNegative(t *testing.T) {
	session := newTestSession(&models.UserProfile{Age: 30})
	// A settled map: any answer pushes scores toward the middle, so raw gain
	// would be negative.
	for _, b := range models.AllBenefitCategories() {
		session.Scores.Set(b, 100)
	}

	for _, q := range models.DefaultQuestionBank() {
		assert.GreaterOrEqual(t, scoreQuestion(session.Scores, q), 0.0, q.ID)
	}
}
