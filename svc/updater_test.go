package svc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefits-advisor-core/svc/models"
)

func TestAnswerWeightGrowsWithHistory(t *testing.T) {
	assert.InDelta(t, 8.0, answerWeight(0), 1e-9)
	assert.InDelta(t, 8.8, answerWeight(1), 1e-9)
	assert.InDelta(t, 16.0, answerWeight(10), 1e-9)
}

func TestApplyAnswerMovesScoresAndLogs(t *testing.T) {
	session := newTestSession(sampleProfile())
	q := &models.QuestionSpec{
		ID:            "up",
		Text:          "t",
		ChoiceA:       "a",
		ChoiceB:       "b",
		CorrelationsA: models.CorrelationMap{models.BenefitPetInsurance: 0.5, models.BenefitLegalServices: -0.25},
		CorrelationsB: models.CorrelationMap{},
	}

	pet := session.Scores[models.BenefitPetInsurance]
	legal := session.Scores[models.BenefitLegalServices]

	answer := ApplyAnswer(session, q, models.SideA, 0.123)

	assert.InDelta(t, pet+0.5*8.0, session.Scores[models.BenefitPetInsurance], 1e-9)
	assert.InDelta(t, legal-0.25*8.0, session.Scores[models.BenefitLegalServices], 1e-9)

	require.Len(t, session.Answered, 1)
	assert.Equal(t, "up", answer.QuestionID)
	assert.Equal(t, models.SideA, answer.Side)
	assert.InDelta(t, 8.0, answer.Weight, 1e-9)
	assert.InDelta(t, 0.123, answer.SelectionScore, 1e-9)
}

func TestApplyAnswerClampsAtBounds(t *testing.T) {
	session := newTestSession(&models.UserProfile{Age: 30})
	session.Scores.Set(models.BenefitMedical, 99)
	session.Scores.Set(models.BenefitAccident, 1)

	q := &models.QuestionSpec{
		ID:            "clamp",
		Text:          "t",
		ChoiceA:       "a",
		ChoiceB:       "b",
		CorrelationsA: models.CorrelationMap{models.BenefitMedical: 0.9, models.BenefitAccident: -0.9},
		CorrelationsB: models.CorrelationMap{},
	}
	ApplyAnswer(session, q, models.SideA, 0)

	assert.Equal(t, 100.0, session.Scores[models.BenefitMedical])
	assert.Equal(t, 0.0, session.Scores[models.BenefitAccident])
}
