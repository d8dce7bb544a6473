package svc

import "benefits-advisor-core/svc/models"

// baseUpdateWeight is the confidence weight of the first real answer.
// Each subsequent answer counts 10% more, so later answers refine an
// increasingly settled picture rather than being drowned out by priors.
const baseUpdateWeight = 8.0

// answerWeight returns the confidence weight for the next answer given how
// many answers came before it.
func answerWeight(priorAnswers int) float64 {
	return baseUpdateWeight * (1 + 0.1*float64(priorAnswers))
}

// ApplyAnswer applies one answer's correlations to the live score map and
// appends it to the session's answer log. selectionScore is the question's
// selector score at submission time; it feeds the diminishing-returns
// stopping rule.
func ApplyAnswer(session *models.SessionState, q *models.QuestionSpec, side models.ChoiceSide, selectionScore float64) models.AnsweredQuestion {
	weight := answerWeight(len(session.Answered))
	q.Correlations(side).ForEach(func(b models.BenefitCategory, corr float64) {
		session.Scores.Add(b, corr*weight)
	})

	answer := models.AnsweredQuestion{
		QuestionID:     q.ID,
		Side:           side,
		Weight:         weight,
		SelectionScore: selectionScore,
	}
	session.Answered = append(session.Answered, answer)
	return answer
}
