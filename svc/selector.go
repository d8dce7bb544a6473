package svc

import (
	"sort"

	"benefits-advisor-core/svc/models"
)

// simulationWeight is the confidence weight used when hypothetically
// applying an answer during selection. Deliberately stronger than the real
// update weight so simulated entropy shifts are visible above float noise.
const simulationWeight = 10.0

// relevanceCap bounds the relevance multiplier's additive term.
const relevanceCap = 2.0

// undecidedFloor is the minimum undecided weight a benefit must carry to
// count toward a question's relevance.
const undecidedFloor = 0.3

// undecidedWeight measures how contested a score is: 1.0 at the midpoint,
// 0.0 at either extreme.
func undecidedWeight(score float64) float64 {
	d := score - 50
	if d < 0 {
		d = -d
	}
	return 1 - d/50
}

// simulateAnswer applies one hypothetical answer to a scratch copy and
// returns the resulting normalized entropy. The live map is never touched.
func simulateAnswer(scores models.ScoreMap, q *models.QuestionSpec, side models.ChoiceSide) float64 {
	scratch := scores.Clone()
	q.Correlations(side).ForEach(func(b models.BenefitCategory, corr float64) {
		scratch.Add(b, corr*simulationWeight)
	})
	return NormalizedEntropy(scratch)
}

// scoreQuestion computes a question's selection score against the current
// score map: the expected entropy reduction over its two answers, floored
// at zero, scaled by a relevance multiplier that favors questions touching
// contested benefits.
func scoreQuestion(scores models.ScoreMap, q *models.QuestionSpec) float64 {
	current := NormalizedEntropy(scores)
	entropyA := simulateAnswer(scores, q, models.SideA)
	entropyB := simulateAnswer(scores, q, models.SideB)

	gain := current - (entropyA+entropyB)/2
	if gain < 0 {
		gain = 0
	}

	var relevance float64
	accumulate := func(b models.BenefitCategory, corr float64) {
		w := undecidedWeight(scores[b])
		if w <= undecidedFloor {
			return
		}
		if corr < 0 {
			corr = -corr
		}
		relevance += corr * w
	}
	q.CorrelationsA.ForEach(accumulate)
	q.CorrelationsB.ForEach(accumulate)
	if relevance > relevanceCap {
		relevance = relevanceCap
	}

	return gain * (1 + relevance)
}

// SelectQuestion picks the unanswered, applicable question with the highest
// selection score. Ties keep the earliest bank entry, so the outcome is
// independent of map iteration order. Returns nil when no eligible question
// remains.
func SelectQuestion(session *models.SessionState, bank []*models.QuestionSpec) (*models.QuestionSpec, *models.SelectionRationale) {
	var (
		best      *models.QuestionSpec
		bestScore float64
	)
	candidates := make([]models.SelectionCandidate, 0, len(bank))

	for _, q := range bank {
		if session.HasAnswered(q.ID) || !q.AppliesTo(&session.Profile) {
			continue
		}
		score := scoreQuestion(session.Scores, q)
		candidates = append(candidates, models.SelectionCandidate{QuestionID: q.ID, Score: score})
		if best == nil || score > bestScore {
			best = q
			bestScore = score
		}
	}
	if best == nil {
		return nil, nil
	}

	return best, &models.SelectionRationale{
		Score:        bestScore,
		TopUndecided: topUndecided(session.Scores, 3),
		Candidates:   candidates,
	}
}

// topUndecided returns the slugs of the n benefits closest to the undecided
// midpoint, most contested first.
func topUndecided(scores models.ScoreMap, n int) []string {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return undecidedWeight(scores[order[i]]) > undecidedWeight(scores[order[j]])
	})
	if n > len(order) {
		n = len(order)
	}
	out := make([]string, 0, n)
	for _, idx := range order[:n] {
		out = append(out, models.BenefitCategory(idx).Slug())
	}
	return out
}
