package models

// ScoreMap holds the current estimated need strength per benefit category,
// indexed by the category's dense id. Every value stays within [0, 100].
type ScoreMap []float64

// NewScoreMap returns a zeroed map covering the full catalog.
func NewScoreMap() ScoreMap {
	return make(ScoreMap, NumBenefitCategories)
}

// Clone returns an independent copy. Simulations must operate on a clone so
// the live session map is never aliased.
func (m ScoreMap) Clone() ScoreMap {
	out := make(ScoreMap, len(m))
	copy(out, m)
	return out
}

// Set assigns a clamped score.
func (m ScoreMap) Set(b BenefitCategory, score float64) {
	m[b] = ClampScore(score)
}

// Add applies an additive nudge and clamps the result.
func (m ScoreMap) Add(b BenefitCategory, delta float64) {
	m[b] = ClampScore(m[b] + delta)
}

// ToSlugMap converts to a slug-keyed map for serialization at the API edge.
func (m ScoreMap) ToSlugMap() map[string]float64 {
	out := make(map[string]float64, len(m))
	for i, score := range m {
		out[BenefitCategory(i).Slug()] = score
	}
	return out
}

// ClampScore bounds a score to the valid [0, 100] range.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
