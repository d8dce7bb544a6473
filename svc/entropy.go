package svc

import (
	"math"

	"benefits-advisor-core/svc/models"
)

// binaryEntropy returns the Shannon entropy of a Bernoulli(p) variable in
// bits. Zero at p=0 and p=1, maximal (1.0) at p=0.5.
func binaryEntropy(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}

// NormalizedEntropy measures aggregate uncertainty across the score map:
// the sum of per-benefit binary entropies of score/100, divided by
// log2(N)+0.2. Scores pinned at exactly 0 or 100 contribute nothing, so
// the value falls as beliefs polarize. The stopping rule compares this
// against SessionConfig.EntropyThreshold.
func NormalizedEntropy(scores models.ScoreMap) float64 {
	var sum float64
	for _, score := range scores {
		sum += binaryEntropy(score / 100.0)
	}
	return sum / (math.Log2(float64(len(scores))) + 0.2)
}
