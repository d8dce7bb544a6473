package svc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"benefits-advisor-core/svc/models"
)

func TestBinaryEntropy(t *testing.T) {
	assert.Equal(t, 0.0, binaryEntropy(0))
	assert.Equal(t, 0.0, binaryEntropy(1))
	assert.InDelta(t, 1.0, binaryEntropy(0.5), 1e-12)
	assert.InDelta(t, binaryEntropy(0.3), binaryEntropy(0.7), 1e-12)
	assert.Greater(t, binaryEntropy(0.5), binaryEntropy(0.9))
}

func TestNormalizedEntropyBounds(t *testing.T) {
	decided := models.NewScoreMap()
	for _, b := range models.AllBenefitCategories() {
		if b%2 == 0 {
			decided.Set(b, 100)
		}
	}
	assert.Equal(t, 0.0, NormalizedEntropy(decided))

	undecided := models.NewScoreMap()
	for _, b := range models.AllBenefitCategories() {
		undecided.Set(b, 50)
	}
	n := float64(models.NumBenefitCategories)
	want := n / (math.Log2(n) + 0.2)
	assert.InDelta(t, want, NormalizedEntropy(undecided), 1e-9)
}

func TestNormalizedEntropyFallsAsBeliefsPolarize(t *testing.T) {
	mid := models.NewScoreMap()
	polar := models.NewScoreMap()
	for _, b := range models.AllBenefitCategories() {
		mid.Set(b, 50)
		polar.Set(b, 90)
	}
	assert.Less(t, NormalizedEntropy(polar), NormalizedEntropy(mid))
}
