package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMapClamping(t *testing.T) {
	m := NewScoreMap()
	require.Len(t, m, NumBenefitCategories)

	m.Set(BenefitMedical, 150)
	assert.Equal(t, 100.0, m[BenefitMedical])

	m.Set(BenefitMedical, -5)
	assert.Equal(t, 0.0, m[BenefitMedical])

	m.Set(BenefitMedical, 98)
	m.Add(BenefitMedical, 10)
	assert.Equal(t, 100.0, m[BenefitMedical])

	m.Add(BenefitMedical, -250)
	assert.Equal(t, 0.0, m[BenefitMedical])
}

func TestScoreMapCloneIsIndependent(t *testing.T) {
	m := NewScoreMap()
	m.Set(BenefitLife, 60)

	clone := m.Clone()
	clone.Add(BenefitLife, 30)

	assert.Equal(t, 60.0, m[BenefitLife])
	assert.Equal(t, 90.0, clone[BenefitLife])
}

func TestScoreMapToSlugMap(t *testing.T) {
	m := NewScoreMap()
	m.Set(BenefitPetInsurance, 42)

	slugs := m.ToSlugMap()
	require.Len(t, slugs, NumBenefitCategories)
	assert.Equal(t, 42.0, slugs["pet_insurance"])
}
