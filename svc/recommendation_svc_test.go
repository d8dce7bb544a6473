package svc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefits-advisor-core/svc/models"
)

func sessionWithScores(profile *models.UserProfile, set map[models.BenefitCategory]float64) *models.SessionState {
	session := newTestSession(profile)
	for b, score := range set {
		session.Scores.Set(b, score)
	}
	return session
}

func TestSynthesizeCoversWholeCatalogSorted(t *testing.T) {
	recs := Synthesize(newTestSession(sampleProfile()))
	require.Len(t, recs, models.NumBenefitCategories)

	seen := make(map[models.BenefitCategory]bool)
	for i, rec := range recs {
		assert.False(t, seen[rec.Benefit], "duplicate benefit %s", rec.Benefit)
		seen[rec.Benefit] = true
		assert.NotEmpty(t, rec.Rationale)
		assert.NotEmpty(t, rec.Details)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Score, rec.Score)
		}
	}
}

func TestTierBoundaries(t *testing.T) {
	assert.Equal(t, models.TierCritical, models.TierForScore(100))
	assert.Equal(t, models.TierCritical, models.TierForScore(95))
	assert.Equal(t, models.TierRecommended, models.TierForScore(94.999))
	assert.Equal(t, models.TierRecommended, models.TierForScore(80))
	assert.Equal(t, models.TierOptional, models.TierForScore(79.999))
	assert.Equal(t, models.TierOptional, models.TierForScore(55))
	assert.Equal(t, models.TierNotNeeded, models.TierForScore(54.999))
	assert.Equal(t, models.TierNotNeeded, models.TierForScore(0))
}

func TestConfidenceExtremes(t *testing.T) {
	assert.InDelta(t, 1.0, confidence(0), 1e-9)
	assert.InDelta(t, 1.0, confidence(100), 1e-9)
	assert.InDelta(t, 0.0, confidence(50), 1e-9)
	assert.Greater(t, confidence(90), confidence(60))
}

func TestLifeCoverageDetails(t *testing.T) {
	profile := &models.UserProfile{Age: 40, AnnualIncome: 100000, Dependents: 2}
	details := coverageDetails(models.BenefitLife, 90, profile)

	// income*8 scaled by score, plus a per-dependent cushion
	assert.InDelta(t, 100000*8*1.4+200000, details["coverage_amount"].(float64), 0.01)
	assert.Equal(t, 25, details["term_years"])
}

func TestDisabilityCoverageDetails(t *testing.T) {
	profile := &models.UserProfile{Age: 40, AnnualIncome: 120000}
	details := coverageDetails(models.BenefitDisability, 75, profile)

	monthly := details["monthly_benefit"].(float64)
	assert.InDelta(t, 120000.0/12*(0.60+75.0/500), monthly, 0.01)
	assert.InDelta(t, monthly*0.02, details["estimated_monthly_premium"].(float64), 0.01)
}

func TestMedicalPlanTiers(t *testing.T) {
	profile := &models.UserProfile{Age: 40}

	assert.Equal(t, "Gold", coverageDetails(models.BenefitMedical, 80, profile)["plan_tier"])
	assert.Equal(t, "Silver", coverageDetails(models.BenefitMedical, 60, profile)["plan_tier"])
	assert.Equal(t, "Bronze HDHP", coverageDetails(models.BenefitMedical, 40, profile)["plan_tier"])
}

func TestHSAContributionCaps(t *testing.T) {
	family := &models.UserProfile{Age: 40, AnnualIncome: 300000, Dependents: 1}
	details := coverageDetails(models.BenefitHSA, 70, family)
	assert.Equal(t, 8300.0, details["annual_contribution_limit"])
	assert.Equal(t, 8300.0, details["recommended_contribution"], "five percent of income exceeds the cap")

	single := &models.UserProfile{Age: 40, AnnualIncome: 60000}
	details = coverageDetails(models.BenefitHSA, 70, single)
	assert.Equal(t, 4150.0, details["annual_contribution_limit"])
	assert.InDelta(t, 3000.0, details["recommended_contribution"].(float64), 0.01)
	assert.InDelta(t, 660.0, details["estimated_tax_savings"].(float64), 0.01)
}

func TestRetirementContributionRateBounds(t *testing.T) {
	profile := &models.UserProfile{Age: 40, AnnualIncome: 100000}

	low := coverageDetails(models.BenefitRetirement401k, 20, profile)
	assert.Equal(t, 6.0, low["contribution_rate_pct"])

	high := coverageDetails(models.BenefitRetirement401k, 100, profile)
	assert.Equal(t, 15.0, high["contribution_rate_pct"])

	mid := coverageDetails(models.BenefitRetirement401k, 60, profile)
	assert.InDelta(t, 10.0, mid["contribution_rate_pct"].(float64), 1e-9)
}

func TestRationaleTemplates(t *testing.T) {
	profile := sampleProfile()

	critical := rationale(models.BenefitLife, 96, profile)
	assert.Contains(t, critical, "dependents")

	disability := rationale(models.BenefitDisability, 85, profile)
	assert.Contains(t, disability, "earning power")

	pet := rationale(models.BenefitPetInsurance, 20, profile)
	assert.Contains(t, pet, "pet")

	fallback := rationale(models.BenefitLegalServices, 42, profile)
	assert.Contains(t, fallback, "42/100")
}

func TestSynthesizeTiersFollowScores(t *testing.T) {
	session := sessionWithScores(&models.UserProfile{Age: 30}, map[models.BenefitCategory]float64{
		models.BenefitLife:         96,
		models.BenefitMedical:      82,
		models.BenefitDental:       60,
		models.BenefitPetInsurance: 10,
	})
	recs := Synthesize(session)

	byBenefit := make(map[models.BenefitCategory]models.Recommendation)
	for _, r := range recs {
		byBenefit[r.Benefit] = r
	}
	assert.Equal(t, models.TierCritical, byBenefit[models.BenefitLife].Priority)
	assert.Equal(t, models.TierRecommended, byBenefit[models.BenefitMedical].Priority)
	assert.Equal(t, models.TierOptional, byBenefit[models.BenefitDental].Priority)
	assert.Equal(t, models.TierNotNeeded, byBenefit[models.BenefitPetInsurance].Priority)
}
