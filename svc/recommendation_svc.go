package svc

import (
	"fmt"
	"sort"

	"benefits-advisor-core/svc/models"
)

// Synthesize converts a session's final score map into the full
// recommendation set: one entry per catalog benefit, sorted by descending
// score. Ties preserve catalog order.
func Synthesize(session *models.SessionState) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0, models.NumBenefitCategories)
	for i := 0; i < models.NumBenefitCategories; i++ {
		benefit := models.BenefitCategory(i)
		score := session.Scores[benefit]
		recommendations = append(recommendations, models.Recommendation{
			Benefit:    benefit,
			Score:      score,
			Confidence: confidence(score),
			Priority:   models.TierForScore(score),
			Details:    coverageDetails(benefit, score, &session.Profile),
			Rationale:  rationale(benefit, score, &session.Profile),
		})
	}
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	return recommendations
}

// confidence maps a score to decisiveness: 1.0 when the belief is pinned at
// either extreme, 0.0 at the fully undecided midpoint.
func confidence(score float64) float64 {
	return 1 - binaryEntropy(score/100.0)
}

// coverageDetails computes the benefit-specific sizing payload. Amounts
// scale with the score so a stronger estimated need yields a richer plan.
func coverageDetails(benefit models.BenefitCategory, score float64, p *models.UserProfile) models.CoverageDetail {
	switch benefit {
	case models.BenefitLife:
		coverage := p.AnnualIncome*8*(1+(score-50)/100) + float64(p.Dependents)*100000
		duration := 65 - p.Age
		if duration > 30 {
			duration = 30
		}
		if duration < 0 {
			duration = 0
		}
		return models.CoverageDetail{
			"coverage_amount":           round2(coverage),
			"estimated_monthly_premium": round2(coverage / 10000 * 7),
			"term_years":                duration,
		}
	case models.BenefitDisability:
		monthlyBenefit := p.AnnualIncome / 12 * (0.60 + score/500)
		return models.CoverageDetail{
			"monthly_benefit":           round2(monthlyBenefit),
			"estimated_monthly_premium": round2(monthlyBenefit * 0.02),
		}
	case models.BenefitMedical:
		switch {
		case score >= 75:
			return models.CoverageDetail{
				"plan_tier":       "Gold",
				"deductible":      1000.0,
				"oop_max":         5000.0,
				"monthly_premium": 450.0,
			}
		case score >= 50:
			return models.CoverageDetail{
				"plan_tier":       "Silver",
				"deductible":      2500.0,
				"oop_max":         7000.0,
				"monthly_premium": 350.0,
			}
		default:
			return models.CoverageDetail{
				"plan_tier":       "Bronze HDHP",
				"deductible":      5000.0,
				"oop_max":         8000.0,
				"monthly_premium": 250.0,
			}
		}
	case models.BenefitHSA:
		contributionMax := 4150.0
		if p.HasDependents() {
			contributionMax = 8300.0
		}
		recommended := p.AnnualIncome * 0.05
		if recommended > contributionMax {
			recommended = contributionMax
		}
		return models.CoverageDetail{
			"annual_contribution_limit": contributionMax,
			"recommended_contribution":  round2(recommended),
			"estimated_tax_savings":     round2(recommended * 0.22),
		}
	case models.BenefitRetirement401k:
		rate := score / 6
		if rate < 6 {
			rate = 6
		}
		if rate > 15 {
			rate = 15
		}
		return models.CoverageDetail{
			"contribution_rate_pct": round2(rate),
			"annual_contribution":   round2(p.AnnualIncome * rate / 100),
		}
	default:
		plan := "Basic"
		if score >= 55 {
			plan = "Standard"
		}
		return models.CoverageDetail{
			"plan_tier":                 plan,
			"estimated_monthly_premium": round2(score * 0.5),
		}
	}
}

// rationale builds the one-sentence explanation shown next to a
// recommendation.
func rationale(benefit models.BenefitCategory, score float64, p *models.UserProfile) string {
	tier := models.TierForScore(score)
	switch {
	case benefit == models.BenefitLife && tier == models.TierCritical:
		return fmt.Sprintf("With %d dependents and $%.0f of annual income at stake, life insurance is essential protection for your family.", p.Dependents, p.AnnualIncome)
	case benefit == models.BenefitDisability && (tier == models.TierCritical || tier == models.TierRecommended):
		return "Your income would be difficult to replace; disability coverage protects your earning power."
	case benefit == models.BenefitMedical && score >= 80:
		return "Your profile and answers point to meaningful healthcare usage; a richer medical plan pays for itself."
	case benefit == models.BenefitHSA && score >= 55:
		return "A health savings account gives you triple tax advantages on healthcare spending."
	case benefit == models.BenefitPetInsurance && tier == models.TierNotNeeded:
		return "Nothing in your answers indicates pet-related expenses."
	default:
		return fmt.Sprintf("Estimated need score: %.0f/100.", score)
	}
}

func round2(v float64) float64 {
	if v < 0 {
		return float64(int64(v*100-0.5)) / 100
	}
	return float64(int64(v*100+0.5)) / 100
}
