package svc

import (
	"fmt"
	"math"

	"benefits-advisor-core/svc/models"
)

// FinancialWellbeingScore grades the profile's financial footing on a 0-100
// scale: up to 40 points for low debt-to-income, up to 40 for emergency
// fund depth (6 months is full credit), and a household-stability base of
// 20 (15 with dependents).
func FinancialWellbeingScore(p *models.UserProfile) int {
	dti := p.TotalDebt / math.Max(1, p.AnnualIncome)
	dtiScore := math.Max(0, 40*(1-math.Min(dti, 1)))
	efScore := math.Min(40, p.EmergencyFundMonths()*(40.0/6.0))
	stability := 20.0
	if p.HasDependents() {
		stability = 15.0
	}
	return int(math.Round(math.Min(100, dtiScore+efScore+stability)))
}

// AssessRisk grades the profile across standing risk categories. The
// financial category is fully data-driven; the rest are coarse
// demographic reads meant as conversation starters, not diagnoses.
func AssessRisk(p *models.UserProfile) models.RiskAssessment {
	dti := p.DebtToIncome()
	efMonths := p.EmergencyFundMonths()

	var finScore int
	switch {
	case dti > 0.5:
		finScore += 30
	case dti > 0.3:
		finScore += 20
	case dti > 0.15:
		finScore += 10
	}
	switch {
	case efMonths < 1:
		finScore += 30
	case efMonths < 3:
		finScore += 20
	case efMonths < 6:
		finScore += 10
	}

	var financial models.RiskCategory
	financial.Name = "financial"
	switch {
	case finScore > 50:
		financial.Level = models.RiskCritical
		financial.Detail = fmt.Sprintf("URGENT: DTI %.1f%%, %.1f mo. savings.", dti*100, efMonths)
	case finScore > 30:
		financial.Level = models.RiskHigh
		financial.Detail = fmt.Sprintf("High stress. DTI %.1f%%. Build 3-6 mo. fund.", dti*100)
	case finScore > 15:
		financial.Level = models.RiskMedium
		financial.Detail = fmt.Sprintf("Moderate. Savings %.1f mo.; target 6.", efMonths)
	default:
		financial.Level = models.RiskLow
		financial.Detail = fmt.Sprintf("Strong foundation. Savings %.1f mo.; DTI %.1f%%.", efMonths, dti*100)
	}

	health := models.RiskCategory{Name: "health", Level: models.RiskLow, Detail: "Maintain healthy habits."}
	if p.Age > 40 {
		health = models.RiskCategory{Name: "health", Level: models.RiskMedium, Detail: "Age-adjusted preventive care recommended."}
	}

	family := models.RiskCategory{Name: "family", Level: models.RiskLow, Detail: "Limited dependent risk."}
	if p.HasDependents() {
		family = models.RiskCategory{Name: "family", Level: models.RiskMedium, Detail: "Plan for dependents and childcare."}
	}

	disability := models.RiskCategory{Name: "disability", Level: models.RiskMedium, Detail: "Income protection is important."}
	if p.AnnualIncome > 100000 {
		disability.Level = models.RiskHigh
	}

	return models.RiskAssessment{
		FinancialWellbeing: FinancialWellbeingScore(p),
		Categories: []models.RiskCategory{
			financial,
			health,
			{Name: "mental_health", Level: models.RiskMedium, Detail: "Use available mental health benefits proactively."},
			family,
			{Name: "retirement", Level: models.RiskMedium, Detail: "Increase contributions if below 10%."},
			disability,
			{Name: "career", Level: models.RiskLow, Detail: "Continue investing in growth."},
			{Name: "worklife", Level: models.RiskMedium, Detail: "Balance workload and wellness."},
		},
	}
}
