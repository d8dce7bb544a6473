package svc

import "benefits-advisor-core/svc/models"

// EstimatePriors converts a profile into the initial score map. It runs a
// demographic rule pass followed by a financial adjustment pass; the order
// is significant and every nudge is additive and clamped immediately.
// Absent or zero financial fields fall back to neutral behavior instead of
// failing; structural validation happens at the boundary before this runs.
func EstimatePriors(p *models.UserProfile) models.ScoreMap {
	scores := demographicPriors(p)
	adjustWithFinancials(scores, p)
	return scores
}

func demographicPriors(p *models.UserProfile) models.ScoreMap {
	scores := models.NewScoreMap()
	age := p.Age
	hasKids := p.HasDependents()

	// Medical: everyone needs it, rising across age bands.
	switch {
	case age < 30:
		scores.Set(models.BenefitMedical, 65)
	case age < 50:
		scores.Set(models.BenefitMedical, 75)
	default:
		scores.Set(models.BenefitMedical, 85)
	}

	// Life insurance grows with age and family obligations.
	life := 35 + float64(age)*0.45
	if hasKids {
		life += 28
	}
	if p.MaritalStatus == models.MaritalMarried {
		life += 9
	}
	if life > 95 {
		life = 95
	}
	scores.Set(models.BenefitLife, life)

	// Disability peaks mid-career.
	switch {
	case age < 25:
		scores.Set(models.BenefitDisability, 40)
	case age < 55:
		scores.Set(models.BenefitDisability, 70)
	default:
		scores.Set(models.BenefitDisability, 50)
	}

	scores.Set(models.BenefitDental, 60)
	scores.Set(models.BenefitVision, 55)

	switch {
	case age < 40:
		scores.Set(models.BenefitLongTermCare, 10)
	case age < 55:
		scores.Set(models.BenefitLongTermCare, 35)
	default:
		scores.Set(models.BenefitLongTermCare, 65)
	}

	// Retirement urgency is inverse to remaining runway.
	urgency := 90 - float64(age)
	if urgency < 40 {
		urgency = 40
	}
	scores.Set(models.BenefitRetirement401k, urgency)

	scores.Set(models.BenefitHSA, 50)
	scores.Set(models.BenefitHealthcareFSA, 45)
	if hasKids {
		scores.Set(models.BenefitDependentCareFSA, 75)
	} else {
		scores.Set(models.BenefitDependentCareFSA, 10)
	}

	// Voluntary benefits start from a low baseline.
	scores.Set(models.BenefitAccident, 30)
	scores.Set(models.BenefitCriticalIllness, 25)
	scores.Set(models.BenefitHospitalIndemnity, 20)
	scores.Set(models.BenefitLegalServices, 15)
	scores.Set(models.BenefitIdentityTheft, 25)
	scores.Set(models.BenefitPetInsurance, 20)
	scores.Set(models.BenefitCommuterBenefits, 30)

	// Extended insurance catalog.
	suppLife := 20.0
	if hasKids {
		suppLife += 20
	}
	if p.MaritalStatus == models.MaritalMarried {
		suppLife += 5
	}
	scores.Set(models.BenefitSupplementalLife, suppLife)
	switch {
	case age < 30:
		scores.Set(models.BenefitAccidentalDeath, 35)
	case age < 50:
		scores.Set(models.BenefitAccidentalDeath, 30)
	default:
		scores.Set(models.BenefitAccidentalDeath, 25)
	}
	switch {
	case age < 40:
		scores.Set(models.BenefitCancerInsurance, 15)
	case age < 55:
		scores.Set(models.BenefitCancerInsurance, 30)
	default:
		scores.Set(models.BenefitCancerInsurance, 45)
	}
	scores.Set(models.BenefitTravelInsurance, 25)

	// Retirement and financial.
	switch {
	case age < 35:
		scores.Set(models.BenefitRoth401k, 55)
	case age < 50:
		scores.Set(models.BenefitRoth401k, 45)
	default:
		scores.Set(models.BenefitRoth401k, 30)
	}
	switch {
	case age < 30:
		scores.Set(models.BenefitFinancialPlanning, 40)
	case age < 50:
		scores.Set(models.BenefitFinancialPlanning, 55)
	default:
		scores.Set(models.BenefitFinancialPlanning, 60)
	}
	switch {
	case age < 30:
		scores.Set(models.BenefitStudentLoanAssistance, 55)
	case age < 40:
		scores.Set(models.BenefitStudentLoanAssistance, 35)
	default:
		scores.Set(models.BenefitStudentLoanAssistance, 15)
	}
	if hasKids {
		scores.Set(models.BenefitCollegeSavings529, 65)
	} else {
		scores.Set(models.BenefitCollegeSavings529, 10)
	}
	scores.Set(models.BenefitEmergencySavings, 45)
	scores.Set(models.BenefitStockPurchase, 35)
	if age < 30 {
		scores.Set(models.BenefitEarnedWageAccess, 35)
	} else {
		scores.Set(models.BenefitEarnedWageAccess, 20)
	}

	// Lifestyle and wellness.
	if age < 40 {
		scores.Set(models.BenefitGymMembership, 55)
	} else {
		scores.Set(models.BenefitGymMembership, 45)
	}
	scores.Set(models.BenefitMentalHealth, 50)
	if age < 40 {
		scores.Set(models.BenefitTelemedicine, 55)
	} else {
		scores.Set(models.BenefitTelemedicine, 45)
	}
	scores.Set(models.BenefitWellnessStipend, 40)
	scores.Set(models.BenefitNutritionCounseling, 30)
	scores.Set(models.BenefitSmokingCessation, 15)
	if age < 40 {
		scores.Set(models.BenefitWeightManagement, 30)
	} else {
		scores.Set(models.BenefitWeightManagement, 40)
	}
	if age < 35 {
		scores.Set(models.BenefitChiropracticCare, 25)
	} else {
		scores.Set(models.BenefitChiropracticCare, 35)
	}
	if age < 45 && !hasKids {
		scores.Set(models.BenefitFertilityBenefits, 35)
	} else {
		scores.Set(models.BenefitFertilityBenefits, 5)
	}
	switch {
	case age < 40:
		scores.Set(models.BenefitHealthScreening, 30)
	case age < 55:
		scores.Set(models.BenefitHealthScreening, 50)
	default:
		scores.Set(models.BenefitHealthScreening, 65)
	}
	scores.Set(models.BenefitStressManagement, 45)
	scores.Set(models.BenefitFitnessClasses, 35)

	// Work-life.
	if hasKids {
		scores.Set(models.BenefitChildcareSupport, 70)
	} else {
		scores.Set(models.BenefitChildcareSupport, 5)
	}
	switch {
	case age < 35:
		scores.Set(models.BenefitEldercareSupport, 10)
	case age < 50:
		scores.Set(models.BenefitEldercareSupport, 35)
	default:
		scores.Set(models.BenefitEldercareSupport, 50)
	}
	switch {
	case hasKids:
		scores.Set(models.BenefitParentalLeave, 55)
	case age < 40:
		scores.Set(models.BenefitParentalLeave, 40)
	default:
		scores.Set(models.BenefitParentalLeave, 10)
	}
	if age < 45 && !hasKids {
		scores.Set(models.BenefitAdoptionAssistance, 20)
	} else {
		scores.Set(models.BenefitAdoptionAssistance, 5)
	}
	if hasKids {
		scores.Set(models.BenefitFlexibleSchedule, 60)
	} else {
		scores.Set(models.BenefitFlexibleSchedule, 45)
	}
	scores.Set(models.BenefitRemoteWorkStipend, 45)
	scores.Set(models.BenefitSabbaticalProgram, 30)
	scores.Set(models.BenefitPTOBuyUp, 40)
	scores.Set(models.BenefitConciergeServices, 20)
	if age < 35 {
		scores.Set(models.BenefitRelocationAssistance, 35)
	} else {
		scores.Set(models.BenefitRelocationAssistance, 20)
	}

	// Growth.
	switch {
	case age < 30:
		scores.Set(models.BenefitTuitionReimbursement, 60)
	case age < 45:
		scores.Set(models.BenefitTuitionReimbursement, 40)
	default:
		scores.Set(models.BenefitTuitionReimbursement, 20)
	}
	switch {
	case age < 30:
		scores.Set(models.BenefitProfessionalDevelopment, 60)
	case age < 50:
		scores.Set(models.BenefitProfessionalDevelopment, 50)
	default:
		scores.Set(models.BenefitProfessionalDevelopment, 35)
	}
	if age < 40 {
		scores.Set(models.BenefitCertificationSupport, 45)
	} else {
		scores.Set(models.BenefitCertificationSupport, 30)
	}
	scores.Set(models.BenefitLanguageLearning, 25)
	if age < 30 {
		scores.Set(models.BenefitMentorshipProgram, 50)
	} else {
		scores.Set(models.BenefitMentorshipProgram, 30)
	}
	scores.Set(models.BenefitConferenceBudget, 30)

	// Community.
	scores.Set(models.BenefitVolunteerTimeOff, 40)
	scores.Set(models.BenefitCharitableMatch, 35)
	scores.Set(models.BenefitEmployeeResourceGroups, 35)
	scores.Set(models.BenefitCommunityEvents, 35)

	return scores
}

// adjustWithFinancials applies the financial pass on top of the demographic
// priors. Always runs second.
func adjustWithFinancials(scores models.ScoreMap, p *models.UserProfile) {
	savingsRate := p.SavingsRate()
	debtToIncome := p.DebtToIncome()

	// High income: more coverage is affordable and more income is at risk.
	if p.AnnualIncome > 120000 {
		scores.Add(models.BenefitLife, 10)
		scores.Add(models.BenefitDisability, 10)
		scores.Add(models.BenefitSupplementalLife, 8)
		scores.Add(models.BenefitFinancialPlanning, 8)
		scores.Add(models.BenefitStockPurchase, 10)
	}

	// Healthy emergency fund: HDHP+HSA becomes suitable.
	if savingsRate > 3 {
		scores.Add(models.BenefitHSA, 20)
		medical := scores[models.BenefitMedical] - 10
		if medical < 30 {
			medical = 30
		}
		scores.Set(models.BenefitMedical, medical)
		scores.Add(models.BenefitEmergencySavings, -15)
		scores.Add(models.BenefitStockPurchase, 8)
	}

	// High debt load: income protection matters most.
	if debtToIncome > 0.4 {
		scores.Add(models.BenefitDisability, 15)
		scores.Add(models.BenefitLife, 8)
		scores.Add(models.BenefitFinancialPlanning, 12)
		scores.Add(models.BenefitEmergencySavings, 10)
	}

	// Category-specific monthly spending.
	if p.MonthlySpend("healthcare") > 500 {
		scores.Add(models.BenefitMedical, 15)
		scores.Add(models.BenefitHealthcareFSA, 20)
		scores.Add(models.BenefitTelemedicine, 10)
	}
	if p.MonthlySpend("childcare") > 800 {
		scores.Add(models.BenefitDependentCareFSA, 15)
		scores.Add(models.BenefitChildcareSupport, 12)
	}
	if p.MonthlySpend("transportation") > 450 {
		scores.Add(models.BenefitCommuterBenefits, 12)
	}
	if p.MonthlySpend("fitness") > 100 {
		scores.Add(models.BenefitGymMembership, 10)
		scores.Add(models.BenefitWellnessStipend, 8)
	}
	if p.MonthlySpend("pets") > 100 {
		scores.Add(models.BenefitPetInsurance, 20)
	}
	if p.MonthlySpend("travel") > 500 {
		scores.Add(models.BenefitTravelInsurance, 15)
	}

	// Sophisticated investors lean into tax-advantaged vehicles.
	if p.InvestedAssets > 50000 {
		scores.Add(models.BenefitRetirement401k, 15)
		scores.Add(models.BenefitHSA, 10)
		scores.Add(models.BenefitRoth401k, 10)
	}

	// Volatile income needs a cushion.
	if p.IncomeVolatility > 0.2 {
		scores.Add(models.BenefitDisability, 10)
		scores.Add(models.BenefitEmergencySavings, 12)
		scores.Add(models.BenefitEarnedWageAccess, 10)
	}
}
