package models

import (
	"encoding/json"
	"fmt"
)

// BenefitCategory identifies one benefit type from the closed catalog.
// Categories are dense integer ids so score maps can be flat slices
// indexed by category rather than hash maps keyed by a large enum.
type BenefitCategory int

const (
	BenefitMedical BenefitCategory = iota
	BenefitDental
	BenefitVision
	BenefitLife
	BenefitSupplementalLife
	BenefitAccidentalDeath
	BenefitDisability
	BenefitAccident
	BenefitCriticalIllness
	BenefitHospitalIndemnity
	BenefitCancerInsurance
	BenefitLongTermCare
	BenefitPetInsurance
	BenefitTravelInsurance
	BenefitLegalServices
	BenefitIdentityTheft
	BenefitRetirement401k
	BenefitRoth401k
	BenefitHSA
	BenefitHealthcareFSA
	BenefitDependentCareFSA
	BenefitCommuterBenefits
	BenefitFinancialPlanning
	BenefitStudentLoanAssistance
	BenefitCollegeSavings529
	BenefitEmergencySavings
	BenefitStockPurchase
	BenefitEarnedWageAccess
	BenefitGymMembership
	BenefitMentalHealth
	BenefitTelemedicine
	BenefitWellnessStipend
	BenefitNutritionCounseling
	BenefitSmokingCessation
	BenefitWeightManagement
	BenefitChiropracticCare
	BenefitFertilityBenefits
	BenefitHealthScreening
	BenefitStressManagement
	BenefitFitnessClasses
	BenefitChildcareSupport
	BenefitEldercareSupport
	BenefitParentalLeave
	BenefitAdoptionAssistance
	BenefitFlexibleSchedule
	BenefitRemoteWorkStipend
	BenefitSabbaticalProgram
	BenefitPTOBuyUp
	BenefitConciergeServices
	BenefitRelocationAssistance
	BenefitTuitionReimbursement
	BenefitProfessionalDevelopment
	BenefitCertificationSupport
	BenefitLanguageLearning
	BenefitMentorshipProgram
	BenefitConferenceBudget
	BenefitVolunteerTimeOff
	BenefitCharitableMatch
	BenefitEmployeeResourceGroups
	BenefitCommunityEvents

	// NumBenefitCategories is the size of the closed catalog.
	NumBenefitCategories int = iota
)

// BenefitGroup is the informal grouping used for reporting.
type BenefitGroup string

const (
	GroupInsurance  BenefitGroup = "insurance"
	GroupRetirement BenefitGroup = "retirement_financial"
	GroupWellness   BenefitGroup = "lifestyle_wellness"
	GroupWorkLife   BenefitGroup = "work_life"
	GroupGrowth     BenefitGroup = "growth"
	GroupCommunity  BenefitGroup = "community"
)

type benefitInfo struct {
	slug  string
	name  string
	group BenefitGroup
}

var benefitCatalog = [NumBenefitCategories]benefitInfo{
	BenefitMedical:                 {"medical", "Medical Insurance", GroupInsurance},
	BenefitDental:                  {"dental", "Dental Insurance", GroupInsurance},
	BenefitVision:                  {"vision", "Vision Insurance", GroupInsurance},
	BenefitLife:                    {"life_insurance", "Life Insurance", GroupInsurance},
	BenefitSupplementalLife:        {"supplemental_life", "Supplemental Life Insurance", GroupInsurance},
	BenefitAccidentalDeath:         {"accidental_death", "Accidental Death & Dismemberment", GroupInsurance},
	BenefitDisability:              {"disability", "Disability Insurance", GroupInsurance},
	BenefitAccident:                {"accident_insurance", "Accident Insurance", GroupInsurance},
	BenefitCriticalIllness:         {"critical_illness", "Critical Illness Insurance", GroupInsurance},
	BenefitHospitalIndemnity:       {"hospital_indemnity", "Hospital Indemnity Insurance", GroupInsurance},
	BenefitCancerInsurance:         {"cancer_insurance", "Cancer Insurance", GroupInsurance},
	BenefitLongTermCare:            {"long_term_care", "Long-Term Care Insurance", GroupInsurance},
	BenefitPetInsurance:            {"pet_insurance", "Pet Insurance", GroupInsurance},
	BenefitTravelInsurance:         {"travel_insurance", "Travel Insurance", GroupInsurance},
	BenefitLegalServices:           {"legal_services", "Legal Services Plan", GroupInsurance},
	BenefitIdentityTheft:           {"identity_theft", "Identity Theft Protection", GroupInsurance},
	BenefitRetirement401k:          {"401k", "401(k) Plan", GroupRetirement},
	BenefitRoth401k:                {"roth_401k", "Roth 401(k) Option", GroupRetirement},
	BenefitHSA:                     {"hsa", "Health Savings Account", GroupRetirement},
	BenefitHealthcareFSA:           {"healthcare_fsa", "Healthcare FSA", GroupRetirement},
	BenefitDependentCareFSA:        {"dependent_care_fsa", "Dependent Care FSA", GroupRetirement},
	BenefitCommuterBenefits:        {"commuter_benefits", "Commuter Benefits", GroupRetirement},
	BenefitFinancialPlanning:       {"financial_planning", "Financial Planning Services", GroupRetirement},
	BenefitStudentLoanAssistance:   {"student_loan_assistance", "Student Loan Assistance", GroupRetirement},
	BenefitCollegeSavings529:       {"college_savings_529", "529 College Savings Plan", GroupRetirement},
	BenefitEmergencySavings:        {"emergency_savings", "Workplace Emergency Savings", GroupRetirement},
	BenefitStockPurchase:           {"stock_purchase_plan", "Employee Stock Purchase Plan", GroupRetirement},
	BenefitEarnedWageAccess:        {"earned_wage_access", "Earned Wage Access", GroupRetirement},
	BenefitGymMembership:           {"gym_membership", "Gym Membership Subsidy", GroupWellness},
	BenefitMentalHealth:            {"mental_health", "Mental Health & EAP", GroupWellness},
	BenefitTelemedicine:            {"telemedicine", "Telemedicine", GroupWellness},
	BenefitWellnessStipend:         {"wellness_stipend", "Wellness Stipend", GroupWellness},
	BenefitNutritionCounseling:     {"nutrition_counseling", "Nutrition Counseling", GroupWellness},
	BenefitSmokingCessation:        {"smoking_cessation", "Smoking Cessation Program", GroupWellness},
	BenefitWeightManagement:        {"weight_management", "Weight Management Program", GroupWellness},
	BenefitChiropracticCare:        {"chiropractic_care", "Chiropractic Care", GroupWellness},
	BenefitFertilityBenefits:       {"fertility_benefits", "Fertility Benefits", GroupWellness},
	BenefitHealthScreening:         {"health_screening", "Biometric Health Screening", GroupWellness},
	BenefitStressManagement:        {"stress_management_program", "Stress Management Program", GroupWellness},
	BenefitFitnessClasses:          {"fitness_classes", "Fitness Classes", GroupWellness},
	BenefitChildcareSupport:        {"childcare_support", "Backup Childcare Support", GroupWorkLife},
	BenefitEldercareSupport:        {"eldercare_support", "Eldercare Support", GroupWorkLife},
	BenefitParentalLeave:           {"parental_leave", "Paid Parental Leave Top-Up", GroupWorkLife},
	BenefitAdoptionAssistance:      {"adoption_assistance", "Adoption Assistance", GroupWorkLife},
	BenefitFlexibleSchedule:        {"flexible_schedule", "Flexible Schedule", GroupWorkLife},
	BenefitRemoteWorkStipend:       {"remote_work_stipend", "Remote Work Stipend", GroupWorkLife},
	BenefitSabbaticalProgram:       {"sabbatical_program", "Sabbatical Program", GroupWorkLife},
	BenefitPTOBuyUp:                {"pto_buy_up", "PTO Buy-Up", GroupWorkLife},
	BenefitConciergeServices:       {"concierge_services", "Concierge Services", GroupWorkLife},
	BenefitRelocationAssistance:    {"relocation_assistance", "Relocation Assistance", GroupWorkLife},
	BenefitTuitionReimbursement:    {"tuition_reimbursement", "Tuition Reimbursement", GroupGrowth},
	BenefitProfessionalDevelopment: {"professional_development", "Professional Development", GroupGrowth},
	BenefitCertificationSupport:    {"certification_support", "Certification Support", GroupGrowth},
	BenefitLanguageLearning:        {"language_learning", "Language Learning", GroupGrowth},
	BenefitMentorshipProgram:       {"mentorship_program", "Mentorship Program", GroupGrowth},
	BenefitConferenceBudget:        {"conference_budget", "Conference Budget", GroupGrowth},
	BenefitVolunteerTimeOff:        {"volunteer_time_off", "Volunteer Time Off", GroupCommunity},
	BenefitCharitableMatch:         {"charitable_match", "Charitable Gift Match", GroupCommunity},
	BenefitEmployeeResourceGroups:  {"employee_resource_groups", "Employee Resource Groups", GroupCommunity},
	BenefitCommunityEvents:         {"community_events", "Community Events", GroupCommunity},
}

var benefitBySlug = func() map[string]BenefitCategory {
	m := make(map[string]BenefitCategory, NumBenefitCategories)
	for i, info := range benefitCatalog {
		m[info.slug] = BenefitCategory(i)
	}
	return m
}()

// Valid reports whether b is a member of the catalog.
func (b BenefitCategory) Valid() bool {
	return b >= 0 && int(b) < NumBenefitCategories
}

// Slug returns the stable wire identifier for the category.
func (b BenefitCategory) Slug() string {
	if !b.Valid() {
		return "unknown"
	}
	return benefitCatalog[b].slug
}

// DisplayName returns the human-readable benefit name.
func (b BenefitCategory) DisplayName() string {
	if !b.Valid() {
		return "Unknown Benefit"
	}
	return benefitCatalog[b].name
}

// Group returns the informal benefit grouping.
func (b BenefitCategory) Group() BenefitGroup {
	if !b.Valid() {
		return ""
	}
	return benefitCatalog[b].group
}

func (b BenefitCategory) String() string {
	return b.Slug()
}

// BenefitCategoryFromSlug resolves a wire identifier back to its category.
func BenefitCategoryFromSlug(slug string) (BenefitCategory, error) {
	b, ok := benefitBySlug[slug]
	if !ok {
		return 0, fmt.Errorf("unknown benefit category %q", slug)
	}
	return b, nil
}

// AllBenefitCategories returns every category in catalog order.
func AllBenefitCategories() []BenefitCategory {
	out := make([]BenefitCategory, NumBenefitCategories)
	for i := range out {
		out[i] = BenefitCategory(i)
	}
	return out
}

func (b BenefitCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Slug())
}

func (b *BenefitCategory) UnmarshalJSON(data []byte) error {
	var slug string
	if err := json.Unmarshal(data, &slug); err != nil {
		return err
	}
	cat, err := BenefitCategoryFromSlug(slug)
	if err != nil {
		return err
	}
	*b = cat
	return nil
}
