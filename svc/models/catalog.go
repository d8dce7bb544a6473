package models

// The built-in question bank. Each question carries a correlation map per
// choice; weights are signed and stay within [-1, 1]. The bank is shared
// read-only across sessions, so nothing may mutate these specs at runtime.
var defaultQuestionBank = []*QuestionSpec{
	{
		ID:      "Q1_risk_behavior",
		Text:    "Which sounds more appealing for a weekend?",
		ChoiceA: "Skydiving / Rock climbing / Adventure sports",
		ChoiceB: "Reading / Museum / Quiet activities",
		CorrelationsA: CorrelationMap{
			BenefitAccident:        0.72,
			BenefitLife:            0.58,
			BenefitDisability:      0.51,
			BenefitCriticalIllness: 0.38,
			BenefitMedical:         0.41,
		},
		CorrelationsB: CorrelationMap{
			BenefitVision:       0.42,
			BenefitLongTermCare: 0.31,
			BenefitAccident:     -0.35,
		},
		Dimensions: []string{"risk_tolerance", "activity_level", "accident_risk"},
	},
	{
		ID:      "Q2_health_consciousness",
		Text:    "How do you typically handle a headache?",
		ChoiceA: "Ignore it and power through",
		ChoiceB: "Take medicine immediately and rest",
		CorrelationsA: CorrelationMap{
			BenefitMedical:         -0.45,
			BenefitAccident:        0.38,
			BenefitCriticalIllness: 0.41,
		},
		CorrelationsB: CorrelationMap{
			BenefitMedical:       0.62,
			BenefitHealthcareFSA: 0.55,
			BenefitVision:        0.48,
		},
		Dimensions: []string{"health_behavior", "medical_utilization"},
	},
	{
		ID:      "Q3_work_travel",
		Text:    "On a typical work trip, you'd rather:",
		ChoiceA: "Rent a car and explore independently",
		ChoiceB: "Use rideshare and stick to the hotel",
		CorrelationsA: CorrelationMap{
			BenefitAccident:   0.51,
			BenefitDisability: 0.44,
			BenefitLife:       0.39,
		},
		CorrelationsB: CorrelationMap{
			BenefitCommuterBenefits: 0.48,
		},
		Dimensions: []string{"independence", "risk_exposure"},
	},
	{
		ID:      "Q4_financial_planning",
		Text:    "You just got a $5,000 bonus. What do you do?",
		ChoiceA: "Invest it for long-term growth",
		ChoiceB: "Pay off debt or save for emergency",
		CorrelationsA: CorrelationMap{
			BenefitRetirement401k: 0.68,
			BenefitHSA:            0.61,
			BenefitMedical:        0.35,
		},
		CorrelationsB: CorrelationMap{
			BenefitDisability: 0.54,
			BenefitLife:       0.48,
		},
		Dimensions: []string{"financial_planning", "risk_tolerance"},
	},
	{
		ID:      "Q5_family_priorities",
		Text:    "Imagine you have kids. Your top priority would be:",
		ChoiceA: "Saving for their college education",
		ChoiceB: "Making sure they have great experiences now",
		CorrelationsA: CorrelationMap{
			BenefitLife:               0.71,
			BenefitRetirement401k:     0.58,
			BenefitCollegeSavings529:  0.63,
			BenefitFertilityBenefits:  0.48,
			BenefitAdoptionAssistance: 0.36,
		},
		CorrelationsB: CorrelationMap{
			BenefitDependentCareFSA: 0.61,
			BenefitHealthcareFSA:    0.47,
		},
		Dimensions: []string{"family_planning", "financial_priorities"},
		Dependents: DependentsNone,
	},
	{
		ID:      "Q6_stress_management",
		Text:    "After a stressful day, you prefer to:",
		ChoiceA: "Exercise or do something active",
		ChoiceB: "Watch TV or play video games",
		CorrelationsA: CorrelationMap{
			BenefitLongTermCare: -0.22,
			BenefitMedical:      -0.15,
		},
		CorrelationsB: CorrelationMap{
			BenefitVision:       0.44,
			BenefitLongTermCare: 0.31,
		},
		Dimensions: []string{"lifestyle", "health_behaviors"},
	},
	{
		ID:      "Q7_career_commitment",
		Text:    "If your dream job required relocation, would you:",
		ChoiceA: "Move immediately for the opportunity",
		ChoiceB: "Only consider if absolutely necessary",
		CorrelationsA: CorrelationMap{
			BenefitLife:                 0.42,
			BenefitDisability:           0.38,
			BenefitRelocationAssistance: 0.62,
		},
		CorrelationsB: CorrelationMap{
			BenefitDependentCareFSA: 0.48,
		},
		Dimensions: []string{"career_stability", "family_ties"},
	},
	{
		ID:      "Q8_tech_adoption",
		Text:    "When a new tech gadget launches, you:",
		ChoiceA: "Pre-order and get it on day one",
		ChoiceB: "Wait for reviews and discounts",
		CorrelationsA: CorrelationMap{
			BenefitHSA:     0.44,
			BenefitMedical: 0.28,
		},
		CorrelationsB: CorrelationMap{
			BenefitMedical: 0.42,
		},
		Dimensions: []string{"innovation", "financial_prudence"},
	},
	{
		ID:      "Q9_pet_ownership",
		Text:    "Do you have or want pets?",
		ChoiceA: "Yes, pets are family",
		ChoiceB: "No, prefer not to have pets",
		CorrelationsA: CorrelationMap{
			BenefitPetInsurance: 0.91,
		},
		CorrelationsB: CorrelationMap{
			BenefitPetInsurance: -0.95,
		},
		Dimensions: []string{"pet_ownership"},
	},
	{
		ID:      "Q10_dental_habits",
		Text:    "How often do you visit the dentist?",
		ChoiceA: "Twice a year or more (preventive)",
		ChoiceB: "Only when there's a problem",
		CorrelationsA: CorrelationMap{
			BenefitDental: 0.71,
		},
		CorrelationsB: CorrelationMap{
			BenefitDental: 0.38,
		},
		Dimensions: []string{"preventive_care"},
	},
	{
		ID:      "Q11_childcare",
		Text:    "During the workweek, your childcare is mostly:",
		ChoiceA: "Paid daycare, nanny, or after-school programs",
		ChoiceB: "Family, friends, or we cover it ourselves",
		CorrelationsA: CorrelationMap{
			BenefitDependentCareFSA: 0.82,
			BenefitChildcareSupport: 0.74,
			BenefitHealthcareFSA:    0.21,
		},
		CorrelationsB: CorrelationMap{
			BenefitFlexibleSchedule:  0.52,
			BenefitChildcareSupport:  -0.31,
			BenefitRemoteWorkStipend: 0.33,
		},
		Dimensions: []string{"childcare", "household_logistics"},
		Dependents: DependentsRequired,
	},
	{
		ID:      "Q12_family_size",
		Text:    "Does your household include children?",
		ChoiceA: "Yes",
		ChoiceB: "No",
		CorrelationsA: CorrelationMap{
			BenefitLife:              0.58,
			BenefitDependentCareFSA:  0.71,
			BenefitChildcareSupport:  0.62,
			BenefitCollegeSavings529: 0.55,
			BenefitParentalLeave:     0.34,
		},
		CorrelationsB: CorrelationMap{
			BenefitDependentCareFSA:  -0.72,
			BenefitChildcareSupport:  -0.65,
			BenefitCollegeSavings529: -0.41,
			BenefitPetInsurance:      0.22,
		},
		Dimensions: []string{"family_size", "household_composition"},
	},
	{
		ID:      "Q13_kids_activities",
		Text:    "Your kids' weekends usually involve:",
		ChoiceA: "Organized sports or competitive activities",
		ChoiceB: "Low-key time at home",
		CorrelationsA: CorrelationMap{
			BenefitAccident: 0.56,
			BenefitMedical:  0.31,
			BenefitDental:   0.28,
		},
		CorrelationsB: CorrelationMap{
			BenefitVolunteerTimeOff: 0.18,
			BenefitCommunityEvents:  0.24,
		},
		Dimensions: []string{"kids_activities", "accident_risk"},
		Dependents: DependentsRequired,
	},
	{
		ID:      "Q14_exercise_frequency",
		Text:    "How often do you exercise?",
		ChoiceA: "Three or more times a week",
		ChoiceB: "Rarely, life is busy",
		CorrelationsA: CorrelationMap{
			BenefitGymMembership:   0.78,
			BenefitFitnessClasses:  0.62,
			BenefitWellnessStipend: 0.44,
			BenefitMedical:         -0.18,
		},
		CorrelationsB: CorrelationMap{
			BenefitWeightManagement:  0.48,
			BenefitHealthScreening:   0.41,
			BenefitGymMembership:     -0.25,
			BenefitConciergeServices: 0.33,
		},
		Dimensions: []string{"exercise", "health_behaviors"},
	},
	{
		ID:      "Q15_medical_history",
		Text:    "In the last year, your doctor visits were:",
		ChoiceA: "Several, with ongoing care",
		ChoiceB: "Just a checkup, if that",
		CorrelationsA: CorrelationMap{
			BenefitMedical:           0.68,
			BenefitHealthcareFSA:     0.57,
			BenefitTelemedicine:      0.41,
			BenefitHospitalIndemnity: 0.33,
		},
		CorrelationsB: CorrelationMap{
			BenefitTelemedicine: 0.28,
			BenefitMedical:      -0.22,
		},
		Dimensions: []string{"medical_utilization"},
	},
	{
		ID:      "Q16_chronic_conditions",
		Text:    "Are you managing a long-term health condition?",
		ChoiceA: "Yes, or someone in my family is",
		ChoiceB: "No, knock on wood",
		CorrelationsA: CorrelationMap{
			BenefitMedical:           0.72,
			BenefitCriticalIllness:   0.54,
			BenefitHealthcareFSA:     0.49,
			BenefitHospitalIndemnity: 0.38,
		},
		CorrelationsB: CorrelationMap{
			BenefitHSA:             0.31,
			BenefitCriticalIllness: -0.28,
		},
		Dimensions: []string{"chronic_conditions", "medical_utilization"},
	},
	{
		ID:      "Q17_mental_health",
		Text:    "After a hard month at work, you'd most value:",
		ChoiceA: "Someone to talk things through with",
		ChoiceB: "Extra time off to recharge",
		CorrelationsA: CorrelationMap{
			BenefitMentalHealth:     0.81,
			BenefitStressManagement: 0.56,
			BenefitTelemedicine:     0.29,
		},
		CorrelationsB: CorrelationMap{
			BenefitPTOBuyUp:          0.62,
			BenefitSabbaticalProgram: 0.44,
			BenefitFlexibleSchedule:  0.38,
		},
		Dimensions: []string{"mental_health", "work_life_balance"},
	},
	{
		ID:      "Q18_vision_needs",
		Text:    "Screens and your eyes:",
		ChoiceA: "Glasses or contacts, regular prescriptions",
		ChoiceB: "20/20 so far",
		CorrelationsA: CorrelationMap{
			BenefitVision:        0.84,
			BenefitHealthcareFSA: 0.31,
		},
		CorrelationsB: CorrelationMap{
			BenefitVision: -0.41,
		},
		Dimensions: []string{"vision_needs"},
	},
	{
		ID:      "Q19_retirement_planning",
		Text:    "Your retirement savings today:",
		ChoiceA: "On autopilot and on track",
		ChoiceB: "Honestly, behind where I should be",
		CorrelationsA: CorrelationMap{
			BenefitRoth401k:          0.52,
			BenefitStockPurchase:     0.41,
			BenefitFinancialPlanning: 0.28,
		},
		CorrelationsB: CorrelationMap{
			BenefitRetirement401k:    0.66,
			BenefitFinancialPlanning: 0.58,
			BenefitEmergencySavings:  0.37,
		},
		Dimensions: []string{"retirement_planning", "financial_planning"},
	},
	{
		ID:      "Q20_debt_level",
		Text:    "Thinking about your debt:",
		ChoiceA: "It keeps me up some nights",
		ChoiceB: "Manageable, or none at all",
		CorrelationsA: CorrelationMap{
			BenefitStudentLoanAssistance: 0.61,
			BenefitDisability:            0.48,
			BenefitLife:                  0.42,
			BenefitFinancialPlanning:     0.52,
			BenefitEarnedWageAccess:      0.38,
		},
		CorrelationsB: CorrelationMap{
			BenefitStockPurchase:         0.34,
			BenefitStudentLoanAssistance: -0.45,
		},
		Dimensions: []string{"debt_level", "financial_stress"},
	},
	{
		ID:      "Q21_emergency_fund",
		Text:    "If the car died tomorrow:",
		ChoiceA: "Covered from savings, no stress",
		ChoiceB: "That would hurt this month",
		CorrelationsA: CorrelationMap{
			BenefitHSA:              0.42,
			BenefitStockPurchase:    0.31,
			BenefitEmergencySavings: -0.35,
		},
		CorrelationsB: CorrelationMap{
			BenefitEmergencySavings: 0.72,
			BenefitEarnedWageAccess: 0.54,
			BenefitAccident:         0.31,
			BenefitDisability:       0.36,
		},
		Dimensions: []string{"emergency_fund", "financial_resilience"},
	},
	{
		ID:      "Q22_income_stability",
		Text:    "Your income month to month:",
		ChoiceA: "Steady and predictable",
		ChoiceB: "Varies - commissions, gigs, seasons",
		CorrelationsA: CorrelationMap{
			BenefitRetirement401k: 0.31,
			BenefitStockPurchase:  0.26,
		},
		CorrelationsB: CorrelationMap{
			BenefitDisability:       0.58,
			BenefitEmergencySavings: 0.56,
			BenefitLife:             0.33,
			BenefitEarnedWageAccess: 0.41,
		},
		Dimensions: []string{"income_stability"},
	},
	{
		ID:      "Q23_commute",
		Text:    "Your typical commute:",
		ChoiceA: "45+ minutes, or a long transit ride",
		ChoiceB: "Short drive, or I work from home",
		CorrelationsA: CorrelationMap{
			BenefitCommuterBenefits: 0.86,
			BenefitEarnedWageAccess: 0.18,
		},
		CorrelationsB: CorrelationMap{
			BenefitRemoteWorkStipend: 0.58,
			BenefitCommuterBenefits:  -0.62,
		},
		Dimensions: []string{"commute"},
	},
	{
		ID:      "Q24_work_from_home",
		Text:    "Your ideal work setup:",
		ChoiceA: "Home office most days",
		ChoiceB: "In the office with people around",
		CorrelationsA: CorrelationMap{
			BenefitRemoteWorkStipend: 0.74,
			BenefitFlexibleSchedule:  0.51,
			BenefitCommuterBenefits:  -0.48,
		},
		CorrelationsB: CorrelationMap{
			BenefitCommuterBenefits:       0.52,
			BenefitEmployeeResourceGroups: 0.38,
			BenefitCommunityEvents:        0.29,
		},
		Dimensions: []string{"work_from_home", "work_style"},
	},
	{
		ID:      "Q25_travel_frequency",
		Text:    "How often do you travel for fun?",
		ChoiceA: "Several trips a year, some abroad",
		ChoiceB: "The occasional weekend away",
		CorrelationsA: CorrelationMap{
			BenefitTravelInsurance: 0.77,
			BenefitAccident:        0.34,
			BenefitMedical:         0.21,
		},
		CorrelationsB: CorrelationMap{
			BenefitTravelInsurance: -0.31,
			BenefitCommunityEvents: 0.18,
		},
		Dimensions: []string{"travel_frequency"},
	},
	{
		ID:      "Q26_hobbies",
		Text:    "Free evenings tend to go to:",
		ChoiceA: "Classes, side projects, learning something",
		ChoiceB: "Friends, family, community stuff",
		CorrelationsA: CorrelationMap{
			BenefitProfessionalDevelopment: 0.62,
			BenefitLanguageLearning:        0.47,
			BenefitTuitionReimbursement:    0.38,
			BenefitConferenceBudget:        0.26,
			BenefitMentorshipProgram:       0.41,
		},
		CorrelationsB: CorrelationMap{
			BenefitVolunteerTimeOff:       0.51,
			BenefitCommunityEvents:        0.46,
			BenefitEmployeeResourceGroups: 0.33,
			BenefitCharitableMatch:        0.29,
		},
		Dimensions: []string{"hobbies", "growth_orientation"},
	},
	{
		ID:      "Q27_spouse_income",
		Text:    "Household income comes from:",
		ChoiceA: "Two earners",
		ChoiceB: "Mostly or all me",
		CorrelationsA: CorrelationMap{
			BenefitDependentCareFSA: 0.28,
			BenefitLife:             -0.18,
			BenefitDisability:       -0.15,
		},
		CorrelationsB: CorrelationMap{
			BenefitLife:             0.64,
			BenefitDisability:       0.57,
			BenefitSupplementalLife: 0.42,
			BenefitAccidentalDeath:  0.31,
		},
		Dimensions: []string{"spouse_income", "income_dependency"},
	},
	{
		ID:      "Q28_elderly_parents",
		Text:    "Are your parents likely to need your support?",
		ChoiceA: "Yes, we're already planning for it",
		ChoiceB: "They're set on their own",
		CorrelationsA: CorrelationMap{
			BenefitEldercareSupport: 0.79,
			BenefitLongTermCare:     0.61,
			BenefitLegalServices:    0.37,
			BenefitFlexibleSchedule: 0.29,
		},
		CorrelationsB: CorrelationMap{
			BenefitEldercareSupport: -0.44,
			BenefitLongTermCare:     -0.21,
		},
		Dimensions: []string{"elderly_parents", "caregiving"},
		MinAge:     35,
	},
	{
		ID:      "Q29_job_security",
		Text:    "How secure does your job feel?",
		ChoiceA: "Rock solid",
		ChoiceB: "The industry's been shaky lately",
		CorrelationsA: CorrelationMap{
			BenefitStockPurchase:  0.29,
			BenefitRetirement401k: 0.22,
		},
		CorrelationsB: CorrelationMap{
			BenefitEmergencySavings:        0.61,
			BenefitProfessionalDevelopment: 0.52,
			BenefitCertificationSupport:    0.47,
			BenefitEarnedWageAccess:        0.33,
		},
		Dimensions: []string{"job_security"},
	},
	{
		ID:      "Q30_driving_habits",
		Text:    "Behind the wheel, you are:",
		ChoiceA: "A lot - long drives and road trips",
		ChoiceB: "Barely - transit, bike, or walk",
		CorrelationsA: CorrelationMap{
			BenefitAccident:        0.58,
			BenefitAccidentalDeath: 0.42,
			BenefitLife:            0.27,
		},
		CorrelationsB: CorrelationMap{
			BenefitCommuterBenefits: 0.49,
			BenefitAccident:         -0.26,
		},
		Dimensions: []string{"driving_habits", "accident_risk"},
	},
	{
		ID:      "Q31_hazardous_job",
		Text:    "Day to day, your work is:",
		ChoiceA: "Physical - job site, equipment, on your feet",
		ChoiceB: "A desk and a screen",
		CorrelationsA: CorrelationMap{
			BenefitDisability:       0.68,
			BenefitAccident:         0.61,
			BenefitAccidentalDeath:  0.49,
			BenefitChiropracticCare: 0.38,
		},
		CorrelationsB: CorrelationMap{
			BenefitVision:           0.42,
			BenefitChiropracticCare: 0.27,
			BenefitGymMembership:    0.31,
		},
		Dimensions: []string{"hazardous_job", "occupational_risk"},
	},
	{
		ID:      "Q32_legal_concerns",
		Text:    "Wills, leases, disputes - legal matters:",
		ChoiceA: "A few things I keep putting off",
		ChoiceB: "All squared away",
		CorrelationsA: CorrelationMap{
			BenefitLegalServices:     0.81,
			BenefitLife:              0.24,
			BenefitFinancialPlanning: 0.26,
		},
		CorrelationsB: CorrelationMap{
			BenefitLegalServices: -0.47,
		},
		Dimensions: []string{"legal_concerns"},
	},
	{
		ID:      "Q33_identity_protection",
		Text:    "After hearing about a data breach, you:",
		ChoiceA: "Change every password that night",
		ChoiceB: "Figure the odds are in your favor",
		CorrelationsA: CorrelationMap{
			BenefitIdentityTheft: 0.66,
			BenefitLegalServices: 0.21,
		},
		CorrelationsB: CorrelationMap{
			BenefitIdentityTheft: 0.35,
		},
		Dimensions: []string{"identity_protection", "security_awareness"},
	},
	{
		ID:      "Q34_online_activity",
		Text:    "Your financial life online:",
		ChoiceA: "Everything - banking, investing, shopping",
		ChoiceB: "I keep it minimal and in person",
		CorrelationsA: CorrelationMap{
			BenefitIdentityTheft:    0.58,
			BenefitStockPurchase:    0.31,
			BenefitEarnedWageAccess: 0.21,
		},
		CorrelationsB: CorrelationMap{
			BenefitIdentityTheft:     -0.22,
			BenefitFinancialPlanning: 0.24,
		},
		Dimensions: []string{"online_activity"},
	},
	{
		ID:      "Q35_hospital_visits",
		Text:    "Hospital stays in your family recently:",
		ChoiceA: "A few in the last couple of years",
		ChoiceB: "Thankfully rare",
		CorrelationsA: CorrelationMap{
			BenefitHospitalIndemnity: 0.72,
			BenefitCriticalIllness:   0.48,
			BenefitMedical:           0.36,
		},
		CorrelationsB: CorrelationMap{
			BenefitHospitalIndemnity: -0.33,
		},
		Dimensions: []string{"hospital_visits", "medical_utilization"},
	},
	{
		ID:      "Q36_cancer_history",
		Text:    "Cancer in your close family:",
		ChoiceA: "Yes",
		ChoiceB: "No",
		CorrelationsA: CorrelationMap{
			BenefitCancerInsurance: 0.78,
			BenefitCriticalIllness: 0.63,
			BenefitHealthScreening: 0.52,
			BenefitLife:            0.29,
		},
		CorrelationsB: CorrelationMap{
			BenefitCancerInsurance: -0.36,
		},
		Dimensions: []string{"cancer_history", "family_health"},
	},
	{
		ID:      "Q37_heart_health",
		Text:    "Heart health in your family:",
		ChoiceA: "It's a known concern",
		ChoiceB: "No issues we know of",
		CorrelationsA: CorrelationMap{
			BenefitCriticalIllness:     0.66,
			BenefitHealthScreening:     0.57,
			BenefitNutritionCounseling: 0.43,
			BenefitSmokingCessation:    0.31,
			BenefitMedical:             0.28,
		},
		CorrelationsB: CorrelationMap{
			BenefitCriticalIllness: -0.24,
		},
		Dimensions: []string{"heart_health", "family_health"},
	},
	{
		ID:      "Q38_dental_work",
		Text:    "Dental work beyond cleanings:",
		ChoiceA: "Crowns, implants, or braces likely ahead",
		ChoiceB: "Nothing on the horizon",
		CorrelationsA: CorrelationMap{
			BenefitDental:        0.79,
			BenefitHealthcareFSA: 0.41,
		},
		CorrelationsB: CorrelationMap{
			BenefitDental: -0.28,
		},
		Dimensions: []string{"dental_work"},
	},
	{
		ID:      "Q39_orthodontics",
		Text:    "Braces for the kids:",
		ChoiceA: "Already discussing it",
		ChoiceB: "Not likely needed",
		CorrelationsA: CorrelationMap{
			BenefitDental:           0.74,
			BenefitHealthcareFSA:    0.52,
			BenefitDependentCareFSA: 0.19,
		},
		CorrelationsB: CorrelationMap{
			BenefitDental: -0.18,
		},
		Dimensions: []string{"orthodontics", "kids_health"},
		Dependents: DependentsRequired,
	},
	{
		ID:      "Q40_retirement_age",
		Text:    "When do you picture retiring?",
		ChoiceA: "As early as I can manage",
		ChoiceB: "I'll work as long as it's fun",
		CorrelationsA: CorrelationMap{
			BenefitRetirement401k:    0.71,
			BenefitFinancialPlanning: 0.62,
			BenefitHSA:               0.47,
			BenefitLongTermCare:      0.38,
		},
		CorrelationsB: CorrelationMap{
			BenefitSabbaticalProgram:       0.41,
			BenefitProfessionalDevelopment: 0.33,
			BenefitLongTermCare:            0.22,
		},
		Dimensions: []string{"retirement_age", "retirement_planning"},
		MinAge:     45,
	},
	{
		ID:      "Q41_aging_parents_care",
		Text:    "If a parent needed daily care:",
		ChoiceA: "They'd move in with us",
		ChoiceB: "We'd arrange professional care",
		CorrelationsA: CorrelationMap{
			BenefitEldercareSupport: 0.73,
			BenefitFlexibleSchedule: 0.49,
			BenefitLife:             0.31,
			BenefitLegalServices:    0.28,
		},
		CorrelationsB: CorrelationMap{
			BenefitLongTermCare:      0.68,
			BenefitEldercareSupport:  0.41,
			BenefitFinancialPlanning: 0.34,
		},
		Dimensions: []string{"aging_parents_care", "caregiving"},
		MinAge:     35,
	},
}

// DefaultQuestionBank returns the shared built-in question catalog.
// Callers must treat the returned specs as read-only.
func DefaultQuestionBank() []*QuestionSpec {
	return defaultQuestionBank
}
