package models

// PriorityTier buckets a final score into an action priority.
type PriorityTier string

const (
	TierCritical    PriorityTier = "critical"
	TierRecommended PriorityTier = "recommended"
	TierOptional    PriorityTier = "optional"
	TierNotNeeded   PriorityTier = "not_needed"
)

// TierForScore maps a 0-100 score to its priority tier. Boundaries are
// fixed constants: >=95 critical, >=80 recommended, >=55 optional.
func TierForScore(score float64) PriorityTier {
	switch {
	case score >= 95:
		return TierCritical
	case score >= 80:
		return TierRecommended
	case score >= 55:
		return TierOptional
	default:
		return TierNotNeeded
	}
}

// CoverageDetail is the benefit-specific structured payload of a
// recommendation (coverage amounts, plan tiers, contribution rates).
type CoverageDetail map[string]interface{}

// Recommendation is the per-benefit output artifact of a finished session.
type Recommendation struct {
	Benefit    BenefitCategory `json:"benefit"`
	Score      float64         `json:"score"`
	Confidence float64         `json:"confidence"`
	Priority   PriorityTier    `json:"priority"`
	Details    CoverageDetail  `json:"details"`
	Rationale  string          `json:"rationale"`
}

// RiskLevel grades one risk category of the profile assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// RiskCategory is one graded dimension of the risk assessment.
type RiskCategory struct {
	Name   string    `json:"name"`
	Level  RiskLevel `json:"level"`
	Detail string    `json:"detail"`
}

// RiskAssessment summarizes profile-level risk alongside recommendations.
type RiskAssessment struct {
	FinancialWellbeing int            `json:"financial_wellbeing_score"`
	Categories         []RiskCategory `json:"categories"`
}
