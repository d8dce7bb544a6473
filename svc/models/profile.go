package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MaritalStatus is the closed set of marital statuses the rule tables key on.
type MaritalStatus string

const (
	MaritalSingle          MaritalStatus = "single"
	MaritalMarried         MaritalStatus = "married"
	MaritalDivorced        MaritalStatus = "divorced"
	MaritalWidowed         MaritalStatus = "widowed"
	MaritalDomesticPartner MaritalStatus = "domestic_partner"
)

// UserProfile carries the demographic and financial attributes a session is
// seeded with. It is immutable once a session is created; the session owns it.
type UserProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age" validate:"gte=0,lte=120"`
	MaritalStatus MaritalStatus `json:"marital_status" validate:"omitempty,oneof=single married divorced widowed domestic_partner"`
	Dependents    int           `json:"num_dependents" validate:"gte=0"`

	AnnualIncome       float64            `json:"annual_income" validate:"gte=0"`
	MonthlyExpenses    float64            `json:"monthly_expenses" validate:"gte=0"`
	TotalDebt          float64            `json:"total_debt" validate:"gte=0"`
	Savings            float64            `json:"savings" validate:"gte=0"`
	InvestedAssets     float64            `json:"invested_assets" validate:"gte=0"`
	SpendingCategories map[string]float64 `json:"spending_categories,omitempty"`
	IncomeVolatility   float64            `json:"income_volatility" validate:"gte=0"`
}

var profileValidator = validator.New()

// Validate rejects structurally invalid profiles at the boundary, before any
// prior estimation runs. Silently clamping bad inputs here would corrupt
// downstream scores invisibly.
func (p *UserProfile) Validate() error {
	if err := profileValidator.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// HasDependents reports whether the profile includes any dependents.
func (p *UserProfile) HasDependents() bool {
	return p.Dependents > 0
}

// DebtToIncome returns total debt over annual income, 0 when income is absent.
func (p *UserProfile) DebtToIncome() float64 {
	if p.AnnualIncome <= 0 {
		return 0
	}
	return p.TotalDebt / p.AnnualIncome
}

// SavingsRate returns liquid savings expressed in months of income,
// 0 when income is absent.
func (p *UserProfile) SavingsRate() float64 {
	if p.AnnualIncome <= 0 {
		return 0
	}
	return p.Savings / (p.AnnualIncome / 12)
}

// EmergencyFundMonths returns how many months of expenses the savings cover,
// 0 when expenses are absent.
func (p *UserProfile) EmergencyFundMonths() float64 {
	if p.MonthlyExpenses <= 0 {
		return 0
	}
	return p.Savings / p.MonthlyExpenses
}

// MonthlySpend returns the categorized monthly spending for one category,
// 0 when the category is absent.
func (p *UserProfile) MonthlySpend(category string) float64 {
	return p.SpendingCategories[category]
}
