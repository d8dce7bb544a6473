package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileValidate(t *testing.T) {
	valid := UserProfile{Age: 35, MaritalStatus: MaritalMarried, Dependents: 2, AnnualIncome: 120000}
	assert.NoError(t, valid.Validate())

	tooOld := UserProfile{Age: 130}
	assert.Error(t, tooOld.Validate())

	negativeIncome := UserProfile{Age: 30, AnnualIncome: -1}
	assert.Error(t, negativeIncome.Validate())

	badStatus := UserProfile{Age: 30, MaritalStatus: "complicated"}
	assert.Error(t, badStatus.Validate())
}

func TestProfileDerivedRatios(t *testing.T) {
	p := UserProfile{
		AnnualIncome:    120000,
		TotalDebt:       60000,
		Savings:         30000,
		MonthlyExpenses: 5000,
		SpendingCategories: map[string]float64{
			"pets": 150,
		},
	}

	assert.InDelta(t, 0.5, p.DebtToIncome(), 1e-9)
	assert.InDelta(t, 3.0, p.SavingsRate(), 1e-9)
	assert.InDelta(t, 6.0, p.EmergencyFundMonths(), 1e-9)
	assert.Equal(t, 150.0, p.MonthlySpend("pets"))
	assert.Equal(t, 0.0, p.MonthlySpend("yachts"))

	zero := UserProfile{}
	assert.Equal(t, 0.0, zero.DebtToIncome())
	assert.Equal(t, 0.0, zero.SavingsRate())
	assert.Equal(t, 0.0, zero.EmergencyFundMonths())
}
