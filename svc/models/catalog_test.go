package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBankIntegrity(t *testing.T) {
	bank := DefaultQuestionBank()
	require.NotEmpty(t, bank)

	touched := make(map[BenefitCategory]bool)
	seen := make(map[string]bool)
	for _, q := range bank {
		require.NotEmpty(t, q.ID)
		require.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true

		assert.NotEmpty(t, q.Text, q.ID)
		assert.NotEmpty(t, q.ChoiceA, q.ID)
		assert.NotEmpty(t, q.ChoiceB, q.ID)
		assert.NotEmpty(t, q.Dimensions, q.ID)

		for _, side := range []ChoiceSide{SideA, SideB} {
			for b, corr := range q.Correlations(side) {
				assert.True(t, b.Valid(), "%s references invalid benefit %d", q.ID, b)
				assert.GreaterOrEqual(t, corr, -1.0, "%s/%s", q.ID, b)
				assert.LessOrEqual(t, corr, 1.0, "%s/%s", q.ID, b)
				assert.NotZero(t, corr, "%s/%s zero correlation is dead weight", q.ID, b)
				touched[b] = true
			}
		}
	}

	// Every catalog benefit must be reachable by at least one question,
	// otherwise its score can never move off the prior.
	for _, b := range AllBenefitCategories() {
		assert.True(t, touched[b], "no question touches %s", b.Slug())
	}
}

func TestCorrelationMapForEachOrder(t *testing.T) {
	m := CorrelationMap{
		BenefitPetInsurance: 0.3,
		BenefitMedical:      0.5,
		BenefitLife:         -0.2,
	}

	var visited []BenefitCategory
	m.ForEach(func(b BenefitCategory, corr float64) {
		visited = append(visited, b)
	})

	require.Len(t, visited, 3)
	for i := 1; i < len(visited); i++ {
		assert.Less(t, visited[i-1], visited[i], "visit order must follow the catalog")
	}
}

func TestQuestionApplicability(t *testing.T) {
	withKids := &UserProfile{Age: 35, Dependents: 2}
	noKids := &UserProfile{Age: 35}
	young := &UserProfile{Age: 25}

	childcare := questionByID(t, "Q11_childcare")
	assert.True(t, childcare.AppliesTo(withKids))
	assert.False(t, childcare.AppliesTo(noKids))

	retirementAge := questionByID(t, "Q40_retirement_age")
	assert.False(t, retirementAge.AppliesTo(young))
	assert.False(t, retirementAge.AppliesTo(withKids))
	assert.True(t, retirementAge.AppliesTo(&UserProfile{Age: 52}))

	familyPlanning := questionByID(t, "Q5_family_priorities")
	assert.True(t, familyPlanning.AppliesTo(noKids))
	assert.False(t, familyPlanning.AppliesTo(withKids))
}

func questionByID(t *testing.T, id string) *QuestionSpec {
	t.Helper()
	for _, q := range DefaultQuestionBank() {
		if q.ID == id {
			return q
		}
	}
	t.Fatalf("question %s not in bank", id)
	return nil
}
