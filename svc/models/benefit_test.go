package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitCatalogIntegrity(t *testing.T) {
	assert.Equal(t, 60, NumBenefitCategories)

	seen := make(map[string]bool)
	for _, b := range AllBenefitCategories() {
		require.True(t, b.Valid(), "category %d should be valid", b)
		slug := b.Slug()
		require.NotEmpty(t, slug)
		require.False(t, seen[slug], "duplicate slug %s", slug)
		seen[slug] = true

		assert.NotEmpty(t, b.DisplayName())
		assert.NotEmpty(t, b.Group())

		roundTrip, err := BenefitCategoryFromSlug(slug)
		require.NoError(t, err)
		assert.Equal(t, b, roundTrip)
	}
}

func TestBenefitCategoryFromSlugUnknown(t *testing.T) {
	_, err := BenefitCategoryFromSlug("time_travel_insurance")
	assert.Error(t, err)
}

func TestBenefitCategoryJSONAsSlug(t *testing.T) {
	data, err := json.Marshal(BenefitDependentCareFSA)
	require.NoError(t, err)
	assert.Equal(t, `"dependent_care_fsa"`, string(data))

	var b BenefitCategory
	require.NoError(t, json.Unmarshal([]byte(`"pet_insurance"`), &b))
	assert.Equal(t, BenefitPetInsurance, b)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &b))
}

func TestBenefitCategoryInvalid(t *testing.T) {
	assert.False(t, BenefitCategory(-1).Valid())
	assert.False(t, BenefitCategory(NumBenefitCategories).Valid())
	assert.Equal(t, "unknown", BenefitCategory(-1).Slug())
}
