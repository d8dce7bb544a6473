package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 15, cfg.App.MaxRecommendations)
	assert.Empty(t, cfg.App.QuestionBankPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_RECOMMENDATIONS", "5")
	t.Setenv("QUESTION_BANK_PATH", "/tmp/bank.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.App.MaxRecommendations)
	assert.Equal(t, "/tmp/bank.yaml", cfg.App.QuestionBankPath)
}

func TestLoadBadMaxRecommendationsFallsBack(t *testing.T) {
	t.Setenv("MAX_RECOMMENDATIONS", "zero")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.App.MaxRecommendations)
}
