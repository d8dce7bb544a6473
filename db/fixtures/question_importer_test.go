package fixture_models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benefits-advisor-core/svc/models"
)

func TestImportQuestionBankAppendsOverlay(t *testing.T) {
	bank, err := ImportQuestionBank()
	require.NoError(t, err)

	builtIn := len(models.DefaultQuestionBank())
	assert.Equal(t, builtIn+3, len(bank))

	seen := make(map[string]bool)
	for _, q := range bank {
		require.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
	assert.True(t, seen["QE1_office_commute"])

	for _, q := range bank[builtIn:] {
		for _, side := range []models.ChoiceSide{models.SideA, models.SideB} {
			for b, corr := range q.Correlations(side) {
				assert.True(t, b.Valid())
				assert.GreaterOrEqual(t, corr, -1.0)
				assert.LessOrEqual(t, corr, 1.0)
			}
		}
	}
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportQuestionBankRejectsUnknownSlug(t *testing.T) {
	path := writeFixture(t, `
question_bank:
  questions:
    - id: QX1
      text: "t"
      choice_a: "a"
      choice_b: "b"
      correlations_a:
        moon_base_insurance: 0.5
`)
	_, err := ImportQuestionBankFile(path)
	assert.ErrorContains(t, err, "unknown benefit category")
}

func TestImportQuestionBankRejectsOutOfRangeCorrelation(t *testing.T) {
	path := writeFixture(t, `
question_bank:
  questions:
    - id: QX1
      text: "t"
      choice_a: "a"
      choice_b: "b"
      correlations_a:
        medical: 1.5
`)
	_, err := ImportQuestionBankFile(path)
	assert.ErrorContains(t, err, "out of [-1, 1]")
}

func TestImportQuestionBankRejectsDuplicateOfBuiltIn(t *testing.T) {
	path := writeFixture(t, `
question_bank:
  questions:
    - id: Q1_risk_behavior
      text: "t"
      choice_a: "a"
      choice_b: "b"
      correlations_a:
        medical: 0.5
`)
	_, err := ImportQuestionBankFile(path)
	assert.ErrorContains(t, err, "duplicate id")
}

func TestImportQuestionBankRejectsIncompleteEntry(t *testing.T) {
	path := writeFixture(t, `
question_bank:
  questions:
    - id: QX1
      text: "t"
      correlations_a:
        medical: 0.5
`)
	_, err := ImportQuestionBankFile(path)
	assert.Error(t, err)
}
