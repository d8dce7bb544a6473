package fixture_models

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"benefits-advisor-core/svc/models"

	"gopkg.in/yaml.v3"
)

// QuestionBankFixture is the YAML schema for an employer-supplied question
// bank overlay.
type QuestionBankFixture struct {
	QuestionBank struct {
		Questions []QuestionFixture `yaml:"questions"`
	} `yaml:"question_bank"`
}

// QuestionFixture is one question entry in the YAML file. Correlations are
// keyed by benefit slug and resolved against the catalog on import.
type QuestionFixture struct {
	ID            string             `yaml:"id"`
	Text          string             `yaml:"text"`
	ChoiceA       string             `yaml:"choice_a"`
	ChoiceB       string             `yaml:"choice_b"`
	Dimensions    []string           `yaml:"dimensions"`
	MinAge        int                `yaml:"min_age"`
	Dependents    string             `yaml:"dependents"`
	CorrelationsA map[string]float64 `yaml:"correlations_a"`
	CorrelationsB map[string]float64 `yaml:"correlations_b"`
}

// ImportQuestionBank loads the bundled question bank fixture and appends it
// to the built-in catalog, returning the combined bank.
func ImportQuestionBank() ([]*models.QuestionSpec, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(filename), "question_bank_fixture.yaml")
	return ImportQuestionBankFile(path)
}

// ImportQuestionBankFile loads a question bank overlay from an arbitrary
// YAML file and appends it to the built-in catalog.
func ImportQuestionBankFile(path string) ([]*models.QuestionSpec, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %v", err)
	}

	var fixture QuestionBankFixture
	if err := yaml.Unmarshal(yamlFile, &fixture); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %v", err)
	}

	bank := append([]*models.QuestionSpec{}, models.DefaultQuestionBank()...)
	seen := make(map[string]bool, len(bank))
	for _, q := range bank {
		seen[q.ID] = true
	}

	for _, qf := range fixture.QuestionBank.Questions {
		spec, err := qf.toSpec()
		if err != nil {
			return nil, fmt.Errorf("question %s: %v", qf.ID, err)
		}
		if seen[spec.ID] {
			return nil, fmt.Errorf("question %s: duplicate id", spec.ID)
		}
		seen[spec.ID] = true
		bank = append(bank, spec)
	}

	return bank, nil
}

func (qf *QuestionFixture) toSpec() (*models.QuestionSpec, error) {
	if qf.ID == "" || qf.Text == "" || qf.ChoiceA == "" || qf.ChoiceB == "" {
		return nil, fmt.Errorf("id, text and both choices are required")
	}

	var dependents models.DependentsRule
	switch qf.Dependents {
	case "", "any":
		dependents = models.DependentsAny
	case "required":
		dependents = models.DependentsRequired
	case "none":
		dependents = models.DependentsNone
	default:
		return nil, fmt.Errorf("unknown dependents rule %q", qf.Dependents)
	}

	corrA, err := resolveCorrelations(qf.CorrelationsA)
	if err != nil {
		return nil, err
	}
	corrB, err := resolveCorrelations(qf.CorrelationsB)
	if err != nil {
		return nil, err
	}
	if len(corrA) == 0 && len(corrB) == 0 {
		return nil, fmt.Errorf("at least one choice needs correlations")
	}

	return &models.QuestionSpec{
		ID:            qf.ID,
		Text:          qf.Text,
		ChoiceA:       qf.ChoiceA,
		ChoiceB:       qf.ChoiceB,
		CorrelationsA: corrA,
		CorrelationsB: corrB,
		Dimensions:    qf.Dimensions,
		MinAge:        qf.MinAge,
		Dependents:    dependents,
	}, nil
}

func resolveCorrelations(raw map[string]float64) (models.CorrelationMap, error) {
	out := make(models.CorrelationMap, len(raw))
	for slug, corr := range raw {
		b, err := models.BenefitCategoryFromSlug(slug)
		if err != nil {
			return nil, err
		}
		if corr < -1 || corr > 1 {
			return nil, fmt.Errorf("correlation %f for %s out of [-1, 1]", corr, slug)
		}
		out[b] = corr
	}
	return out, nil
}
