package models

// ChoiceSide identifies which of a question's two choices was selected.
type ChoiceSide string

const (
	SideA ChoiceSide = "A"
	SideB ChoiceSide = "B"
)

// Valid reports whether the side is one of the two legal values.
func (s ChoiceSide) Valid() bool {
	return s == SideA || s == SideB
}

// CorrelationMap holds a question choice's signed weights in [-1, 1] per
// benefit. Positive weights increase estimated need, negative decrease it.
type CorrelationMap map[BenefitCategory]float64

// ForEach visits entries in catalog order. Map iteration order is random in
// Go; accumulating floats in a fixed order keeps every score computation
// byte-for-byte reproducible across sessions.
func (m CorrelationMap) ForEach(fn func(b BenefitCategory, corr float64)) {
	for i := 0; i < NumBenefitCategories; i++ {
		b := BenefitCategory(i)
		if corr, ok := m[b]; ok {
			fn(b, corr)
		}
	}
}

// DependentsRule is a hard demographic applicability filter on a question.
type DependentsRule int

const (
	// DependentsAny places no restriction on the household.
	DependentsAny DependentsRule = iota
	// DependentsRequired limits the question to profiles with dependents,
	// e.g. childcare logistics.
	DependentsRequired
	// DependentsNone limits the question to profiles without dependents,
	// e.g. future family planning.
	DependentsNone
)

// QuestionSpec is one catalog entry: a binary-choice question with a
// correlation map per choice and topical dimension tags. Specs are shared
// read-only across all sessions; the engine never writes back into them.
type QuestionSpec struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	ChoiceA string `json:"choice_a"`
	ChoiceB string `json:"choice_b"`

	CorrelationsA CorrelationMap `json:"correlations_a"`
	CorrelationsB CorrelationMap `json:"correlations_b"`

	Dimensions []string `json:"dimensions"`

	// Hard applicability filters, not weights.
	MinAge     int            `json:"min_age,omitempty"`
	Dependents DependentsRule `json:"dependents_rule,omitempty"`
}

// Correlations returns the correlation map for the chosen side.
func (q *QuestionSpec) Correlations(side ChoiceSide) CorrelationMap {
	if side == SideA {
		return q.CorrelationsA
	}
	return q.CorrelationsB
}

// AppliesTo evaluates the question's demographic applicability rules.
func (q *QuestionSpec) AppliesTo(p *UserProfile) bool {
	if q.MinAge > 0 && p.Age < q.MinAge {
		return false
	}
	switch q.Dependents {
	case DependentsRequired:
		return p.HasDependents()
	case DependentsNone:
		return !p.HasDependents()
	}
	return true
}

// AnsweredQuestion is one entry of a session's append-only answer log.
type AnsweredQuestion struct {
	QuestionID string     `json:"question_id"`
	Side       ChoiceSide `json:"side"`
	// Weight is the confidence weight the belief update applied.
	Weight float64 `json:"weight"`
	// SelectionScore is the question's selector score at the moment it was
	// answered; the diminishing-returns stopping rule averages these.
	SelectionScore float64 `json:"selection_score"`
}
