// Package quiz defines the question model shared by generators, the
// session engine, and the answer validator.
package quiz

// Difficulty is a question or session difficulty level.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"

	// Adaptive is a session-level pseudo-difficulty. Questions are never
	// generated at this level; the engine resolves it to a concrete level
	// from recent performance before each request.
	Adaptive Difficulty = "adaptive"
)

// Category groups question kinds into selection pools.
type Category string

const (
	CategoryArithmetic Category = "arithmetic"
	CategoryPercentage Category = "percentage"
	CategoryFractions  Category = "fractions"
	CategoryRatios     Category = "ratios"
	CategoryCompound   Category = "compound"
	CategoryEstimation Category = "estimation"

	// CategoryMixed selects from every registered kind.
	CategoryMixed Category = "mixed"

	// CategoryTargeted restricts selection to historically weak kinds.
	// Resolution happens in the session engine, not the registry.
	CategoryTargeted Category = "targeted"
)

// Kind is the fine-grained question kind, e.g. "addition".
type Kind string

const (
	KindAddition       Kind = "addition"
	KindSubtraction    Kind = "subtraction"
	KindMultiplication Kind = "multiplication"
	KindDivision       Kind = "division"
	KindPercentage     Kind = "percentage"
	KindFractions      Kind = "fractions"
	KindRatios         Kind = "ratios"
	KindCompound       Kind = "compound"
	KindEstimation     Kind = "estimation"
)

// Question is a single generated question. Created once by a Source and
// never mutated afterwards.
type Question struct {
	// Kind is the fine-grained question kind for analytics and targeting.
	Kind Kind

	// Category is the pool the kind belongs to.
	Category Category

	// Difficulty the question was generated at (never Adaptive).
	Difficulty Difficulty

	// Text is the human-readable prompt, e.g. "What is 15% of 240?".
	Text string

	// CorrectAnswer is the canonical answer as a string.
	CorrectAnswer string

	// AcceptableAnswers holds every accepted spelling of the answer.
	// Always non-empty and always contains CorrectAnswer.
	AcceptableAnswers []string

	// Metadata carries generator-specific values for analytics.
	// The engine never reads it.
	Metadata map[string]any
}

// NewQuestion builds a Question, enforcing that CorrectAnswer appears in
// AcceptableAnswers even when the generator forgot to include it.
func NewQuestion(kind Kind, category Category, difficulty Difficulty, text, correct string, acceptable []string, metadata map[string]any) Question {
	found := false
	for _, a := range acceptable {
		if a == correct {
			found = true
			break
		}
	}
	if !found {
		acceptable = append(acceptable, correct)
	}
	return Question{
		Kind:              kind,
		Category:          category,
		Difficulty:        difficulty,
		Text:              text,
		CorrectAnswer:     correct,
		AcceptableAnswers: acceptable,
		Metadata:          metadata,
	}
}
