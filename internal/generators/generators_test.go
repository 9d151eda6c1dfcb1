package generators

import (
	"math/rand"
	"testing"

	"github.com/abhisek/mathsprint/internal/quiz"
)

var allDifficulties = []quiz.Difficulty{quiz.Easy, quiz.Medium, quiz.Hard}

// Every source, at every difficulty, must produce questions whose canonical
// answer validates against the question itself.
func TestGenerate_CorrectAnswerAlwaysValidates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, src := range All(rng) {
		for _, d := range allDifficulties {
			for i := 0; i < 50; i++ {
				q := src.Generate(d)

				if q.CorrectAnswer == "" {
					t.Fatalf("%s/%s: empty correct answer for %q", src.Kind(), d, q.Text)
				}
				if len(q.AcceptableAnswers) == 0 {
					t.Fatalf("%s/%s: empty acceptable answers for %q", src.Kind(), d, q.Text)
				}

				found := false
				for _, a := range q.AcceptableAnswers {
					if a == q.CorrectAnswer {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("%s/%s: correct answer %q not in acceptable answers for %q",
						src.Kind(), d, q.CorrectAnswer, q.Text)
				}

				if !quiz.Validate(q.CorrectAnswer, q) {
					t.Errorf("%s/%s: Validate(correct answer %q) = false for %q",
						src.Kind(), d, q.CorrectAnswer, q.Text)
				}
			}
		}
	}
}

func TestGenerate_TagsKindCategoryDifficulty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, src := range All(rng) {
		for _, d := range allDifficulties {
			q := src.Generate(d)
			if q.Kind != src.Kind() {
				t.Errorf("question kind %q, source kind %q", q.Kind, src.Kind())
			}
			if q.Category != src.Category() {
				t.Errorf("question category %q, source category %q", q.Category, src.Category())
			}
			if q.Difficulty != d {
				t.Errorf("%s: question difficulty %q, requested %q", src.Kind(), q.Difficulty, d)
			}
			if q.Text == "" {
				t.Errorf("%s: empty question text", src.Kind())
			}
		}
	}
}

func TestNewRegistry_CoversAllCategories(t *testing.T) {
	reg := NewRegistry(rand.New(rand.NewSource(1)))

	categories := []quiz.Category{
		quiz.CategoryArithmetic,
		quiz.CategoryPercentage,
		quiz.CategoryFractions,
		quiz.CategoryRatios,
		quiz.CategoryCompound,
		quiz.CategoryEstimation,
		quiz.CategoryMixed,
	}
	for _, c := range categories {
		pool, err := reg.Pool(c)
		if err != nil {
			t.Errorf("Pool(%s): %v", c, err)
			continue
		}
		if len(pool) == 0 {
			t.Errorf("Pool(%s) is empty", c)
		}
	}

	mixed, _ := reg.Pool(quiz.CategoryMixed)
	if len(mixed) != 9 {
		t.Errorf("mixed pool size = %d, want 9", len(mixed))
	}
}

func TestDivision_ExactBelowHard(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewDivision(rng)

	for _, d := range []quiz.Difficulty{quiz.Easy, quiz.Medium} {
		for i := 0; i < 25; i++ {
			q := g.Generate(d)
			dividend := q.Metadata["dividend"].(int)
			divisor := q.Metadata["divisor"].(int)
			if dividend%divisor != 0 {
				t.Errorf("%s division %d ÷ %d not exact", d, dividend, divisor)
			}
		}
	}
}

func TestSubtraction_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := NewSubtraction(rng)

	for _, d := range allDifficulties {
		for i := 0; i < 25; i++ {
			q := g.Generate(d)
			a := q.Metadata["operand1"].(int)
			b := q.Metadata["operand2"].(int)
			if a-b < 0 {
				t.Errorf("%s subtraction went negative: %d - %d", d, a, b)
			}
		}
	}
}

func TestEstimation_BandContainsExactAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := NewEstimation(rng)

	for _, d := range allDifficulties {
		for i := 0; i < 25; i++ {
			q := g.Generate(d)
			if len(q.AcceptableAnswers) < 2 {
				t.Errorf("estimation band too narrow for %q: %d entries", q.Text, len(q.AcceptableAnswers))
			}
		}
	}
}
