package generators

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// Estimation generates problems whose answers are accepted within a
// tolerance band; the band is materialized as acceptable-answer entries so
// the validator needs no special casing.
type Estimation struct {
	rng *rand.Rand
}

func NewEstimation(rng *rand.Rand) *Estimation { return &Estimation{rng: rng} }

func (g *Estimation) Kind() quiz.Kind         { return quiz.KindEstimation }
func (g *Estimation) Category() quiz.Category { return quiz.CategoryEstimation }

func (g *Estimation) Generate(difficulty quiz.Difficulty) quiz.Question {
	switch pick(g.rng, []string{"multiplication", "division", "square_root"}) {
	case "multiplication":
		return g.multiplication(difficulty)
	case "division":
		return g.division(difficulty)
	default:
		return g.squareRoot(difficulty)
	}
}

func (g *Estimation) multiplication(difficulty quiz.Difficulty) quiz.Question {
	var a, b int
	var tolerance float64
	switch difficulty {
	case quiz.Easy:
		a, b, tolerance = randInt(g.rng, 20, 99), randInt(g.rng, 10, 30), 0.10
	case quiz.Medium:
		a, b, tolerance = randInt(g.rng, 100, 500), randInt(g.rng, 20, 99), 0.08
	default:
		a, b, tolerance = randInt(g.rng, 200, 999), randInt(g.rng, 20, 99), 0.05
	}

	exact := a * b
	lo := int(float64(exact) * (1 - tolerance))
	hi := int(float64(exact) * (1 + tolerance))
	acceptable := make([]string, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		acceptable = append(acceptable, itoa(v))
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("Estimate: %d × %d (within %d%%)", a, b, int(tolerance*100)),
		itoa(exact), acceptable,
		map[string]any{"operand1": a, "operand2": b, "exact": exact, "tolerance": tolerance, "type": "multiplication"},
	)
}

func (g *Estimation) division(difficulty quiz.Difficulty) quiz.Question {
	var dividend, divisor int
	var tolerance float64
	switch difficulty {
	case quiz.Easy:
		divisor = randInt(g.rng, 5, 20)
		dividend = divisor * randInt(g.rng, 20, 100)
		tolerance = 0.10
	case quiz.Medium:
		divisor = randInt(g.rng, 10, 50)
		dividend = randInt(g.rng, 500, 2000)
		tolerance = 0.08
	default:
		divisor = randInt(g.rng, 20, 99)
		dividend = randInt(g.rng, 1000, 9999)
		tolerance = 0.05
	}

	exact := roundTo(float64(dividend)/float64(divisor), 2)
	lo := exact * (1 - tolerance)
	hi := exact * (1 + tolerance)

	seen := make(map[string]struct{})
	var acceptable []string
	add := func(s string) {
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			acceptable = append(acceptable, s)
		}
	}
	for v := int(math.Ceil(lo)); float64(v) <= hi; v++ {
		add(itoa(v))
	}
	for _, places := range []int{1, 2} {
		if v := roundTo(exact, places); v >= lo && v <= hi {
			add(ftoa(v))
		}
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("Estimate: %d ÷ %d (within %d%%)", dividend, divisor, int(tolerance*100)),
		ftoa(roundTo(exact, 1)), acceptable,
		map[string]any{"dividend": dividend, "divisor": divisor, "exact": exact, "tolerance": tolerance, "type": "division"},
	)
}

func (g *Estimation) squareRoot(difficulty quiz.Difficulty) quiz.Question {
	var number int
	var tolerance float64
	switch difficulty {
	case quiz.Easy:
		base := randInt(g.rng, 5, 12)
		number = base*base + randInt(g.rng, -5, 5)
		tolerance = 0.5
	case quiz.Medium:
		number = randInt(g.rng, 50, 200)
		tolerance = 0.5
	default:
		number = randInt(g.rng, 100, 500)
		tolerance = 1.0
	}

	exact := math.Sqrt(float64(number))
	lo := exact - tolerance
	hi := exact + tolerance

	seen := make(map[string]struct{})
	var acceptable []string
	for hundredth := int(lo * 100); hundredth <= int(hi*100); hundredth++ {
		v := float64(hundredth) / 100
		for _, places := range []int{2, 1} {
			s := ftoa(roundTo(v, places))
			if _, dup := seen[s]; !dup {
				seen[s] = struct{}{}
				acceptable = append(acceptable, s)
			}
		}
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("Estimate: √%d (within %s)", number, ftoa(tolerance)),
		ftoa(roundTo(exact, 1)), acceptable,
		map[string]any{"number": number, "exact": exact, "tolerance": tolerance, "type": "square_root"},
	)
}
