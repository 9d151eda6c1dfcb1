package generators

import (
	"fmt"
	"math/rand"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// Ratios generates proportion problems: two-way ratios on easy, three-way
// splits on medium, and trading-flavored word problems on hard.
type Ratios struct {
	rng *rand.Rand
}

func NewRatios(rng *rand.Rand) *Ratios { return &Ratios{rng: rng} }

func (g *Ratios) Kind() quiz.Kind         { return quiz.KindRatios }
func (g *Ratios) Category() quiz.Category { return quiz.CategoryRatios }

func (g *Ratios) Generate(difficulty quiz.Difficulty) quiz.Question {
	switch difficulty {
	case quiz.Easy:
		return g.simpleRatio(difficulty)
	case quiz.Medium:
		return g.threeWayRatio(difficulty)
	default:
		return g.wordProblem(difficulty)
	}
}

func (g *Ratios) simpleRatio(difficulty quiz.Difficulty) quiz.Question {
	ratioA := randInt(g.rng, 2, 9)
	ratioB := randInt(g.rng, 2, 9)

	var text string
	var answer int
	if g.rng.Intn(2) == 0 {
		valueA := ratioA * randInt(g.rng, 2, 10)
		answer = valueA * ratioB / ratioA
		text = fmt.Sprintf("If A:B is %d:%d and A = %d, what is B?", ratioA, ratioB, valueA)
	} else {
		valueB := ratioB * randInt(g.rng, 2, 10)
		answer = valueB * ratioA / ratioB
		text = fmt.Sprintf("If A:B is %d:%d and B = %d, what is A?", ratioA, ratioB, valueB)
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty, text, itoa(answer), nil,
		map[string]any{"ratio_a": ratioA, "ratio_b": ratioB, "type": "simple_ratio"})
}

func (g *Ratios) threeWayRatio(difficulty quiz.Difficulty) quiz.Question {
	ratioA := randInt(g.rng, 1, 5)
	ratioB := randInt(g.rng, 2, 6)
	ratioC := randInt(g.rng, 3, 7)

	sum := ratioA + ratioB + ratioC
	// Snap the total to a multiple of the ratio sum so shares are whole.
	total := randInt(g.rng, 50, 300) / sum * sum

	which := pick(g.rng, []string{"A", "B", "C"})
	var answer int
	switch which {
	case "A":
		answer = total * ratioA / sum
	case "B":
		answer = total * ratioB / sum
	default:
		answer = total * ratioC / sum
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("If A:B:C is %d:%d:%d and the total is %d, what is %s?", ratioA, ratioB, ratioC, total, which),
		itoa(answer), nil,
		map[string]any{"ratios": []int{ratioA, ratioB, ratioC}, "total": total, "type": "three_way_ratio"})
}

func (g *Ratios) wordProblem(difficulty quiz.Difficulty) quiz.Question {
	wins := randInt(g.rng, 2, 7)
	losses := randInt(g.rng, 1, 5)

	var text string
	var answer int
	if g.rng.Intn(2) == 0 {
		actualWins := wins * randInt(g.rng, 5, 20)
		answer = actualWins * losses / wins
		text = fmt.Sprintf("You have %d winning trades for every %d losing trades. If you had %d winning trades, how many losing trades did you have?", wins, losses, actualWins)
	} else {
		actualLosses := losses * randInt(g.rng, 5, 20)
		answer = actualLosses * wins / losses
		text = fmt.Sprintf("You have %d winning trades for every %d losing trades. If you had %d losing trades, how many winning trades did you have?", wins, losses, actualLosses)
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty, text, itoa(answer), nil,
		map[string]any{"win_ratio": wins, "loss_ratio": losses, "type": "word_problem"})
}
