package generators

import (
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// Addition generates column-addition prompts; operand magnitude scales
// with difficulty (2-digit, 3-digit, 4-digit).
type Addition struct {
	rng *rand.Rand
}

func NewAddition(rng *rand.Rand) *Addition { return &Addition{rng: rng} }

func (g *Addition) Kind() quiz.Kind         { return quiz.KindAddition }
func (g *Addition) Category() quiz.Category { return quiz.CategoryArithmetic }

func (g *Addition) Generate(difficulty quiz.Difficulty) quiz.Question {
	var a, b int
	switch difficulty {
	case quiz.Easy:
		a, b = randInt(g.rng, 10, 99), randInt(g.rng, 10, 99)
	case quiz.Medium:
		a, b = randInt(g.rng, 100, 999), randInt(g.rng, 100, 999)
	default:
		a, b = randInt(g.rng, 1000, 9999), randInt(g.rng, 1000, 9999)
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("%s + %s", humanize.Comma(int64(a)), humanize.Comma(int64(b))),
		itoa(a+b), nil,
		map[string]any{"operand1": a, "operand2": b, "operation": "addition"},
	)
}

// Subtraction keeps the minuend at least as large as the subtrahend so
// answers stay non-negative.
type Subtraction struct {
	rng *rand.Rand
}

func NewSubtraction(rng *rand.Rand) *Subtraction { return &Subtraction{rng: rng} }

func (g *Subtraction) Kind() quiz.Kind         { return quiz.KindSubtraction }
func (g *Subtraction) Category() quiz.Category { return quiz.CategoryArithmetic }

func (g *Subtraction) Generate(difficulty quiz.Difficulty) quiz.Question {
	var a, b int
	switch difficulty {
	case quiz.Easy:
		a = randInt(g.rng, 20, 99)
		b = randInt(g.rng, 10, a)
	case quiz.Medium:
		a = randInt(g.rng, 200, 999)
		b = randInt(g.rng, 100, a)
	default:
		a = randInt(g.rng, 2000, 9999)
		b = randInt(g.rng, 1000, a)
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("%s - %s", humanize.Comma(int64(a)), humanize.Comma(int64(b))),
		itoa(a-b), nil,
		map[string]any{"operand1": a, "operand2": b, "operation": "subtraction"},
	)
}

// Multiplication scales from 1-digit × 2-digit up to 2-digit × 3-digit.
type Multiplication struct {
	rng *rand.Rand
}

func NewMultiplication(rng *rand.Rand) *Multiplication { return &Multiplication{rng: rng} }

func (g *Multiplication) Kind() quiz.Kind         { return quiz.KindMultiplication }
func (g *Multiplication) Category() quiz.Category { return quiz.CategoryArithmetic }

func (g *Multiplication) Generate(difficulty quiz.Difficulty) quiz.Question {
	var a, b int
	switch difficulty {
	case quiz.Easy:
		a, b = randInt(g.rng, 2, 9), randInt(g.rng, 10, 99)
	case quiz.Medium:
		a, b = randInt(g.rng, 10, 99), randInt(g.rng, 10, 99)
	default:
		a, b = randInt(g.rng, 10, 99), randInt(g.rng, 100, 999)
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("%s × %s", humanize.Comma(int64(a)), humanize.Comma(int64(b))),
		itoa(a*b), nil,
		map[string]any{"operand1": a, "operand2": b, "operation": "multiplication"},
	)
}

// Division produces exact quotients on easy and medium; hard allows a
// two-decimal quotient.
type Division struct {
	rng *rand.Rand
}

func NewDivision(rng *rand.Rand) *Division { return &Division{rng: rng} }

func (g *Division) Kind() quiz.Kind         { return quiz.KindDivision }
func (g *Division) Category() quiz.Category { return quiz.CategoryArithmetic }

func (g *Division) Generate(difficulty quiz.Difficulty) quiz.Question {
	var dividend, divisor int
	var answer string

	switch difficulty {
	case quiz.Easy:
		divisor = randInt(g.rng, 2, 9)
		quotient := randInt(g.rng, 5, 15)
		dividend = divisor * quotient
		answer = itoa(quotient)
	case quiz.Medium:
		divisor = randInt(g.rng, 10, 30)
		quotient := randInt(g.rng, 10, 50)
		dividend = divisor * quotient
		answer = itoa(quotient)
	default:
		divisor = randInt(g.rng, 10, 99)
		dividend = randInt(g.rng, 100, 999)
		answer = ftoa(roundTo(float64(dividend)/float64(divisor), 2))
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("%s ÷ %d", humanize.Comma(int64(dividend)), divisor),
		answer, nil,
		map[string]any{"dividend": dividend, "divisor": divisor, "operation": "division"},
	)
}
