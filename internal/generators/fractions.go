package generators

import (
	"fmt"
	"math/rand"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// fraction is a reduced rational with the sign carried on the numerator.
type fraction struct {
	num, den int
}

func newFraction(num, den int) fraction {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	if g != 0 {
		num, den = num/g, den/g
	}
	return fraction{num: num, den: den}
}

func (f fraction) add(o fraction) fraction {
	return newFraction(f.num*o.den+o.num*f.den, f.den*o.den)
}

func (f fraction) sub(o fraction) fraction {
	return newFraction(f.num*o.den-o.num*f.den, f.den*o.den)
}

func (f fraction) mul(o fraction) fraction {
	return newFraction(f.num*o.num, f.den*o.den)
}

func (f fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// Fractions generates conversions between fractions and decimals, plus
// fraction arithmetic on hard.
type Fractions struct {
	rng *rand.Rand
}

func NewFractions(rng *rand.Rand) *Fractions { return &Fractions{rng: rng} }

func (g *Fractions) Kind() quiz.Kind         { return quiz.KindFractions }
func (g *Fractions) Category() quiz.Category { return quiz.CategoryFractions }

func (g *Fractions) Generate(difficulty quiz.Difficulty) quiz.Question {
	variants := []string{"fraction_to_decimal", "decimal_to_fraction"}
	if difficulty == quiz.Hard {
		variants = append(variants, "fraction_arithmetic")
	}

	switch pick(g.rng, variants) {
	case "fraction_to_decimal":
		return g.fractionToDecimal(difficulty)
	case "decimal_to_fraction":
		return g.decimalToFraction(difficulty)
	default:
		return g.fractionArithmetic(difficulty)
	}
}

func (g *Fractions) fractionToDecimal(difficulty quiz.Difficulty) quiz.Question {
	var num, den int
	switch difficulty {
	case quiz.Easy:
		f := pick(g.rng, []fraction{{1, 2}, {1, 4}, {3, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5}})
		num, den = f.num, f.den
	case quiz.Medium:
		f := pick(g.rng, []fraction{{3, 8}, {5, 8}, {1, 6}, {5, 6}, {2, 7}, {3, 7}})
		num, den = f.num, f.den
	default:
		num = randInt(g.rng, 1, 12)
		den = pick(g.rng, []int{13, 17, 19, 23})
	}

	exact := float64(num) / float64(den)
	acceptable := []string{
		ftoa(roundTo(exact, 2)),
		ftoa(roundTo(exact, 3)),
		ftoa(roundTo(exact, 4)),
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("Convert %d/%d to a decimal (round to 2-3 decimal places)", num, den),
		ftoa(roundTo(exact, 2)), acceptable,
		map[string]any{"numerator": num, "denominator": den, "type": "fraction_to_decimal"},
	)
}

// decimalFractions maps each offered decimal to its reduced fraction; the
// "repeating" decimals intentionally pair with the fraction they round from
// (0.167 → 1/6, 0.333 → 1/3).
var decimalFractions = map[quiz.Difficulty][]struct {
	decimal string
	frac    fraction
}{
	quiz.Easy: {
		{"0.5", fraction{1, 2}}, {"0.25", fraction{1, 4}}, {"0.75", fraction{3, 4}},
		{"0.2", fraction{1, 5}}, {"0.4", fraction{2, 5}}, {"0.6", fraction{3, 5}}, {"0.8", fraction{4, 5}},
	},
	quiz.Medium: {
		{"0.125", fraction{1, 8}}, {"0.375", fraction{3, 8}}, {"0.625", fraction{5, 8}},
		{"0.875", fraction{7, 8}}, {"0.167", fraction{1, 6}}, {"0.833", fraction{5, 6}},
	},
	quiz.Hard: {
		{"0.333", fraction{1, 3}}, {"0.667", fraction{2, 3}}, {"0.143", fraction{1, 7}},
		{"0.429", fraction{3, 7}}, {"0.571", fraction{4, 7}},
	},
}

func (g *Fractions) decimalToFraction(difficulty quiz.Difficulty) quiz.Question {
	table, ok := decimalFractions[difficulty]
	if !ok {
		table = decimalFractions[quiz.Medium]
	}
	entry := pick(g.rng, table)

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("Convert %s to a simplified fraction (format: numerator/denominator, e.g., 1/2)", entry.decimal),
		entry.frac.String(), nil,
		map[string]any{"decimal": entry.decimal, "type": "decimal_to_fraction"},
	)
}

func (g *Fractions) fractionArithmetic(difficulty quiz.Difficulty) quiz.Question {
	op := pick(g.rng, []string{"+", "-", "×"})
	num1, den1 := randInt(g.rng, 1, 5), pick(g.rng, []int{2, 3, 4, 5, 6})
	num2, den2 := randInt(g.rng, 1, 5), pick(g.rng, []int{2, 3, 4, 5, 6})

	f1, f2 := newFraction(num1, den1), newFraction(num2, den2)
	// Keep subtraction results positive; an exact cancellation turns into
	// addition rather than asking for "0/1".
	if op == "-" {
		if f1.num*f2.den < f2.num*f1.den {
			f1, f2 = f2, f1
			num1, den1, num2, den2 = num2, den2, num1, den1
		}
		if f1.num*f2.den == f2.num*f1.den {
			op = "+"
		}
	}
	var result fraction
	switch op {
	case "+":
		result = f1.add(f2)
	case "-":
		result = f1.sub(f2)
	default:
		result = f1.mul(f2)
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("Calculate: %d/%d %s %d/%d (format: numerator/denominator)", num1, den1, op, num2, den2),
		result.String(), nil,
		map[string]any{"frac1": f1.String(), "frac2": f2.String(), "operation": op, "type": "fraction_arithmetic"},
	)
}
