// Package generators provides the built-in question sources: closed-form
// arithmetic, percentage, fraction, ratio, compound, and estimation
// problems parameterized by difficulty. Every source draws from an
// injected *rand.Rand so callers (and tests) control determinism.
package generators

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// All returns one source per built-in question kind, sharing rng.
func All(rng *rand.Rand) []quiz.Source {
	return []quiz.Source{
		NewAddition(rng),
		NewSubtraction(rng),
		NewMultiplication(rng),
		NewDivision(rng),
		NewPercentage(rng),
		NewFractions(rng),
		NewRatios(rng),
		NewCompound(rng),
		NewEstimation(rng),
	}
}

// NewRegistry builds a quiz registry over all built-in sources.
func NewRegistry(rng *rand.Rand) *quiz.Registry {
	return quiz.NewRegistry(All(rng)...)
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// pick returns a uniform element of choices.
func pick[T any](rng *rand.Rand, choices []T) T {
	return choices[rng.Intn(len(choices))]
}

// ftoa formats a float with no trailing zeros ("36", "7.25").
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
