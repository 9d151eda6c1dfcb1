package generators

import (
	"fmt"
	"math/rand"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// Percentage generates three problem shapes: "X% of Y", percentage change
// between two values, and reverse percentage ("P is X% of what?").
type Percentage struct {
	rng *rand.Rand
}

func NewPercentage(rng *rand.Rand) *Percentage { return &Percentage{rng: rng} }

func (g *Percentage) Kind() quiz.Kind         { return quiz.KindPercentage }
func (g *Percentage) Category() quiz.Category { return quiz.CategoryPercentage }

func (g *Percentage) Generate(difficulty quiz.Difficulty) quiz.Question {
	switch pick(g.rng, []string{"find_percentage", "percentage_change", "reverse_percentage"}) {
	case "find_percentage":
		return g.findPercentage(difficulty)
	case "percentage_change":
		return g.percentageChange(difficulty)
	default:
		return g.reversePercentage(difficulty)
	}
}

func (g *Percentage) findPercentage(difficulty quiz.Difficulty) quiz.Question {
	var percent float64
	var number int
	switch difficulty {
	case quiz.Easy:
		percent = float64(pick(g.rng, []int{10, 25, 50, 75}))
		number = randInt(g.rng, 1, 20) * 10
	case quiz.Medium:
		percent = float64(pick(g.rng, []int{15, 17, 20, 23, 30, 35}))
		number = randInt(g.rng, 50, 500)
	default:
		percent = roundTo(3.5+g.rng.Float64()*22.0, 1)
		number = randInt(g.rng, 100, 1000)
	}

	answer := roundTo(float64(number)*percent/100, 2)
	acceptable := []string{ftoa(answer)}
	if answer == float64(int(answer)) {
		acceptable = append(acceptable, itoa(int(answer)))
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("What is %s%% of %d?", ftoa(percent), number),
		ftoa(answer), acceptable,
		map[string]any{"percent": percent, "number": number, "type": "find_percentage"},
	)
}

func (g *Percentage) percentageChange(difficulty quiz.Difficulty) quiz.Question {
	var old int
	var newVal, change float64
	switch difficulty {
	case quiz.Easy:
		// Keep the displayed values integral: snap the new value and
		// recompute the change from what the player actually sees.
		old = randInt(g.rng, 50, 200)
		change = float64(pick(g.rng, []int{10, 20, 25, 50}))
		newVal = roundTo(float64(old)*(1+change/100), 0)
		change = roundTo((newVal-float64(old))/float64(old)*100, 2)
	case quiz.Medium:
		old = randInt(g.rng, 50, 300)
		change = float64(randInt(g.rng, -30, 50))
		newVal = roundTo(float64(old)*(1+change/100), 0)
		change = roundTo((newVal-float64(old))/float64(old)*100, 2)
	default:
		old = randInt(g.rng, 100, 500)
		newVal = float64(randInt(g.rng, 80, 600))
		change = roundTo((newVal-float64(old))/float64(old)*100, 2)
	}

	answer := roundTo(change, 2)
	acceptable := []string{ftoa(answer), ftoa(roundTo(answer, 1)), itoa(int(answer))}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("What is the percentage change from %d to %d?", old, int(newVal)),
		ftoa(answer), acceptable,
		map[string]any{"old_value": old, "new_value": newVal, "type": "percentage_change"},
	)
}

func (g *Percentage) reversePercentage(difficulty quiz.Difficulty) quiz.Question {
	var whole, percent int
	switch difficulty {
	case quiz.Easy:
		whole = randInt(g.rng, 50, 200)
		percent = pick(g.rng, []int{50, 80, 25})
	case quiz.Medium:
		whole = randInt(g.rng, 50, 300)
		percent = pick(g.rng, []int{60, 75, 85, 90})
	default:
		whole = randInt(g.rng, 100, 500)
		percent = randInt(g.rng, 65, 95)
	}

	part := roundTo(float64(whole)*float64(percent)/100, 2)

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty,
		fmt.Sprintf("If %s is %d%% of a number, what is the number?", ftoa(part), percent),
		itoa(whole), []string{itoa(whole), ftoa(roundTo(float64(whole), 1))},
		map[string]any{"part": part, "percent": percent, "type": "reverse_percentage"},
	)
}
