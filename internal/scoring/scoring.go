// Package scoring computes per-question points from correctness, combo
// length, response time, and difficulty. Every function is pure and
// deterministic.
package scoring

import "github.com/abhisek/mathsprint/internal/quiz"

// BasePointsPerQuestion is the flat award for a correct answer before
// multipliers.
const BasePointsPerQuestion = 100

// BasePoints returns the pre-multiplier points for an answer.
func BasePoints(correct bool) int {
	if correct {
		return BasePointsPerQuestion
	}
	return 0
}

// ComboMultiplier maps a consecutive-correct streak to its multiplier.
// Non-decreasing, saturating at 3.0 from combo 15 on.
func ComboMultiplier(combo int) float64 {
	switch {
	case combo < 3:
		return 1.0
	case combo < 5:
		return 1.5
	case combo < 10:
		return 2.0
	case combo < 15:
		return 2.5
	default:
		return 3.0
	}
}

// SpeedBonus awards flat bonus points for fast answers.
func SpeedBonus(timeTaken float64) int {
	switch {
	case timeTaken < 2.0:
		return 100
	case timeTaken < 3.0:
		return 50
	case timeTaken < 5.0:
		return 25
	default:
		return 0
	}
}

// DifficultyMultiplier scales the whole score by question difficulty.
// Unknown values map to 1.0 rather than erroring.
func DifficultyMultiplier(d quiz.Difficulty) float64 {
	switch d {
	case quiz.Easy:
		return 1.0
	case quiz.Medium:
		return 1.5
	case quiz.Hard:
		return 2.0
	case quiz.Adaptive:
		return 1.5
	default:
		return 1.0
	}
}

// QuestionScore computes the total points for one answered question.
// combo is the streak count after this answer was applied. Incorrect
// answers always score exactly 0; the result is truncated, not rounded.
func QuestionScore(correct bool, timeTaken float64, difficulty quiz.Difficulty, combo int) int {
	if !correct {
		return 0
	}
	base := float64(BasePoints(correct))
	total := (base*ComboMultiplier(combo) + float64(SpeedBonus(timeTaken))) * DifficultyMultiplier(difficulty)
	return int(total)
}
