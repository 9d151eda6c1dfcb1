// Package adaptive derives the next question difficulty from a rolling
// window of recent answers.
package adaptive

import "github.com/abhisek/mathsprint/internal/quiz"

// Tunables holds the adjustment hyperparameters. The defaults are the
// values the trainer has always shipped with; they can be overridden from
// the config file.
type Tunables struct {
	// WindowSize bounds how many trailing results influence the decision.
	WindowSize int

	// StepUpAccuracy and StepUpAvgTime must both be met to raise the level.
	StepUpAccuracy float64
	StepUpAvgTime  float64

	// StepDownAccuracy alone triggers a drop when accuracy falls below it.
	StepDownAccuracy float64
}

// DefaultTunables returns the standard adjustment parameters.
func DefaultTunables() Tunables {
	return Tunables{
		WindowSize:       7,
		StepUpAccuracy:   0.9,
		StepUpAvgTime:    4.0,
		StepDownAccuracy: 0.6,
	}
}

// Sample is one answered question as the adjuster sees it.
type Sample struct {
	Correct    bool
	TimeTaken  float64
	Difficulty quiz.Difficulty
}

// Initial is the designated starting difficulty for adaptive sessions.
func Initial() quiz.Difficulty {
	return quiz.Medium
}

// Suggest returns the difficulty for the next question given recent
// results, oldest first. Fewer than three results always yields medium:
// not enough signal to move off the cold-start level.
//
// The two thresholds are deliberately far apart. Performance has to be
// clearly strong (high accuracy and fast) to step up, or clearly weak to
// step down; anything in between holds the current level, which keeps the
// adjuster from oscillating.
func Suggest(recent []Sample, t Tunables) quiz.Difficulty {
	if len(recent) < 3 {
		return quiz.Medium
	}

	window := recent
	if len(window) > t.WindowSize {
		window = window[len(window)-t.WindowSize:]
	}

	correct := 0
	totalTime := 0.0
	for _, s := range window {
		if s.Correct {
			correct++
		}
		totalTime += s.TimeTaken
	}
	accuracy := float64(correct) / float64(len(window))
	avgTime := totalTime / float64(len(window))
	current := window[len(window)-1].Difficulty

	switch {
	case accuracy >= t.StepUpAccuracy && avgTime < t.StepUpAvgTime:
		return stepUp(current)
	case accuracy < t.StepDownAccuracy:
		return stepDown(current)
	default:
		return current
	}
}

func stepUp(d quiz.Difficulty) quiz.Difficulty {
	switch d {
	case quiz.Easy:
		return quiz.Medium
	case quiz.Medium:
		return quiz.Hard
	default:
		return quiz.Hard
	}
}

func stepDown(d quiz.Difficulty) quiz.Difficulty {
	switch d {
	case quiz.Hard:
		return quiz.Medium
	case quiz.Medium:
		return quiz.Easy
	default:
		return quiz.Easy
	}
}
