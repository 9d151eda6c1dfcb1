// Package session drives the practice-session lifecycle: question
// selection, answer submission, combo and score bookkeeping, termination,
// and summary construction.
package session

import (
	"fmt"
	"time"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// Mode determines how a session terminates.
type Mode string

const (
	// ModeSprint ends when the configured wall-clock duration elapses.
	ModeSprint Mode = "sprint"

	// ModeMarathon ends after a fixed number of questions.
	ModeMarathon Mode = "marathon"

	// ModeTargeted focuses on weak question kinds and ends after a fixed
	// (or default) number of questions.
	ModeTargeted Mode = "targeted"
)

// DefaultTargetedCount is the question count for targeted sessions that
// don't configure one.
const DefaultTargetedCount = 25

// Config is the immutable configuration for one session.
type Config struct {
	Mode       Mode
	Category   quiz.Category
	Difficulty quiz.Difficulty

	// Duration bounds sprint sessions. Required iff Mode is sprint.
	Duration time.Duration

	// QuestionCount bounds marathon and targeted sessions. Required for
	// marathon; targeted falls back to DefaultTargetedCount.
	QuestionCount int
}

// Validate reports configuration errors before a session starts.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeSprint:
		if c.Duration <= 0 {
			return fmt.Errorf("sprint mode requires a positive duration")
		}
	case ModeMarathon:
		if c.QuestionCount <= 0 {
			return fmt.Errorf("marathon mode requires a positive question count")
		}
	case ModeTargeted:
		if c.QuestionCount < 0 {
			return fmt.Errorf("targeted question count cannot be negative")
		}
	default:
		return fmt.Errorf("unknown session mode %q", c.Mode)
	}

	switch c.Difficulty {
	case quiz.Easy, quiz.Medium, quiz.Hard, quiz.Adaptive:
	default:
		return fmt.Errorf("unknown difficulty %q", c.Difficulty)
	}

	return nil
}

// targetCount returns the effective question bound for count-based modes.
func (c Config) targetCount() int {
	if c.Mode == ModeTargeted && c.QuestionCount == 0 {
		return DefaultTargetedCount
	}
	return c.QuestionCount
}
