package session

import (
	"math"
	"time"
)

// Summary is the immutable snapshot of a completed session handed to the
// persistence layer and the badge checker.
type Summary struct {
	// SessionID is the durable id assigned on save; zero until then.
	SessionID int64

	// UUID is the session's runtime identifier.
	UUID string

	Config Config

	TotalQuestions int
	CorrectAnswers int
	TotalScore     int

	// AvgTimePerQuestion is the arithmetic mean latency in seconds,
	// rounded to two decimals.
	AvgTimePerQuestion float64

	// DurationSeconds spans session start to the last answer.
	DurationSeconds int

	Results []QuestionResult

	// Timestamp is the session start time.
	Timestamp time.Time
}

// Accuracy returns the fraction of correct answers in [0, 1].
func (s *Summary) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions)
}

// BuildSummary derives a Summary from a session's history. Deterministic:
// the same history always yields the same aggregates.
func BuildSummary(state *State) *Summary {
	total := len(state.Answered)

	correct := 0
	totalTime := 0.0
	for _, r := range state.Answered {
		if r.IsCorrect {
			correct++
		}
		totalTime += r.TimeTaken
	}

	var avgTime float64
	var duration int
	if total > 0 {
		avgTime = math.Round(totalTime/float64(total)*100) / 100
		duration = int(state.Answered[total-1].Timestamp.Sub(state.StartTime).Seconds())
	}

	return &Summary{
		UUID:               state.ID,
		Config:             state.Config,
		TotalQuestions:     total,
		CorrectAnswers:     correct,
		TotalScore:         state.TotalScore,
		AvgTimePerQuestion: avgTime,
		DurationSeconds:    duration,
		Results:            state.Answered,
		Timestamp:          state.StartTime,
	}
}
