package session

import (
	"time"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// QuestionResult records one answered question. Appended to the session
// history exactly once per submission and never mutated afterwards.
type QuestionResult struct {
	Question   quiz.Question
	UserAnswer string
	IsCorrect  bool

	// TimeTaken is the answer latency in seconds.
	TimeTaken float64

	Timestamp time.Time
}

// State is the mutable state of one active session. It is owned by a
// single caller and threaded through every engine call; the engine keeps
// no ambient per-session state of its own.
type State struct {
	// ID is the session UUID, assigned at start.
	ID string

	Config Config

	// Answered is the append-only history of results.
	Answered []QuestionResult

	// CurrentQuestion is nil only once the session has completed.
	CurrentQuestion *quiz.Question

	// ComboCount is the current consecutive-correct streak.
	ComboCount int

	// TotalScore only ever grows; incorrect answers add zero.
	TotalScore int

	StartTime time.Time

	// IsComplete transitions false→true exactly once.
	IsComplete bool

	// ended marks that EndSession already consumed this state.
	ended bool
}

// CorrectCount returns how many answers in the history were correct.
func (s *State) CorrectCount() int {
	n := 0
	for _, r := range s.Answered {
		if r.IsCorrect {
			n++
		}
	}
	return n
}
