package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathsprint/internal/adaptive"
	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/scoring"
)

// Lifecycle faults. These signal caller bugs, not runtime conditions: a
// wrong answer is a normal result, but submitting with no open question or
// summarizing an unfinished session means the driving code lost track of
// the session lifecycle.
var (
	ErrNoCurrentQuestion   = errors.New("session: no current question")
	ErrSessionNotComplete  = errors.New("session: session not complete")
	ErrNoQuestionsAnswered = errors.New("session: no questions answered")
	ErrAlreadyEnded        = errors.New("session: session already ended")
)

// DefaultWeakAreaThreshold is the accuracy below which a question kind
// counts as weak for targeted sessions.
const DefaultWeakAreaThreshold = 0.75

// Saver persists a completed session summary and returns its durable id.
type Saver interface {
	SaveSession(ctx context.Context, summary *Summary) (int64, error)
}

// WeakAreaIdentifier reports question kinds whose historical accuracy sits
// below threshold. Used only for targeted sessions.
type WeakAreaIdentifier interface {
	WeakAreas(ctx context.Context, threshold float64) ([]quiz.Kind, error)
}

// Options configures an Engine. Zero fields fall back to defaults; only
// Registry and Saver are required.
type Options struct {
	Registry  *quiz.Registry
	Saver     Saver
	WeakAreas WeakAreaIdentifier

	// Tunables for adaptive difficulty; zero value means defaults.
	Tunables adaptive.Tunables

	// WeakAreaThreshold for targeted sessions; zero means default.
	WeakAreaThreshold float64

	// Rand drives question-kind selection. Nil seeds from wall clock.
	Rand *rand.Rand

	// Now is the clock, overridable in tests. Nil means time.Now.
	Now func() time.Time
}

// Engine orchestrates session lifecycles. It holds no per-session state;
// each session's State is owned by the caller and passed into every call.
type Engine struct {
	registry      *quiz.Registry
	saver         Saver
	weakAreas     WeakAreaIdentifier
	tunables      adaptive.Tunables
	weakThreshold float64
	rng           *rand.Rand
	now           func() time.Time
}

// NewEngine builds an engine from opts.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		registry:      opts.Registry,
		saver:         opts.Saver,
		weakAreas:     opts.WeakAreas,
		tunables:      opts.Tunables,
		weakThreshold: opts.WeakAreaThreshold,
		rng:           opts.Rand,
		now:           opts.Now,
	}
	if e.tunables == (adaptive.Tunables{}) {
		e.tunables = adaptive.DefaultTunables()
	}
	if e.weakThreshold == 0 {
		e.weakThreshold = DefaultWeakAreaThreshold
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Start validates cfg, creates a fresh State, and serves the first
// question.
func (e *Engine) Start(ctx context.Context, cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}

	state := &State{
		ID:        uuid.NewString(),
		Config:    cfg,
		StartTime: e.now(),
	}

	q, err := e.nextQuestion(ctx, state)
	if err != nil {
		return nil, err
	}
	state.CurrentQuestion = &q

	return state, nil
}

// SubmitAnswer processes one answer for the current question: validates,
// records the result, updates combo and score, and either serves the next
// question or completes the session. The result is returned whether the
// answer was right or wrong.
//
// Calling with no current question is a lifecycle fault
// (ErrNoCurrentQuestion).
func (e *Engine) SubmitAnswer(ctx context.Context, state *State, answer string) (*QuestionResult, error) {
	if state.CurrentQuestion == nil {
		return nil, ErrNoCurrentQuestion
	}

	q := *state.CurrentQuestion
	correct := quiz.Validate(answer, q)
	now := e.now()

	// Latency counts from the previous answer, or session start for the
	// first question.
	since := state.StartTime
	if n := len(state.Answered); n > 0 {
		since = state.Answered[n-1].Timestamp
	}
	timeTaken := now.Sub(since).Seconds()

	result := QuestionResult{
		Question:   q,
		UserAnswer: answer,
		IsCorrect:  correct,
		TimeTaken:  timeTaken,
		Timestamp:  now,
	}

	if correct {
		state.ComboCount++
	} else {
		state.ComboCount = 0
	}

	// Score with the streak the answer produced, not the one it found.
	state.TotalScore += scoring.QuestionScore(correct, timeTaken, q.Difficulty, state.ComboCount)
	state.Answered = append(state.Answered, result)

	if e.shouldEnd(state) {
		state.IsComplete = true
		state.CurrentQuestion = nil
		return &result, nil
	}

	next, err := e.nextQuestion(ctx, state)
	if err != nil {
		return nil, err
	}
	state.CurrentQuestion = &next

	return &result, nil
}

// EndSession aggregates the history into a Summary and persists it,
// returning the summary with its durable id set.
//
// Faults: ErrSessionNotComplete before a termination condition fired,
// ErrNoQuestionsAnswered for an empty history, ErrAlreadyEnded on a second
// call for the same state.
func (e *Engine) EndSession(ctx context.Context, state *State) (*Summary, error) {
	if state.ended {
		return nil, ErrAlreadyEnded
	}
	if !state.IsComplete {
		return nil, ErrSessionNotComplete
	}
	if len(state.Answered) == 0 {
		return nil, ErrNoQuestionsAnswered
	}

	summary := BuildSummary(state)

	id, err := e.saver.SaveSession(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	summary.SessionID = id
	state.ended = true

	return summary, nil
}

// shouldEnd evaluates the mode's termination condition after a submission.
func (e *Engine) shouldEnd(state *State) bool {
	switch state.Config.Mode {
	case ModeSprint:
		return e.now().Sub(state.StartTime) >= state.Config.Duration
	case ModeMarathon, ModeTargeted:
		return len(state.Answered) >= state.Config.targetCount()
	}
	return false
}

// nextQuestion resolves difficulty and category for the next question and
// generates it.
func (e *Engine) nextQuestion(ctx context.Context, state *State) (quiz.Question, error) {
	difficulty := e.resolveDifficulty(state)

	pool, err := e.resolvePool(ctx, state)
	if err != nil {
		return quiz.Question{}, err
	}

	q, err := e.registry.Pick(e.rng, pool, difficulty)
	if err != nil {
		return quiz.Question{}, fmt.Errorf("generate question: %w", err)
	}
	return q, nil
}

// resolveDifficulty maps the configured difficulty to a concrete level.
// Adaptive sessions follow the adjuster once three answers exist and the
// designated initial level before that.
func (e *Engine) resolveDifficulty(state *State) quiz.Difficulty {
	if state.Config.Difficulty != quiz.Adaptive {
		return state.Config.Difficulty
	}
	if len(state.Answered) < 3 {
		return adaptive.Initial()
	}

	samples := make([]adaptive.Sample, len(state.Answered))
	for i, r := range state.Answered {
		samples[i] = adaptive.Sample{
			Correct:    r.IsCorrect,
			TimeTaken:  r.TimeTaken,
			Difficulty: r.Question.Difficulty,
		}
	}
	return adaptive.Suggest(samples, e.tunables)
}

// resolvePool returns the kinds eligible for the next question. Targeted
// sessions restrict to historically weak kinds, falling back to the full
// mixed pool when none qualify or no identifier is wired.
func (e *Engine) resolvePool(ctx context.Context, state *State) ([]quiz.Kind, error) {
	if state.Config.Category != quiz.CategoryTargeted {
		return e.registry.Pool(state.Config.Category)
	}

	if e.weakAreas == nil {
		return e.registry.Pool(quiz.CategoryMixed)
	}

	weak, err := e.weakAreas.WeakAreas(ctx, e.weakThreshold)
	if err != nil {
		return nil, fmt.Errorf("identify weak areas: %w", err)
	}

	var pool []quiz.Kind
	for _, kind := range weak {
		if _, ok := e.registry.Source(kind); ok {
			pool = append(pool, kind)
		}
	}
	if len(pool) == 0 {
		return e.registry.Pool(quiz.CategoryMixed)
	}
	return pool, nil
}
