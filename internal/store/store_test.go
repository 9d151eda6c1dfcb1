package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testSummary(start time.Time, results []session.QuestionResult) *session.Summary {
	state := &session.State{
		ID: "test-uuid",
		Config: session.Config{
			Mode:          session.ModeMarathon,
			Category:      quiz.CategoryArithmetic,
			Difficulty:    quiz.Medium,
			QuestionCount: len(results),
		},
		StartTime:  start,
		Answered:   results,
		TotalScore: 450,
		IsComplete: true,
	}
	return session.BuildSummary(state)
}

func result(kind quiz.Kind, category quiz.Category, correct bool, timeTaken float64, at time.Time) session.QuestionResult {
	q := quiz.NewQuestion(kind, category, quiz.Medium, "2 + 2", "4", nil, nil)
	answer := "4"
	if !correct {
		answer = "5"
	}
	return session.QuestionResult{
		Question:   q,
		UserAnswer: answer,
		IsCorrect:  correct,
		TimeTaken:  timeTaken,
		Timestamp:  at,
	}
}

func TestSaveSession_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	summary := testSummary(start, []session.QuestionResult{
		result(quiz.KindAddition, quiz.CategoryArithmetic, true, 1.5, start.Add(2*time.Second)),
		result(quiz.KindAddition, quiz.CategoryArithmetic, false, 3.0, start.Add(5*time.Second)),
	})

	id, err := s.SaveSession(ctx, summary)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	history, err := s.SessionHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)

	rec := history[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "test-uuid", rec.UUID)
	assert.Equal(t, "marathon", rec.Mode)
	assert.Equal(t, "arithmetic", rec.Category)
	assert.Equal(t, 2, rec.TotalQuestions)
	assert.Equal(t, 1, rec.CorrectAnswers)
	assert.Equal(t, 450, rec.TotalScore)
	assert.InDelta(t, 0.5, rec.Accuracy(), 1e-9)
}

func TestSessionHistory_OrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		start := time.Date(2026, 3, 1+i, 9, 0, 0, 0, time.UTC)
		summary := testSummary(start, []session.QuestionResult{
			result(quiz.KindAddition, quiz.CategoryArithmetic, true, 1, start.Add(time.Second)),
		})
		_, err := s.SaveSession(ctx, summary)
		require.NoError(t, err)
	}

	history, err := s.SessionHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp))
}

func TestPerformanceStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := s.SaveSession(ctx, testSummary(start, []session.QuestionResult{
		result(quiz.KindAddition, quiz.CategoryArithmetic, true, 2.0, start.Add(2*time.Second)),
		result(quiz.KindPercentage, quiz.CategoryPercentage, false, 4.0, start.Add(6*time.Second)),
	}))
	require.NoError(t, err)

	overall, err := s.PerformanceStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, overall.TotalSessions)
	assert.Equal(t, 2, overall.TotalQuestions)
	assert.Equal(t, 1, overall.TotalCorrect)
	assert.Equal(t, 450, overall.TotalScore)
	assert.Equal(t, 450, overall.BestScore)
	assert.InDelta(t, 3.0, overall.AvgTime, 1e-9)
	assert.InDelta(t, 0.5, overall.Accuracy(), 1e-9)
}

func TestPerformanceStats_EmptyDatabase(t *testing.T) {
	s := openTestStore(t)

	overall, err := s.PerformanceStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overall.TotalSessions)
	assert.Zero(t, overall.Accuracy())
}

func TestBreakdowns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := s.SaveSession(ctx, testSummary(start, []session.QuestionResult{
		result(quiz.KindAddition, quiz.CategoryArithmetic, true, 1, start.Add(time.Second)),
		result(quiz.KindAddition, quiz.CategoryArithmetic, true, 1, start.Add(2*time.Second)),
		result(quiz.KindPercentage, quiz.CategoryPercentage, false, 5, start.Add(7*time.Second)),
	}))
	require.NoError(t, err)

	byCategory, err := s.CategoryPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, "arithmetic", byCategory[0].Key)
	assert.Equal(t, 2, byCategory[0].Attempts)
	assert.InDelta(t, 1.0, byCategory[0].Accuracy(), 1e-9)

	byDifficulty, err := s.DifficultyPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, "medium", byDifficulty[0].Key)
	assert.Equal(t, 3, byDifficulty[0].Attempts)
}

func TestWeakAreas(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// 10 addition attempts at 50% accuracy, 10 percentage at 90%, and a
	// handful of fractions attempts that stay below the 10-attempt floor.
	var results []session.QuestionResult
	at := start
	for i := 0; i < 10; i++ {
		at = at.Add(time.Second)
		results = append(results, result(quiz.KindAddition, quiz.CategoryArithmetic, i < 5, 2, at))
	}
	for i := 0; i < 10; i++ {
		at = at.Add(time.Second)
		results = append(results, result(quiz.KindPercentage, quiz.CategoryPercentage, i < 9, 2, at))
	}
	for i := 0; i < 3; i++ {
		at = at.Add(time.Second)
		results = append(results, result(quiz.KindFractions, quiz.CategoryFractions, false, 2, at))
	}

	_, err := s.SaveSession(ctx, testSummary(start, results))
	require.NoError(t, err)

	weak, err := s.WeakAreas(ctx, 0.75)
	require.NoError(t, err)
	assert.Equal(t, []quiz.Kind{quiz.KindAddition}, weak)

	acc, attempts, ok, err := s.KindAccuracy(ctx, quiz.KindAddition)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10, attempts)
	assert.InDelta(t, 0.5, acc, 1e-9)

	_, _, ok, err = s.KindAccuracy(ctx, quiz.KindEstimation)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStreaks(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Three consecutive days ending today, plus an older two-day run.
	now := time.Now()
	days := []time.Time{
		now,
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -2),
		now.AddDate(0, 0, -10),
		now.AddDate(0, 0, -11),
	}
	for _, d := range days {
		start := d.Add(-time.Hour)
		_, err := s.SaveSession(ctx, testSummary(start, []session.QuestionResult{
			result(quiz.KindAddition, quiz.CategoryArithmetic, true, 1, start.Add(time.Second)),
		}))
		require.NoError(t, err)
	}

	current, err := s.CurrentStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, current)

	longest, err := s.LongestStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, longest)
}

func TestCurrentStreak_BrokenByGap(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	start := time.Now().AddDate(0, 0, -5)
	_, err := s.SaveSession(ctx, testSummary(start, []session.QuestionResult{
		result(quiz.KindAddition, quiz.CategoryArithmetic, true, 1, start.Add(time.Second)),
	}))
	require.NoError(t, err)

	current, err := s.CurrentStreak(ctx)
	require.NoError(t, err)
	assert.Zero(t, current)

	longest, err := s.LongestStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, longest)
}

func TestBadgeAwarding(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	earned, err := s.EarnedBadges(ctx)
	require.NoError(t, err)
	assert.Empty(t, earned)

	require.NoError(t, s.AwardBadge(ctx, "first-steps"))
	// Second award is a no-op, not an error.
	require.NoError(t, s.AwardBadge(ctx, "first-steps"))

	earned, err = s.EarnedBadges(ctx)
	require.NoError(t, err)
	require.Len(t, earned, 1)
	assert.Contains(t, earned, "first-steps")

	assert.Error(t, s.AwardBadge(ctx, "no-such-badge"))
}

func TestBadgeProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	start := time.Now().Add(-time.Hour)

	_, err := s.SaveSession(ctx, testSummary(start, []session.QuestionResult{
		result(quiz.KindAddition, quiz.CategoryArithmetic, true, 1, start.Add(time.Second)),
		result(quiz.KindAddition, quiz.CategoryArithmetic, true, 1, start.Add(2*time.Second)),
	}))
	require.NoError(t, err)

	p, err := s.BadgeProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TotalSessions)
	assert.Equal(t, 2, p.TotalQuestions)
	assert.Equal(t, 1, p.CurrentStreak)

	standing := p.Categories[quiz.CategoryArithmetic]
	assert.Equal(t, 2, standing.Attempts)
	assert.InDelta(t, 1.0, standing.Accuracy, 1e-9)
}

func TestMigrate_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var n int
	require.NoError(t, s2.DB().QueryRow(`SELECT COUNT(*) FROM badges`).Scan(&n))
	assert.Equal(t, 18, n)
}
