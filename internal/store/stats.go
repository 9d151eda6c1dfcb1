package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// Overall is the lifetime aggregate across all sessions.
type Overall struct {
	TotalSessions  int
	TotalQuestions int
	TotalCorrect   int
	TotalScore     int
	BestScore      int
	AvgTime        float64
}

// Accuracy returns the lifetime fraction of correct answers in [0, 1].
func (o Overall) Accuracy() float64 {
	if o.TotalQuestions == 0 {
		return 0
	}
	return float64(o.TotalCorrect) / float64(o.TotalQuestions)
}

// BreakdownRow is per-category or per-difficulty lifetime performance.
type BreakdownRow struct {
	Key      string
	Attempts int
	Correct  int
	AvgTime  float64
}

func (r BreakdownRow) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}

// PerformanceStats returns lifetime totals across all sessions.
func (s *Store) PerformanceStats(ctx context.Context) (Overall, error) {
	var o Overall
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(total_questions), 0),
			COALESCE(SUM(correct_answers), 0),
			COALESCE(SUM(total_score), 0),
			COALESCE(MAX(total_score), 0)
		 FROM sessions`,
	).Scan(&o.TotalSessions, &o.TotalQuestions, &o.TotalCorrect, &o.TotalScore, &o.BestScore)
	if err != nil {
		return Overall{}, fmt.Errorf("aggregate sessions: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(time_taken), 0) FROM questions_answered`,
	).Scan(&o.AvgTime)
	if err != nil {
		return Overall{}, fmt.Errorf("aggregate answer times: %w", err)
	}
	return o, nil
}

// CategoryPerformance breaks lifetime performance down by question
// category, ordered by attempt count.
func (s *Store) CategoryPerformance(ctx context.Context) ([]BreakdownRow, error) {
	return s.breakdown(ctx, "category")
}

// DifficultyPerformance breaks lifetime performance down by the
// difficulty each question was generated at.
func (s *Store) DifficultyPerformance(ctx context.Context) ([]BreakdownRow, error) {
	return s.breakdown(ctx, "difficulty")
}

func (s *Store) breakdown(ctx context.Context, column string) ([]BreakdownRow, error) {
	// column is one of two trusted identifiers, never user input.
	q := fmt.Sprintf(
		`SELECT %s, COUNT(*), COALESCE(SUM(is_correct), 0), COALESCE(AVG(time_taken), 0)
		 FROM questions_answered GROUP BY %s ORDER BY COUNT(*) DESC`, column, column)

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s breakdown: %w", column, err)
	}
	defer rows.Close()

	var out []BreakdownRow
	for rows.Next() {
		var r BreakdownRow
		if err := rows.Scan(&r.Key, &r.Attempts, &r.Correct, &r.AvgTime); err != nil {
			return nil, fmt.Errorf("scan %s breakdown: %w", column, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// WeakAreas returns the question kinds whose lifetime accuracy sits below
// threshold, considering only kinds with at least 10 attempts. Ordered
// worst first.
func (s *Store) WeakAreas(ctx context.Context, threshold float64) ([]quiz.Kind, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_type
		 FROM questions_answered
		 GROUP BY question_type
		 HAVING COUNT(*) >= 10 AND CAST(SUM(is_correct) AS REAL) / COUNT(*) < ?
		 ORDER BY CAST(SUM(is_correct) AS REAL) / COUNT(*) ASC`,
		threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("query weak areas: %w", err)
	}
	defer rows.Close()

	var kinds []quiz.Kind
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan weak area: %w", err)
		}
		kinds = append(kinds, quiz.Kind(k))
	}
	return kinds, rows.Err()
}

// KindAccuracy returns lifetime accuracy and attempts for one question
// kind. ok is false when the kind was never attempted.
func (s *Store) KindAccuracy(ctx context.Context, kind quiz.Kind) (accuracy float64, attempts int, ok bool, err error) {
	// Aggregates over zero rows yield NULL for the ratio; coalesce so the
	// scan succeeds and the attempts check reports absence.
	err = s.db.QueryRowContext(ctx,
		`SELECT COALESCE(CAST(SUM(is_correct) AS REAL) / COUNT(*), 0), COUNT(*)
		 FROM questions_answered WHERE question_type = ?`,
		string(kind),
	).Scan(&accuracy, &attempts)
	if err != nil {
		return 0, 0, false, fmt.Errorf("query kind accuracy: %w", err)
	}
	if attempts == 0 {
		return 0, 0, false, nil
	}
	return accuracy, attempts, true, nil
}
