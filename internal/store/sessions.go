package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathsprint/internal/session"
)

// SessionRecord is one row of session history.
type SessionRecord struct {
	ID                 int64
	UUID               string
	Mode               string
	Category           string
	Difficulty         string
	TotalQuestions     int
	CorrectAnswers     int
	TotalScore         int
	AvgTimePerQuestion float64
	DurationSeconds    int
	Timestamp          time.Time
}

// Accuracy returns the fraction of correct answers in [0, 1].
func (r SessionRecord) Accuracy() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.TotalQuestions)
}

// SaveSession persists a completed session in one transaction: the
// session row, one row per answered question, and the daily-streak
// counter for the session's date. Returns the durable session id.
func (s *Store) SaveSession(ctx context.Context, summary *session.Summary) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (uuid, mode, category, difficulty, total_questions, correct_answers,
			total_score, avg_time_per_question, duration_seconds, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.UUID,
		string(summary.Config.Mode),
		string(summary.Config.Category),
		string(summary.Config.Difficulty),
		summary.TotalQuestions,
		summary.CorrectAnswers,
		summary.TotalScore,
		summary.AvgTimePerQuestion,
		summary.DurationSeconds,
		summary.Timestamp.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO questions_answered (session_id, question_type, category, difficulty,
			question_text, user_answer, correct_answer, is_correct, time_taken, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare answer insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range summary.Results {
		_, err := stmt.ExecContext(ctx,
			id,
			string(r.Question.Kind),
			string(r.Question.Category),
			string(r.Question.Difficulty),
			r.Question.Text,
			r.UserAnswer,
			r.Question.CorrectAnswer,
			r.IsCorrect,
			r.TimeTaken,
			r.Timestamp.UTC(),
		)
		if err != nil {
			return 0, fmt.Errorf("insert answer: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO daily_streaks (date, sessions_completed) VALUES (?, 1)
		 ON CONFLICT(date) DO UPDATE SET sessions_completed = sessions_completed + 1`,
		summary.Timestamp.Format("2006-01-02"),
	)
	if err != nil {
		return 0, fmt.Errorf("update daily streak: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit session: %w", err)
	}
	return id, nil
}

// SessionHistory returns the most recent sessions, newest first. A limit
// of 0 returns everything.
func (s *Store) SessionHistory(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := `SELECT id, uuid, mode, category, difficulty, total_questions, correct_answers,
			total_score, avg_time_per_question, duration_seconds, timestamp
		  FROM sessions ORDER BY timestamp DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		err := rows.Scan(&r.ID, &r.UUID, &r.Mode, &r.Category, &r.Difficulty,
			&r.TotalQuestions, &r.CorrectAnswers, &r.TotalScore,
			&r.AvgTimePerQuestion, &r.DurationSeconds, &r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
