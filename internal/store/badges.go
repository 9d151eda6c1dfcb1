package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathsprint/internal/badges"
	"github.com/abhisek/mathsprint/internal/quiz"
)

// EarnedBadges returns earned-date by badge slug.
func (s *Store) EarnedBadges(ctx context.Context) (map[string]time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT b.slug, ub.earned_date
		 FROM user_badges ub JOIN badges b ON b.id = ub.badge_id`)
	if err != nil {
		return nil, fmt.Errorf("query earned badges: %w", err)
	}
	defer rows.Close()

	earned := make(map[string]time.Time)
	for rows.Next() {
		var slug string
		var at time.Time
		if err := rows.Scan(&slug, &at); err != nil {
			return nil, fmt.Errorf("scan earned badge: %w", err)
		}
		earned[slug] = at
	}
	return earned, rows.Err()
}

// AwardBadge marks the badge with the given slug as earned now. Awarding
// an already-earned badge is a no-op.
func (s *Store) AwardBadge(ctx context.Context, slug string) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO user_badges (badge_id, earned_date)
		 SELECT id, ? FROM badges WHERE slug = ?
		 ON CONFLICT(badge_id) DO NOTHING`,
		time.Now().UTC(), slug)
	if err != nil {
		return fmt.Errorf("award badge: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish unknown slug from already-earned.
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM badges WHERE slug = ?)`, slug).Scan(&exists); err != nil {
			return fmt.Errorf("check badge slug: %w", err)
		}
		if !exists {
			return fmt.Errorf("unknown badge slug %q", slug)
		}
	}
	return nil
}

// BadgeProgress aggregates the lifetime totals badge checks run against.
func (s *Store) BadgeProgress(ctx context.Context) (badges.Progress, error) {
	overall, err := s.PerformanceStats(ctx)
	if err != nil {
		return badges.Progress{}, err
	}

	streak, err := s.CurrentStreak(ctx)
	if err != nil {
		return badges.Progress{}, err
	}

	byCategory, err := s.CategoryPerformance(ctx)
	if err != nil {
		return badges.Progress{}, err
	}
	categories := make(map[quiz.Category]badges.CategoryStanding, len(byCategory))
	for _, row := range byCategory {
		categories[quiz.Category(row.Key)] = badges.CategoryStanding{
			Attempts: row.Attempts,
			Accuracy: row.Accuracy(),
		}
	}

	return badges.Progress{
		TotalSessions:  overall.TotalSessions,
		TotalQuestions: overall.TotalQuestions,
		CurrentStreak:  streak,
		Categories:     categories,
	}, nil
}
