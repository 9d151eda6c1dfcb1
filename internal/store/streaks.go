package store

import (
	"context"
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// CurrentStreak returns the length of the unbroken run of practice days
// ending today or yesterday. A run ending yesterday still counts so the
// streak survives until today is actually missed.
func (s *Store) CurrentStreak(ctx context.Context) (int, error) {
	return s.currentStreakAt(ctx, time.Now())
}

func (s *Store) currentStreakAt(ctx context.Context, now time.Time) (int, error) {
	days, err := s.practiceDays(ctx)
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}

	today := now.Format(dayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)

	// days is sorted descending.
	latest := days[0]
	if latest != today && latest != yesterday {
		return 0, nil
	}

	streak := 1
	prev, _ := time.Parse(dayFormat, latest)
	for _, d := range days[1:] {
		day, err := time.Parse(dayFormat, d)
		if err != nil {
			return 0, fmt.Errorf("parse streak date %q: %w", d, err)
		}
		if !day.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = day
	}
	return streak, nil
}

// LongestStreak returns the longest run of consecutive practice days ever
// recorded.
func (s *Store) LongestStreak(ctx context.Context) (int, error) {
	days, err := s.practiceDays(ctx)
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}

	best, run := 1, 1
	prev, err := time.Parse(dayFormat, days[0])
	if err != nil {
		return 0, fmt.Errorf("parse streak date %q: %w", days[0], err)
	}
	for _, d := range days[1:] {
		day, err := time.Parse(dayFormat, d)
		if err != nil {
			return 0, fmt.Errorf("parse streak date %q: %w", d, err)
		}
		if day.Equal(prev.AddDate(0, 0, -1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = day
	}
	return best, nil
}

// practiceDays returns every recorded practice date, newest first.
func (s *Store) practiceDays(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date FROM daily_streaks ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query practice days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan practice day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
