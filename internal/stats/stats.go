// Package stats assembles lifetime performance reports from the store
// for read-only presentation.
package stats

import (
	"context"
	"fmt"

	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/store"
)

// Provider is the slice of the store the report builder reads from.
type Provider interface {
	PerformanceStats(ctx context.Context) (store.Overall, error)
	CategoryPerformance(ctx context.Context) ([]store.BreakdownRow, error)
	DifficultyPerformance(ctx context.Context) ([]store.BreakdownRow, error)
	WeakAreas(ctx context.Context, threshold float64) ([]quiz.Kind, error)
	CurrentStreak(ctx context.Context) (int, error)
	LongestStreak(ctx context.Context) (int, error)
}

// Report is everything the stats view renders.
type Report struct {
	Overall       store.Overall
	ByCategory    []store.BreakdownRow
	ByDifficulty  []store.BreakdownRow
	WeakAreas     []quiz.Kind
	CurrentStreak int
	LongestStreak int
}

// Build assembles a full report. weakThreshold is the accuracy below
// which a question kind is listed as weak.
func Build(ctx context.Context, p Provider, weakThreshold float64) (*Report, error) {
	overall, err := p.PerformanceStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("overall stats: %w", err)
	}

	byCategory, err := p.CategoryPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}

	byDifficulty, err := p.DifficultyPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("difficulty stats: %w", err)
	}

	weak, err := p.WeakAreas(ctx, weakThreshold)
	if err != nil {
		return nil, fmt.Errorf("weak areas: %w", err)
	}

	current, err := p.CurrentStreak(ctx)
	if err != nil {
		return nil, fmt.Errorf("current streak: %w", err)
	}

	longest, err := p.LongestStreak(ctx)
	if err != nil {
		return nil, fmt.Errorf("longest streak: %w", err)
	}

	return &Report{
		Overall:       overall,
		ByCategory:    byCategory,
		ByDifficulty:  byDifficulty,
		WeakAreas:     weak,
		CurrentStreak: current,
		LongestStreak: longest,
	}, nil
}

// Percent formats a [0, 1] fraction as "NN.N%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}
