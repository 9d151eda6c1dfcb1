// Package badges defines the achievement catalog and the unlock checker
// run after each completed session.
package badges

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/session"
)

// Badge categories.
const (
	CategoryMilestone   = "milestone"
	CategoryPerformance = "performance"
	CategoryStreak      = "streak"
	CategoryMastery     = "mastery"
	CategoryChallenge   = "challenge"
)

// Badge is one achievement. Check decides whether the badge is earned
// given the just-finished session and the player's overall progress.
type Badge struct {
	Slug        string
	Name        string
	Description string
	Category    string

	Check func(s *session.Summary, p Progress) bool
}

// CategoryStanding is lifetime performance within one question category.
type CategoryStanding struct {
	Attempts int
	Accuracy float64
}

// Progress is the lifetime aggregate state badge checks run against,
// computed after the triggering session was saved.
type Progress struct {
	TotalSessions  int
	TotalQuestions int
	CurrentStreak  int
	Categories     map[quiz.Category]CategoryStanding
}

// Store is the persistence surface the badge service needs.
type Store interface {
	// EarnedBadges returns earned-date by badge slug.
	EarnedBadges(ctx context.Context) (map[string]time.Time, error)

	// AwardBadge marks the badge with the given slug as earned now.
	AwardBadge(ctx context.Context, slug string) error

	// BadgeProgress aggregates lifetime totals for badge checks.
	BadgeProgress(ctx context.Context) (Progress, error)
}

// Service checks and awards badges after sessions.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CheckEarned evaluates every unearned badge against the summary and the
// player's progress, awards the ones that now pass, and returns them.
func (s *Service) CheckEarned(ctx context.Context, summary *session.Summary) ([]Badge, error) {
	earned, err := s.store.EarnedBadges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load earned badges: %w", err)
	}

	progress, err := s.store.BadgeProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("load badge progress: %w", err)
	}

	var newly []Badge
	for _, b := range Catalog() {
		if _, ok := earned[b.Slug]; ok {
			continue
		}
		if !b.Check(summary, progress) {
			continue
		}
		if err := s.store.AwardBadge(ctx, b.Slug); err != nil {
			return nil, fmt.Errorf("award badge %s: %w", b.Slug, err)
		}
		newly = append(newly, b)
	}
	return newly, nil
}

// maxCombo returns the longest consecutive-correct streak in the session.
func maxCombo(s *session.Summary) int {
	best, run := 0, 0
	for _, r := range s.Results {
		if r.IsCorrect {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

func masteryBadge(slug, name string, category quiz.Category) Badge {
	return Badge{
		Slug:        slug,
		Name:        name,
		Description: fmt.Sprintf("Reach 90%% accuracy over 50+ %s questions", category),
		Category:    CategoryMastery,
		Check: func(_ *session.Summary, p Progress) bool {
			st := p.Categories[category]
			return st.Attempts >= 50 && st.Accuracy >= 0.9
		},
	}
}

// Catalog returns every badge in display order. The list doubles as the
// migration seed for the badges table.
func Catalog() []Badge {
	return []Badge{
		{
			Slug: "first-steps", Name: "First Steps",
			Description: "Complete your first session",
			Category:    CategoryMilestone,
			Check:       func(_ *session.Summary, p Progress) bool { return p.TotalSessions >= 1 },
		},
		{
			Slug: "century-club", Name: "Century Club",
			Description: "Answer 100 questions",
			Category:    CategoryMilestone,
			Check:       func(_ *session.Summary, p Progress) bool { return p.TotalQuestions >= 100 },
		},
		{
			Slug: "veteran", Name: "Veteran",
			Description: "Answer 1000 questions",
			Category:    CategoryMilestone,
			Check:       func(_ *session.Summary, p Progress) bool { return p.TotalQuestions >= 1000 },
		},
		{
			Slug: "marathon-finisher", Name: "Marathon Finisher",
			Description: "Complete a marathon session",
			Category:    CategoryMilestone,
			Check: func(s *session.Summary, _ Progress) bool {
				return s.Config.Mode == session.ModeMarathon
			},
		},
		{
			Slug: "perfectionist", Name: "Perfectionist",
			Description: "Finish a 10+ question session with 100% accuracy",
			Category:    CategoryPerformance,
			Check: func(s *session.Summary, _ Progress) bool {
				return s.TotalQuestions >= 10 && s.CorrectAnswers == s.TotalQuestions
			},
		},
		{
			Slug: "speed-demon", Name: "Speed Demon",
			Description: "Average under 2 seconds per answer across 10+ questions",
			Category:    CategoryPerformance,
			Check: func(s *session.Summary, _ Progress) bool {
				return s.TotalQuestions >= 10 && s.AvgTimePerQuestion < 2.0
			},
		},
		{
			Slug: "unbreakable", Name: "Unbreakable",
			Description: "Hit a 15-answer combo in one session",
			Category:    CategoryPerformance,
			Check: func(s *session.Summary, _ Progress) bool {
				return maxCombo(s) >= 15
			},
		},
		{
			Slug: "lightning-round", Name: "Lightning Round",
			Description: "Answer 20+ questions in a single sprint",
			Category:    CategoryChallenge,
			Check: func(s *session.Summary, _ Progress) bool {
				return s.Config.Mode == session.ModeSprint && s.TotalQuestions >= 20
			},
		},
		{
			Slug: "hard-mode-hero", Name: "Hard Mode Hero",
			Description: "Score 90%+ on a hard 10+ question session",
			Category:    CategoryChallenge,
			Check: func(s *session.Summary, _ Progress) bool {
				return s.Config.Difficulty == quiz.Hard && s.TotalQuestions >= 10 && s.Accuracy() >= 0.9
			},
		},
		{
			Slug: "mixed-master", Name: "Mixed Master",
			Description: "Score 90%+ on a mixed 15+ question session",
			Category:    CategoryChallenge,
			Check: func(s *session.Summary, _ Progress) bool {
				return s.Config.Category == quiz.CategoryMixed && s.TotalQuestions >= 15 && s.Accuracy() >= 0.9
			},
		},
		{
			Slug: "week-warrior", Name: "Week Warrior",
			Description: "Practice 7 days in a row",
			Category:    CategoryStreak,
			Check:       func(_ *session.Summary, p Progress) bool { return p.CurrentStreak >= 7 },
		},
		{
			Slug: "month-master", Name: "Month Master",
			Description: "Practice 30 days in a row",
			Category:    CategoryStreak,
			Check:       func(_ *session.Summary, p Progress) bool { return p.CurrentStreak >= 30 },
		},
		masteryBadge("arithmetic-master", "Arithmetic Master", quiz.CategoryArithmetic),
		masteryBadge("percentage-master", "Percentage Master", quiz.CategoryPercentage),
		masteryBadge("fractions-master", "Fractions Master", quiz.CategoryFractions),
		masteryBadge("ratios-master", "Ratios Master", quiz.CategoryRatios),
		masteryBadge("compound-master", "Compound Master", quiz.CategoryCompound),
		masteryBadge("estimation-master", "Estimation Master", quiz.CategoryEstimation),
	}
}
