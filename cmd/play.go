package cmd

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/badges"
	"github.com/abhisek/mathsprint/internal/config"
	"github.com/abhisek/mathsprint/internal/generators"
	"github.com/abhisek/mathsprint/internal/quiz"
	"github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/stats"
	"github.com/abhisek/mathsprint/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		fileCfg, err := loadFileConfig(cmd)
		if err != nil {
			return err
		}

		sessionCfg, err := buildSessionConfig(cmd, fileCfg)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine := session.NewEngine(session.Options{
			Registry:          generators.NewRegistry(rand.New(rand.NewSource(time.Now().UnixNano()))),
			Saver:             st,
			WeakAreas:         st,
			Tunables:          fileCfg.Tunables(),
			WeakAreaThreshold: fileCfg.WeakAreaThreshold(session.DefaultWeakAreaThreshold),
		})

		state, err := engine.Start(ctx, sessionCfg)
		if err != nil {
			return err
		}

		model := tui.NewModel(engine, state)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("run play screen: %w", err)
		}
		if model.Err != nil {
			return model.Err
		}
		if model.Aborted || model.Summary == nil {
			fmt.Println("Session abandoned, nothing saved.")
			return nil
		}

		printSummary(model.Summary)

		earned, err := badges.NewService(st).CheckEarned(ctx, model.Summary)
		if err != nil {
			return fmt.Errorf("check badges: %w", err)
		}
		for _, b := range earned {
			fmt.Printf("Badge unlocked: %s — %s\n", b.Name, b.Description)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().String("mode", "", "Session mode: sprint, marathon, or targeted")
	playCmd.Flags().String("category", "", "Question category (arithmetic, percentage, fractions, ratios, compound, estimation, mixed)")
	playCmd.Flags().String("difficulty", "", "Difficulty: easy, medium, hard, or adaptive")
	playCmd.Flags().Int("duration", 0, "Sprint duration in seconds")
	playCmd.Flags().Int("count", 0, "Question count for marathon and targeted sessions")
}

// buildSessionConfig resolves the session settings: flag > config file >
// built-in default.
func buildSessionConfig(cmd *cobra.Command, fileCfg config.FileConfig) (session.Config, error) {
	mode := "sprint"
	category := "mixed"
	difficulty := "adaptive"
	durationSeconds := 60
	count := 0

	if v := fileCfg.Session.Mode; v != nil {
		mode = *v
	}
	if v := fileCfg.Session.Category; v != nil {
		category = *v
	}
	if v := fileCfg.Session.Difficulty; v != nil {
		difficulty = *v
	}
	if v := fileCfg.Session.SprintSeconds; v != nil {
		durationSeconds = *v
	}
	if v := fileCfg.Session.QuestionCount; v != nil {
		count = *v
	}

	if cmd.Flags().Changed("mode") {
		mode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("category") {
		category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("difficulty") {
		difficulty, _ = cmd.Flags().GetString("difficulty")
	}
	if cmd.Flags().Changed("duration") {
		durationSeconds, _ = cmd.Flags().GetInt("duration")
	}
	if cmd.Flags().Changed("count") {
		count, _ = cmd.Flags().GetInt("count")
	}

	cfg := session.Config{
		Mode:          session.Mode(mode),
		Category:      quiz.Category(category),
		Difficulty:    quiz.Difficulty(difficulty),
		QuestionCount: count,
	}
	if cfg.Mode == session.ModeSprint {
		cfg.Duration = time.Duration(durationSeconds) * time.Second
	}
	if cfg.Mode == session.ModeMarathon && cfg.QuestionCount == 0 {
		cfg.QuestionCount = 20
	}
	if cfg.Mode == session.ModeTargeted {
		cfg.Category = quiz.CategoryTargeted
	}
	if err := cfg.Validate(); err != nil {
		return session.Config{}, err
	}
	return cfg, nil
}

func printSummary(s *session.Summary) {
	fmt.Println()
	fmt.Println("Session complete!")
	fmt.Printf("  Questions: %d  Correct: %d (%s)\n", s.TotalQuestions, s.CorrectAnswers, stats.Percent(s.Accuracy()))
	fmt.Printf("  Score:     %d\n", s.TotalScore)
	fmt.Printf("  Avg time:  %.2fs  Duration: %ds\n", s.AvgTimePerQuestion, s.DurationSeconds)
}
