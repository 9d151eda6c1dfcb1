package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/stats"
	"github.com/abhisek/mathsprint/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := loadFileConfig(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		threshold := fileCfg.WeakAreaThreshold(session.DefaultWeakAreaThreshold)
		report, err := stats.Build(cmd.Context(), st, threshold)
		if err != nil {
			return err
		}

		if report.Overall.TotalSessions == 0 {
			fmt.Println("No sessions yet. Run `mathsprint play` to get started.")
			return nil
		}

		o := report.Overall
		fmt.Printf("Sessions: %d  Questions: %d  Accuracy: %s\n",
			o.TotalSessions, o.TotalQuestions, stats.Percent(o.Accuracy()))
		fmt.Printf("Total score: %d  Best session: %d  Avg time: %.2fs\n",
			o.TotalScore, o.BestScore, o.AvgTime)
		fmt.Printf("Streak: %d days (longest %d)\n", report.CurrentStreak, report.LongestStreak)

		printBreakdown("By category", report.ByCategory)
		printBreakdown("By difficulty", report.ByDifficulty)

		if len(report.WeakAreas) > 0 {
			fmt.Println("\nWeak areas (under", stats.Percent(threshold), "accuracy):")
			for _, k := range report.WeakAreas {
				fmt.Printf("  %s\n", k)
			}
		}
		return nil
	},
}

func printBreakdown(title string, rows []store.BreakdownRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Println("\n" + title + ":")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  \tattempts\taccuracy\tavg time")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%d\t%s\t%.2fs\n", r.Key, r.Attempts, stats.Percent(r.Accuracy()), r.AvgTime)
	}
	w.Flush()
}
