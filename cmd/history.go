package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/stats"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := st.SessionHistory(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No sessions yet. Run `mathsprint play` to get started.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "when\tmode\tcategory\tdifficulty\tquestions\taccuracy\tscore")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%d\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Mode, r.Category, r.Difficulty,
				r.TotalQuestions, stats.Percent(r.Accuracy()), r.TotalScore)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Number of sessions to show (0 for all)")
}
