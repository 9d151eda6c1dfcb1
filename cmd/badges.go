package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/badges"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned and locked badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		earned, err := st.EarnedBadges(cmd.Context())
		if err != nil {
			return err
		}

		for _, b := range badges.Catalog() {
			if at, ok := earned[b.Slug]; ok {
				fmt.Printf("[x] %-20s %s (earned %s)\n", b.Name, b.Description, at.Local().Format("2006-01-02"))
			} else {
				fmt.Printf("[ ] %-20s %s\n", b.Name, b.Description)
			}
		}
		fmt.Printf("\n%d of %d earned\n", len(earned), len(badges.Catalog()))
		return nil
	},
}
