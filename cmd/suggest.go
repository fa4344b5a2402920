package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/quality"
)

var sugLoad loadFlags

var suggestCmd = &cobra.Command{
	Use:   "suggest <file>",
	Short: "Recommend cleaning steps based on the quality report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := sugLoad.load(args[0])
		if err != nil {
			return err
		}
		rep := quality.Analyze(ds)
		sug := quality.Suggest(rep)

		if jsonOut {
			b, err := json.MarshalIndent(sug, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal suggestions: %w", err)
			}
			fmt.Println(string(b))
			return nil
		}
		for _, cat := range quality.Categories() {
			items := sug[cat]
			fmt.Printf("## %s\n", cat)
			if len(items) == 0 {
				fmt.Println("  (nothing to do)")
			}
			for _, s := range items {
				fmt.Printf("  - %s\n", s)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	sugLoad.register(suggestCmd)
}
