package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/quality"
)

var (
	anaLoad   loadFlags
	anaOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Score data quality of a CSV/TSV/Excel file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := anaLoad.load(args[0])
		if err != nil {
			return err
		}
		rep := quality.Analyze(ds)

		var out []byte
		if jsonOut {
			out, err = json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal report: %w", err)
			}
			out = append(out, '\n')
		} else {
			out = []byte(rep.Markdown())
		}
		if anaOutput != "" {
			if err := os.WriteFile(anaOutput, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote quality report to %s\n", anaOutput)
			return nil
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	anaLoad.register(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutput, "output", "o", "", "optional path to write the report")
}
