package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/cleaning"
)

var (
	cleanLoad   loadFlags
	cleanOps    []string
	cleanAll    bool
	cleanOutput string
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Apply cleaning operations and write the cleaned dataset",
	Long: `Clean applies the requested operations to a file and reports what changed.
Operations always run in a fixed order: remove_duplicates, fix_data_types,
handle_missing_basic, clean_text, remove_outliers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cleanAll && len(cleanOps) == 0 {
			return fmt.Errorf("nothing to do: pass --ops or --all")
		}
		var ops []cleaning.Operation
		if cleanAll {
			ops = cleaning.AllOperations()
		} else {
			var err error
			ops, err = cleaning.ParseOperations(cleanOps)
			if err != nil {
				return err
			}
		}

		ds, err := cleanLoad.load(args[0])
		if err != nil {
			return err
		}
		cleaned, sum, err := cleaning.Clean(ds, ops)
		if err != nil {
			return err
		}

		if cleanOutput != "" {
			if err := cleaned.WriteCSVFile(cleanOutput); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote cleaned data to %s\n", cleanOutput)
		}
		if jsonOut {
			b, err := json.MarshalIndent(sum, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal summary: %w", err)
			}
			fmt.Println(string(b))
			return nil
		}
		fmt.Printf("Rows: %d -> %d (%d removed)\n", sum.OriginalRows, sum.ResultRows, sum.RowsChanged)
		fmt.Printf("Memory estimate: %d -> %d bytes\n", sum.MemoryBefore, sum.MemoryAfter)
		for _, line := range sum.Log {
			fmt.Printf("  - %s\n", line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanLoad.register(cleanCmd)
	cleanCmd.Flags().StringSliceVar(&cleanOps, "ops", nil, "cleaning operations to apply (comma-separated)")
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "apply every cleaning operation")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "path to write the cleaned dataset (CSV)")
}
