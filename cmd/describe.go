package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/quality"
)

var descLoad loadFlags

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Profile every column: kinds, missing counts, statistics, top values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ds, err := descLoad.load(path)
		if err != nil {
			return err
		}
		profile := quality.Describe(ds, datasetName(path))
		fmt.Println(profile.Markdown())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	descLoad.register(describeCmd)
}
