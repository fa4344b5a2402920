package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/query"
)

var queryLoad loadFlags

var queryCmd = &cobra.Command{
	Use:   "query <file> <question>",
	Short: "Answer a question about a dataset without calling an AI model",
	Long: `Query answers common questions (missing values, types, statistics,
correlations, unique values, shape) by keyword matching. It never needs an
API key. For open-ended questions, use chat.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := queryLoad.load(args[0])
		if err != nil {
			return err
		}
		question := strings.Join(args[1:], " ")
		fmt.Println(query.Handle(ds, question))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryLoad.register(queryCmd)
}
