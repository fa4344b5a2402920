package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tablewise/tablewise/internal/ai"
)

var chatLoad loadFlags

var chatCmd = &cobra.Command{
	Use:   "chat <file>",
	Short: "Chat with an AI model about a dataset",
	Long: `Chat loads a dataset, profiles it, and opens an interactive prompt. The
model sees the profile and quality report as context and answers free-form
questions. Requires an API key (config api_key or GEMINI_API_KEY).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil || cfg.APIKey == "" {
			return fmt.Errorf("no API key configured: run 'tablewise config set api_key <key>' or set GEMINI_API_KEY")
		}
		path := args[0]
		ds, err := chatLoad.load(path)
		if err != nil {
			return err
		}

		client := ai.NewClient(
			cfg.APIKey,
			time.Duration(cfg.HTTPTimeoutSec)*time.Second,
			cfg.RetryMaxAttempts,
			time.Duration(cfg.RetryBaseDelayMs)*time.Millisecond,
			time.Duration(cfg.RetryMaxDelayMs)*time.Millisecond,
		)
		assistant := ai.NewAssistant(client, cfg.Model, ds, datasetName(path))

		fmt.Printf("Chatting about %s (%d rows, %d columns). Type 'exit' to quit.\n",
			datasetName(path), ds.NumRows(), ds.NumCols())
		fmt.Println("Try one of:")
		for _, q := range ai.QuickActions() {
			fmt.Printf("  - %s\n", q)
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				continue
			}
			if question == "exit" || question == "quit" {
				break
			}
			answer, err := assistant.Ask(context.Background(), question)
			if err != nil {
				log.Errorf("ask failed: %v", err)
				continue
			}
			fmt.Println("\n" + answer)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatLoad.register(chatCmd)
}
