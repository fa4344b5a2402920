package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tablewise/tablewise/internal/dataset"
	"github.com/tablewise/tablewise/internal/quality"
	"github.com/tablewise/tablewise/internal/utils"
)

// contextTokenBudget caps how much dataset context goes into a prompt so
// wide datasets do not blow past model limits.
const contextTokenBudget = 6000

// historyLimit bounds the conversation turns replayed per request.
const historyLimit = 20

const systemPrompt = `You are a data analysis assistant. You are given a summary
of a tabular dataset (schema, statistics, and a quality report). Answer the
user's questions about this dataset concretely, citing column names and
numbers from the summary. If a question cannot be answered from the summary,
say so and suggest what additional computation would answer it. Keep answers
concise and formatted for a terminal.`

// Assistant holds the conversational state for one dataset: the profile and
// quality report rendered once as prompt context, plus the chat history.
type Assistant struct {
	client  *Client
	model   string
	context string
	history []Message
}

// NewAssistant profiles ds and prepares prompt context. The dataset itself
// is not retained; only its rendered summary is.
func NewAssistant(client *Client, model string, ds *dataset.Dataset, name string) *Assistant {
	profile := quality.Describe(ds, name)
	report := quality.Analyze(ds)
	ctx := profile.Markdown() + "\n\n" + report.Markdown()
	return &Assistant{
		client:  client,
		model:   model,
		context: utils.TruncateToTokenLimit(ctx, contextTokenBudget),
	}
}

// Ask sends question together with the dataset context and recent history,
// records both turns, and returns the model's answer.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question cannot be empty")
	}
	msgs := make([]Message, 0, len(a.history)+2)
	msgs = append(msgs, Message{Role: "user", Content: "Dataset context:\n\n" + a.context})
	msgs = append(msgs, Message{Role: "model", Content: "Understood. I have the dataset summary and quality report. Ask away."})
	msgs = append(msgs, a.recentHistory()...)
	msgs = append(msgs, Message{Role: "user", Content: question})

	resp, err := a.client.Generate(ctx, GenerateRequest{
		Model:    a.model,
		System:   systemPrompt,
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	answer := strings.TrimSpace(resp.Content)
	a.history = append(a.history,
		Message{Role: "user", Content: question},
		Message{Role: "model", Content: answer},
	)
	return answer, nil
}

func (a *Assistant) recentHistory() []Message {
	if len(a.history) <= historyLimit {
		return a.history
	}
	return a.history[len(a.history)-historyLimit:]
}

// History returns a copy of the conversation so far.
func (a *Assistant) History() []Message {
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}

// QuickActions lists canned questions shown as chat shortcuts.
func QuickActions() []string {
	return []string{
		"Give me an overview of this dataset",
		"Which columns have data quality problems?",
		"What cleaning steps would you recommend, and in what order?",
		"Are there any surprising patterns or correlations?",
		"Which columns could be dropped without losing much information?",
	}
}
