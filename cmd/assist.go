package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/jsalinasg/finances"
	"github.com/jsalinasg/finances/renderer"
	"google.golang.org/genai"
)

type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about your finances" }
func (*assistCmd) Usage() string {
	return `pfd assist [<question>...]

  Sends the current reports to the AI assistant together with your
  question, and prints its commentary. Without a question, asks for a
  general review of the recent months.

  Requires Gemini credentials in the environment (GEMINI_API_KEY).
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
}

const assistInstruction = `You are a careful personal-finance analyst.
You are given the user's account balances and month-over-month changes as
markdown tables, all amounts in their reporting currency. Comment on the
trend, point out unusual months, and answer the user's question. Be
concrete and brief. Never invent numbers that are not in the tables.`

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "Review the recent months for me."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	list, _, err := loadAccounts(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := list.CalculateBalances(finances.Range{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := renderer.LedgerMarkdown(ledger, cfg.ReportingCurrency, 14) + "\n" +
		renderer.MonthlyMarkdown(finances.YearlyDiffs(ledger), cfg.ReportingCurrency)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}
	resp, err := client.Models.GenerateContent(ctx, c.model,
		genai.Text(report+"\n\n"+question),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: assistInstruction}}},
		})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assistant failed: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
