package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jsalinasg/finances"
	"github.com/jsalinasg/finances/renderer"
)

type monthlyCmd struct {
	from, to string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display month-over-month changes of the total" }
func (*monthlyCmd) Usage() string {
	return `pfd monthly [-from <date>] [-to <date>]

  Folds the ledger's grand total down to one closing value per calendar
  month and shows each month's change against the previous month, grouped
  by year, most recent year first.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "start of the report range (defaults to the first observation)")
	f.StringVar(&c.to, "to", "", "end of the report range (defaults to today when -from is set)")
}

func (c *monthlyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rng, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	list, warnings, err := loadAccounts(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := list.CalculateBalances(rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out := renderer.MonthlyMarkdown(finances.YearlyDiffs(ledger), cfg.ReportingCurrency)
	if w := renderer.WarningsMarkdown(warnings); w != "" {
		out += "\n" + w
	}
	printMarkdown(out)
	return subcommands.ExitSuccess
}
