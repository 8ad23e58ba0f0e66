package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jsalinasg/finances/renderer"
)

type balancesCmd struct {
	from, to string
	days     int
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display the daily balances of every account" }
func (*balancesCmd) Usage() string {
	return `pfd balances [-from <date>] [-to <date>] [-days <n>]

  Reconstructs the daily balance of every account, merges them into one
  ledger with a grand total, and shows the last -days rows.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "start of the report range (defaults to the first observation)")
	f.StringVar(&c.to, "to", "", "end of the report range (defaults to today when -from is set)")
	f.IntVar(&c.days, "days", 14, "number of trailing days to show")
}

func (c *balancesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	out := renderer.LedgerMarkdown(ledger, cfg.ReportingCurrency, c.days)
	if w := renderer.WarningsMarkdown(warnings); w != "" {
		out += "\n" + w
	}
	printMarkdown(out)
	return subcommands.ExitSuccess
}
