package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jsalinasg/finances/renderer"
)

type holdingsCmd struct {
	days int
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the valued share positions per instrument" }
func (*holdingsCmd) Usage() string {
	return `pfd holdings [-days <n>]

  Values every share position with daily market quotes, converted into the
  reporting currency, and shows the last -days rows per instrument.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 14, "number of trailing days to show")
}

func (c *holdingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	priced, err := loadPricedHoldings(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if priced == nil {
		fmt.Fprintln(os.Stderr, "No share transactions recorded.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.HoldingsMarkdown(priced, c.days))
	return subcommands.ExitSuccess
}
