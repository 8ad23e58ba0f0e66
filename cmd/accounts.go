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

type accountsCmd struct {
	all bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the declared accounts" }
func (*accountsCmd) Usage() string {
	return `pfd accounts [-all]

  Lists the declared accounts with their bank, type, currency and status.
  Closed accounts are hidden unless -all is given.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "include closed accounts")
}

func (c *accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	list, err := finances.LoadAccountList(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	var accounts []*finances.Account
	for a := range list.All() {
		if !c.all && a.Status == finances.Closed {
			continue
		}
		accounts = append(accounts, a)
	}
	printMarkdown(renderer.AccountsMarkdown(accounts))
	return subcommands.ExitSuccess
}
