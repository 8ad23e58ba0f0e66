// Package cmd implements the CLI application to browse personal finances.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/jsalinasg/finances"
)

// Commands lists every subcommand a main package registers.
var Commands = []subcommands.Command{
	&accountsCmd{},
	&balancesCmd{},
	&monthlyCmd{},
	&holdingsCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "finances.toml", "Path to the configuration file")

func loadConfig() (*finances.Config, error) {
	return finances.LoadConfig(*configFile)
}

// loadPricedHoldings builds and values the share positions, or returns nil
// when no trades are recorded.
func loadPricedHoldings(cfg *finances.Config) (*finances.PricedHoldings, error) {
	txs, err := finances.LoadShareTransactions(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}
	positions, err := finances.BuildPositions(txs, finances.Range{})
	if err != nil {
		return nil, err
	}
	provider := finances.NewEODHD(cfg.EODHDAPIKey, cfg.Instruments)
	return finances.PriceHoldings(positions, provider, cfg.ReportingCurrency)
}

// loadAccounts loads the declared accounts and, when share trades exist,
// attaches the valued holdings as one synthetic account.
func loadAccounts(cfg *finances.Config) (*finances.AccountList, []finances.Warning, error) {
	list, err := finances.LoadAccountList(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	priced, err := loadPricedHoldings(cfg)
	if err != nil {
		return nil, nil, err
	}
	if priced == nil {
		return list, nil, nil
	}
	if err := list.AttachHoldings(priced, cfg.ReportingCurrency); err != nil {
		return nil, nil, err
	}
	return list, priced.Warnings(), nil
}

// parseRange turns the optional -from and -to flags into a date range. Both
// empty means the full observation span.
func parseRange(from, to string) (finances.Range, error) {
	var rng finances.Range
	if from == "" && to == "" {
		return rng, nil
	}
	var err error
	if from != "" {
		if rng.From, err = finances.ParseDate(from); err != nil {
			return rng, fmt.Errorf("invalid -from date %q: %w", from, err)
		}
	}
	if to == "" {
		rng.To = finances.Today()
	} else if rng.To, err = finances.ParseDate(to); err != nil {
		return rng, fmt.Errorf("invalid -to date %q: %w", to, err)
	}
	return finances.NewRange(rng.From, rng.To), nil
}
