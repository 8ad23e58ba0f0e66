package finances

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// InstrumentConfig declares one investment instrument: the identifier used in
// the holdings transaction log, the market-data provider's ticker for it, and
// the currency the provider quotes it in ("GBp" marks pence quotes).
type InstrumentConfig struct {
	ID       string `toml:"id"`
	Ticker   string `toml:"ticker"`
	Currency string `toml:"currency"`
}

// Config is the application configuration, read from a TOML file.
type Config struct {
	// DataDir holds the account tables (accounts.jsonl, one observation file
	// per account, holdings.jsonl).
	DataDir string `toml:"data_dir"`
	// ReportingCurrency is the single currency all valuations are normalized
	// into before aggregation.
	ReportingCurrency string `toml:"reporting_currency"`
	// EODHDAPIKey authenticates against eodhd.com. The EODHD_API_KEY
	// environment variable takes precedence.
	EODHDAPIKey string             `toml:"eodhd_api_key"`
	Instruments []InstrumentConfig `toml:"instruments"`
}

// LoadConfig reads and validates the configuration file.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	cfg := &Config{
		DataDir:           ".",
		ReportingCurrency: "GBP",
	}
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if key := os.Getenv("EODHD_API_KEY"); key != "" {
		cfg.EODHDAPIKey = key
	}
	for _, ins := range cfg.Instruments {
		if ins.ID == "" || ins.Ticker == "" {
			return nil, fmt.Errorf("config %q: instrument needs both id and ticker, got %+v", path, ins)
		}
	}
	return cfg, nil
}
