package finances

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// QuoteProvider supplies daily market data for instruments and currency
// pairs. Implementations are expected to return explicit missing markers
// (absent days in the histories), never zeros.
type QuoteProvider interface {
	// Daily returns, for each requested instrument, its daily closing price
	// history in the instrument's native currency, plus that currency code.
	// Instruments the provider knows nothing about are simply absent from the
	// result; that absence is the caller's partial-data signal.
	Daily(ids []string, rng Range) (prices map[string]*History[float64], currencies map[string]string, err error)

	// FxDaily returns the daily base→quote conversion rate.
	FxDaily(base, quote string, rng Range) (*History[float64], error)
}

// minorUnits maps price currencies quoted in a minor unit to their major
// currency and scale. Rescaling by the fixed factor is a unit correction, not
// a currency conversion: 250 pence is 2.50 pounds.
var minorUnits = map[string]struct {
	major string
	scale int64
}{
	"GBp": {"GBP", 100},
	"GBX": {"GBP", 100},
	"ZAc": {"ZAR", 100},
}

// PricedHoldings is the valued portfolio: one daily monetary column per
// instrument in the reporting currency, a Balance column summing across
// instruments, and a sequential transaction number per day used as a
// tie-break ordering key when the portfolio is merged into the ledger.
//
// Days for which an instrument could not be priced are marked unavailable and
// reported through Warnings; they are excluded from Balance rather than
// counted as zero.
type PricedHoldings struct {
	rng               Range
	reportingCurrency string
	instruments       []string
	values            map[string][]decimal.Decimal
	known             map[string][]bool
	balance           []decimal.Decimal
	warnings          []Warning
}

// PriceHoldings prices the daily positions against the provider's market
// data, normalized into the reporting currency.
//
// Prices are forward filled over quote gaps (markets close on weekends, the
// position does not). FX rates are forward then backward filled so every
// priced day has a rate. Missing price or FX data for an instrument makes
// that instrument's affected days unavailable and attaches a warning; it
// never crashes the pipeline and never coerces a value to zero.
func PriceHoldings(positions *Positions, provider QuoteProvider, reportingCurrency string) (*PricedHoldings, error) {
	rng := positions.Range()
	n := rng.Len()
	p := &PricedHoldings{
		rng:               rng,
		reportingCurrency: reportingCurrency,
		instruments:       positions.Instruments(),
		values:            make(map[string][]decimal.Decimal, len(positions.Instruments())),
		known:             make(map[string][]bool, len(positions.Instruments())),
		balance:           make([]decimal.Decimal, n),
	}

	prices, currencies, err := provider.Daily(p.instruments, rng)
	if err != nil {
		return nil, fmt.Errorf("could not fetch prices for %v: %w", p.instruments, err)
	}

	// FX series are fetched once per distinct currency, not per instrument.
	fxCache := make(map[string]*History[float64])

	for _, instrument := range p.instruments {
		values := make([]decimal.Decimal, n)
		known := make([]bool, n)
		p.values[instrument] = values
		p.known[instrument] = known

		quotes := prices[instrument]
		if quotes == nil || quotes.Len() == 0 {
			p.warn(instrument, rng, "provider returned no price data")
			continue
		}

		currency := currencies[instrument]
		scale := decimal.NewFromInt(1)
		if mu, ok := minorUnits[currency]; ok {
			scale = decimal.NewFromInt(mu.scale)
			currency = mu.major
		}

		var fx *History[float64]
		if currency != p.reportingCurrency {
			var ok bool
			fx, ok = fxCache[currency]
			if !ok {
				fx, err = provider.FxDaily(currency, p.reportingCurrency, rng)
				if err != nil || fx.Len() == 0 {
					p.warn(instrument, rng, fmt.Sprintf("no %s%s rates available", currency, p.reportingCurrency))
					continue
				}
				fxCache[currency] = fx
			}
		}

		var missingFrom Date
		i := 0
		for day := range rng.Days() {
			held := positions.On(instrument, day)
			if held.IsZero() {
				// Nothing held, nothing to price.
				values[i] = decimal.Zero
				known[i] = true
				i++
				continue
			}
			price, ok := quotes.ValueAsOf(day)
			if !ok {
				// Before the first quote: the value is unknown, not zero.
				if missingFrom.IsZero() {
					missingFrom = day
				}
				i++
				continue
			}
			rate := decimal.NewFromInt(1)
			if fx != nil {
				rate = decimal.NewFromFloat(fxAsOf(fx, day))
			}
			unit := decimal.NewFromFloat(price).Div(scale).Mul(rate)
			values[i] = held.Decimal().Mul(unit)
			known[i] = true
			p.balance[i] = p.balance[i].Add(values[i])
			i++
		}
		if !missingFrom.IsZero() {
			firstQuote, _ := quotes.First()
			p.warn(instrument, Range{From: missingFrom, To: firstQuote.Add(-1)},
				"position held before the first available quote")
		}
	}
	return p, nil
}

// fxAsOf reads the conversion rate for a day, forward filled; days before the
// first known rate fall back to it (backward fill).
func fxAsOf(fx *History[float64], day Date) float64 {
	if rate, ok := fx.ValueAsOf(day); ok {
		return rate
	}
	_, first := fx.First()
	return first
}

func (p *PricedHoldings) warn(instrument string, days Range, reason string) {
	p.warnings = append(p.warnings, &PartialMarketDataWarning{Instrument: instrument, Days: days, Reason: reason})
}

// Range returns the daily range the valuation spans.
func (p *PricedHoldings) Range() Range { return p.rng }

// ReportingCurrency returns the currency every value is normalized into.
func (p *PricedHoldings) ReportingCurrency() string { return p.reportingCurrency }

// Instruments returns the instrument identifiers in sorted order.
func (p *PricedHoldings) Instruments() []string { return slices.Clone(p.instruments) }

// Value returns the instrument's market value on a day in the reporting
// currency. ok is false when the day could not be priced.
func (p *PricedHoldings) Value(instrument string, day Date) (decimal.Decimal, bool) {
	i, inRange := p.dayIndex(day)
	known, tracked := p.known[instrument]
	if !inRange || !tracked || !known[i] {
		return decimal.Decimal{}, false
	}
	return p.values[instrument][i], true
}

// Balance returns the portfolio value on a day: the row-wise sum of the
// available instrument values.
func (p *PricedHoldings) Balance(day Date) (decimal.Decimal, bool) {
	i, ok := p.dayIndex(day)
	if !ok {
		return decimal.Decimal{}, false
	}
	return p.balance[i], true
}

// Warnings returns the partial-market-data warnings gathered while pricing.
func (p *PricedHoldings) Warnings() []Warning { return slices.Clone(p.warnings) }

// Observations renders the valued portfolio as balance observations: one row
// per day, carrying a monotonically increasing transaction number. This is
// not a real transaction count, only the ordering key the merge step expects
// from every account history.
func (p *PricedHoldings) Observations() []Observation {
	obs := make([]Observation, 0, p.rng.Len())
	i := 0
	for day := range p.rng.Days() {
		obs = append(obs, Observation{Date: day, Seq: int64(i + 1), Balance: p.balance[i]})
		i++
	}
	return obs
}

// NewHoldingsAccount wraps the valued portfolio in the synthetic Holdings
// account so the merger treats it like any other account.
func NewHoldingsAccount(p *PricedHoldings, currency string) *Account {
	a := &Account{
		ID:       HoldingsAccountID,
		Type:     Investment,
		Currency: currency,
		Status:   Active,
	}
	a.SetObservations(p.Observations())
	return a
}

func (p *PricedHoldings) dayIndex(day Date) (int, bool) {
	if !p.rng.Contains(day) {
		return 0, false
	}
	return Range{From: p.rng.From, To: day}.Len() - 1, true
}
