package finances

import "fmt"

// MissingDataError reports an account declared in the accounts table that has
// no observation data. It is fatal to the whole balance-calculation pass: a
// partial ledger is never produced.
type MissingDataError struct {
	AccountID string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("no transaction data for account %q", e.AccountID)
}

// RangeEmptyError reports a requested date range that precedes all known data
// for an account, or spans zero calendar days. An empty range is an error, not
// an empty table: a table of zeros would be misread as real balances.
type RangeEmptyError struct {
	AccountID string
	Requested Range
	FirstData Date // earliest known observation, zero if none
}

func (e *RangeEmptyError) Error() string {
	if e.FirstData.IsZero() {
		return fmt.Sprintf("empty date range %s for account %q", e.Requested, e.AccountID)
	}
	return fmt.Sprintf("date range %s for account %q ends before its first observation on %s",
		e.Requested, e.AccountID, e.FirstData)
}

// UnknownAccountError reports a lookup of an account id that was never
// declared. Account ids are validated at construction, so hitting this at
// lookup time means the caller holds a stale id.
type UnknownAccountError struct {
	AccountID string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("no account found with id %q", e.AccountID)
}

// Warning is a non-fatal condition attached to a computation's output. It is
// surfaced to the caller rather than logged and forgotten.
type Warning interface {
	error
	warning()
}

// PartialMarketDataWarning reports price or FX data unavailable for an
// instrument over some days. The affected values stay unavailable rather than
// being coerced to zero, which would silently misstate the portfolio.
type PartialMarketDataWarning struct {
	Instrument string
	Days       Range
	Reason     string
}

func (w *PartialMarketDataWarning) Error() string {
	if w.Days.IsZero() {
		return fmt.Sprintf("no market data for %q: %s", w.Instrument, w.Reason)
	}
	return fmt.Sprintf("market data for %q unavailable over %s: %s", w.Instrument, w.Days, w.Reason)
}

func (w *PartialMarketDataWarning) warning() {}
