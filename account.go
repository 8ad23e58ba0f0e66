package finances

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType is a typed string for the kind of bank account.
type AccountType string

const (
	Current    AccountType = "Current"
	Savings    AccountType = "Savings"
	CreditCard AccountType = "Credit Card"
	Loan       AccountType = "Loan"
	Investment AccountType = "Investment"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Current, Savings, CreditCard, Loan, Investment:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// AccountStatus is a typed string for whether an account is still open.
type AccountStatus string

const (
	Active AccountStatus = "Active"
	Closed AccountStatus = "Closed"
)

// ParseAccountStatus parses a string into an AccountStatus.
func ParseAccountStatus(s string) (AccountStatus, error) {
	switch AccountStatus(s) {
	case Active, Closed:
		return AccountStatus(s), nil
	default:
		return "", fmt.Errorf("unknown account status: %q", s)
	}
}

// Observation is one raw row of an account's transaction history: the balance
// observed after a given transaction on a given date. Seq is the bank's
// transaction number within the statement and orders same-day entries.
//
// For the Holdings pseudo-account an observation may additionally carry a
// share delta on an instrument; those rows feed the position builder instead
// of the balance reconstruction.
type Observation struct {
	Date       Date            `json:"date"`
	Seq        int64           `json:"transaction_number"`
	Balance    decimal.Decimal `json:"balance"`
	Instrument string          `json:"instrument,omitempty"`
	Shares     Quantity        `json:"shares,omitzero"`
}

// MarshalJSON keeps the zero share delta out of plain balance rows.
func (o Observation) MarshalJSON() ([]byte, error) {
	type row struct {
		Date       Date            `json:"date"`
		Seq        int64           `json:"transaction_number"`
		Balance    decimal.Decimal `json:"balance"`
		Instrument string          `json:"instrument,omitempty"`
		Shares     *Quantity       `json:"shares,omitempty"`
	}
	r := row{Date: o.Date, Seq: o.Seq, Balance: o.Balance, Instrument: o.Instrument}
	if !o.Shares.IsZero() {
		r.Shares = &o.Shares
	}
	return json.Marshal(r)
}

// Account is one bank account: its descriptive attributes, the raw balance
// observations attached by the loader, and the reconstructed daily balance
// series once CalculateBalance has run.
type Account struct {
	ID       string        `json:"account_id"`
	Bank     string        `json:"bank,omitempty"`
	Number   string        `json:"account_number,omitempty"`
	Type     AccountType   `json:"type"`
	Currency string        `json:"currency"`
	Status   AccountStatus `json:"status"`

	observations []Observation
	balance      *History[decimal.Decimal] // authoritative end-of-day balances, nil until calculated
}

// SetObservations attaches the raw transaction history to the account,
// replacing any previous one and discarding any previously derived balance.
func (a *Account) SetObservations(obs []Observation) {
	a.observations = obs
	a.balance = nil
}

// Observations returns the raw transaction history attached to the account.
func (a *Account) Observations() []Observation { return a.observations }

// normalize resolves the raw observations into one authoritative end-of-day
// balance per distinct date, chronologically sorted.
//
// Among rows sharing a date the highest transaction number wins: the last
// transaction of the day carries the closing balance. When two same-day rows
// share the same transaction number, the one appearing later in the source
// wins; the source order is the only remaining signal.
func (a *Account) normalize() (*History[decimal.Decimal], error) {
	if len(a.observations) == 0 {
		return nil, &MissingDataError{AccountID: a.ID}
	}
	winners := make(map[Date]Observation, len(a.observations))
	for _, o := range a.observations {
		if best, ok := winners[o.Date]; !ok || o.Seq >= best.Seq {
			winners[o.Date] = o
		}
	}
	h := &History[decimal.Decimal]{}
	for on, o := range winners {
		h.Append(on, o.Balance)
	}
	return h, nil
}

// CalculateBalance reconstructs the account's daily balance over the given
// inclusive range. After it returns, BalanceOn answers for every day of the
// range: the most recent authoritative balance on or before that day, or
// "absent" for days before the account's first observation. There is no
// backward fill: an account that does not exist yet has no balance, which is
// not the same thing as a zero balance.
//
// Rerunning with the same input and range overwrites the previous derived
// state and yields an identical result. A failed run clears any previously
// derived balance rather than leaving it stale.
func (a *Account) CalculateBalance(rng Range) error {
	a.balance = nil
	h, err := a.normalize()
	if err != nil {
		return err
	}
	first, _ := h.First()
	if rng.Len() == 0 {
		return &RangeEmptyError{AccountID: a.ID, Requested: rng, FirstData: first}
	}
	if rng.To.Before(first) {
		// The whole requested range precedes the account's history.
		return &RangeEmptyError{AccountID: a.ID, Requested: rng, FirstData: first}
	}
	a.balance = h
	return nil
}

// BalanceOn returns the reconstructed balance for a single day, forward
// filled from the last authoritative observation. ok is false for days before
// the account's first observation, and always false before CalculateBalance
// has run.
func (a *Account) BalanceOn(day Date) (decimal.Decimal, bool) {
	if a.balance == nil {
		return decimal.Decimal{}, false
	}
	return a.balance.ValueAsOf(day)
}

// FirstObservation returns the date of the account's earliest raw
// observation, or a zero date if there is none.
func (a *Account) FirstObservation() Date {
	var first Date
	for _, o := range a.observations {
		if first.IsZero() || o.Date.Before(first) {
			first = o.Date
		}
	}
	return first
}

// LastObservation returns the date of the account's latest raw observation,
// or a zero date if there is none.
func (a *Account) LastObservation() Date {
	var last Date
	for _, o := range a.observations {
		if o.Date.After(last) {
			last = o.Date
		}
	}
	return last
}
