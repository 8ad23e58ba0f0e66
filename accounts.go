package finances

import (
	"errors"
	"fmt"
	"iter"
)

// HoldingsAccountID is the id of the synthetic account carrying the valued
// investment portfolio. It is merged into the ledger like any other account.
const HoldingsAccountID = "Holdings"

// AccountList is an ordered collection of accounts with unique ids, validated
// at construction.
type AccountList struct {
	accounts []*Account
	index    map[string]*Account
}

// NewAccountList builds an AccountList, failing fast on a duplicate id.
func NewAccountList(accounts ...*Account) (*AccountList, error) {
	l := &AccountList{index: make(map[string]*Account, len(accounts))}
	for _, a := range accounts {
		if err := l.add(a); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *AccountList) add(a *Account) error {
	if a.ID == "" {
		return errors.New("account with empty id")
	}
	if _, dup := l.index[a.ID]; dup {
		return fmt.Errorf("duplicate account id %q", a.ID)
	}
	l.accounts = append(l.accounts, a)
	l.index[a.ID] = a
	return nil
}

// Len returns the number of accounts in the list.
func (l *AccountList) Len() int { return len(l.accounts) }

// IDs returns the account ids in their declared order.
func (l *AccountList) IDs() []string {
	ids := make([]string, 0, len(l.accounts))
	for _, a := range l.accounts {
		ids = append(ids, a.ID)
	}
	return ids
}

// Get returns the account with the given id.
func (l *AccountList) Get(id string) (*Account, error) {
	a, ok := l.index[id]
	if !ok {
		return nil, &UnknownAccountError{AccountID: id}
	}
	return a, nil
}

// All iterates over the accounts in their declared order.
func (l *AccountList) All() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range l.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// AttachHoldings appends the synthetic Holdings account fed by the valuation
// pipeline. Its observations are the priced portfolio's daily balances, so
// downstream merging treats it like any other account.
func (l *AccountList) AttachHoldings(priced *PricedHoldings, currency string) error {
	return l.add(NewHoldingsAccount(priced, currency))
}

// ObservationSpan returns the range from the earliest to the latest raw
// observation across all accounts, and false when no account has data.
func (l *AccountList) ObservationSpan() (Range, bool) {
	var from, to Date
	for _, a := range l.accounts {
		first, last := a.FirstObservation(), a.LastObservation()
		if first.IsZero() {
			continue
		}
		if from.IsZero() || first.Before(from) {
			from = first
		}
		if last.After(to) {
			to = last
		}
	}
	if from.IsZero() {
		return Range{}, false
	}
	return Range{From: from, To: to}, true
}

// CalculateBalances reconstructs every account's daily balance over rng and
// merges them into a fresh immutable Ledger. A zero endpoint in rng defaults
// to the matching end of the observed span across all accounts, so a fully
// zero rng means the whole span.
//
// An account whose first observation comes after the whole range is not an
// error by itself: it merges as a zero column, the same way a brand-new
// account reads before its first observation. Only a range preceding every
// account's data is RangeEmptyError. Any other per-account error aborts the
// whole pass: a partial ledger is never produced. Rerunning with the same
// input and range yields an identical ledger.
func (l *AccountList) CalculateBalances(rng Range) (*Ledger, error) {
	if len(l.accounts) == 0 {
		return nil, errors.New("no accounts to calculate balances for")
	}
	if rng.From.IsZero() || rng.To.IsZero() {
		span, ok := l.ObservationSpan()
		if !ok {
			return nil, &MissingDataError{AccountID: l.accounts[0].ID}
		}
		if rng.From.IsZero() {
			rng.From = span.From
		}
		if rng.To.IsZero() {
			rng.To = span.To
		}
		rng = NewRange(rng.From, rng.To)
	}
	notOpened := 0
	var lastEmpty error
	for _, a := range l.accounts {
		err := a.CalculateBalance(rng)
		var empty *RangeEmptyError
		switch {
		case err == nil:
		case errors.As(err, &empty):
			// Not opened yet over this range: the merge zero-fills it.
			notOpened++
			lastEmpty = err
		default:
			return nil, fmt.Errorf("could not reconstruct balance of account %q: %w", a.ID, err)
		}
	}
	if notOpened == len(l.accounts) {
		return nil, fmt.Errorf("no account has data over %s: %w", rng, lastEmpty)
	}
	return buildLedger(rng, l.accounts), nil
}
