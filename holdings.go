package finances

import (
	"errors"
	"slices"
)

// ShareTransaction is one row of the investment transaction log: a signed
// share delta on an instrument. Positive is an acquisition, negative a
// disposal.
type ShareTransaction struct {
	Date       Date     `json:"date"`
	Instrument string   `json:"instrument"`
	Shares     Quantity `json:"shares"`
}

// Positions holds the cumulative daily share count per instrument over a
// range: flat between transactions, updated only on transaction days, zero
// before an instrument's first trade.
type Positions struct {
	rng         Range
	instruments []string
	held        map[string]*History[Quantity] // cumulative share count points
}

// BuildPositions turns the share transaction log into cumulative daily
// positions over rng. Same-day transactions on one instrument are collapsed
// by summing their deltas. A zero rng means from the first transaction to the
// last.
//
// A negative cumulative position is passed through untouched: shorting is not
// modeled here, so it signals bad data and should be surfaced by the caller,
// not silently corrected.
func BuildPositions(txs []ShareTransaction, rng Range) (*Positions, error) {
	if len(txs) == 0 {
		return nil, errors.New("no share transactions to build positions from")
	}

	// Collapse same-day deltas per instrument.
	deltas := make(map[string]*History[Quantity])
	for _, tx := range txs {
		h, ok := deltas[tx.Instrument]
		if !ok {
			h = &History[Quantity]{}
			deltas[tx.Instrument] = h
		}
		h.Merge(tx.Date, tx.Shares, Quantity.Add)
	}

	if rng.IsZero() {
		var from, to Date
		for _, tx := range txs {
			if from.IsZero() || tx.Date.Before(from) {
				from = tx.Date
			}
			if tx.Date.After(to) {
				to = tx.Date
			}
		}
		rng = Range{From: from, To: to}
	}

	p := &Positions{rng: rng, held: make(map[string]*History[Quantity], len(deltas))}
	for instrument, h := range deltas {
		cumulative := &History[Quantity]{}
		running := Q(0)
		for on, delta := range h.Values() {
			running = running.Add(delta)
			cumulative.Append(on, running)
		}
		p.instruments = append(p.instruments, instrument)
		p.held[instrument] = cumulative
	}
	slices.Sort(p.instruments)
	return p, nil
}

// Range returns the daily range the positions are defined over.
func (p *Positions) Range() Range { return p.rng }

// Instruments returns the instrument identifiers in sorted order.
func (p *Positions) Instruments() []string { return slices.Clone(p.instruments) }

// On returns the shares held on a given day: the running cumulative sum as of
// that day, forward filled, or zero before the instrument's first trade.
func (p *Positions) On(instrument string, day Date) Quantity {
	h, ok := p.held[instrument]
	if !ok {
		return Q(0)
	}
	held, ok := h.ValueAsOf(day)
	if !ok {
		return Q(0)
	}
	return held
}
