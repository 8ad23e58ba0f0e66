package finances

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger is the canonical merged daily balance table: a complete, gapless
// calendar-day index spanning the union of all accounts' ranges, one column
// per account, and a Total column equal to the row-wise sum.
//
// A Ledger is an immutable snapshot produced by AccountList.CalculateBalances;
// consumers hold a reference to the latest one and never mutate it.
type Ledger struct {
	rng     Range
	ids     []string
	columns [][]decimal.Decimal // parallel to ids, one value per day of rng
	total   []decimal.Decimal
}

// buildLedger outer-joins the accounts' reconstructed series onto the full
// calendar of rng. A day before an account's coverage is filled with zero:
// once merged, "the account did not exist yet" contributes nothing to the
// totals. Days inside coverage are forward filled by construction, so no
// missing value remains in any column.
func buildLedger(rng Range, accounts []*Account) *Ledger {
	n := rng.Len()
	led := &Ledger{
		rng:     rng,
		ids:     make([]string, 0, len(accounts)),
		columns: make([][]decimal.Decimal, 0, len(accounts)),
		total:   make([]decimal.Decimal, n),
	}
	for _, a := range accounts {
		col := make([]decimal.Decimal, 0, n)
		i := 0
		for day := range rng.Days() {
			v, ok := a.BalanceOn(day)
			if !ok {
				v = decimal.Zero
			}
			col = append(col, v)
			led.total[i] = led.total[i].Add(v)
			i++
		}
		led.ids = append(led.ids, a.ID)
		led.columns = append(led.columns, col)
	}
	return led
}

// Range returns the calendar range the ledger spans.
func (l *Ledger) Range() Range { return l.rng }

// AccountIDs returns the column ids in account order.
func (l *Ledger) AccountIDs() []string { return slices.Clone(l.ids) }

// Balance returns the merged balance of one account on one day. Unknown ids
// fail fast rather than reading as zero.
func (l *Ledger) Balance(id string, day Date) (decimal.Decimal, error) {
	col := slices.Index(l.ids, id)
	if col < 0 {
		return decimal.Decimal{}, &UnknownAccountError{AccountID: id}
	}
	i, ok := l.dayIndex(day)
	if !ok {
		return decimal.Decimal{}, &RangeEmptyError{AccountID: id, Requested: Range{From: day, To: day}}
	}
	return l.columns[col][i], nil
}

// Total returns the row-wise sum of all account columns on one day, and false
// when day is outside the ledger's range.
func (l *Ledger) Total(day Date) (decimal.Decimal, bool) {
	i, ok := l.dayIndex(day)
	if !ok {
		return decimal.Decimal{}, false
	}
	return l.total[i], true
}

// Row is one day of the merged ledger.
type Row struct {
	Date     Date
	Balances []decimal.Decimal // in AccountIDs order
	Total    decimal.Decimal
}

// Rows iterates over the ledger days in chronological order.
func (l *Ledger) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		i := 0
		for day := range l.rng.Days() {
			row := Row{Date: day, Balances: make([]decimal.Decimal, len(l.ids)), Total: l.total[i]}
			for c := range l.columns {
				row.Balances[c] = l.columns[c][i]
			}
			if !yield(row) {
				return
			}
			i++
		}
	}
}

func (l *Ledger) dayIndex(day Date) (int, bool) {
	if !l.rng.Contains(day) {
		return 0, false
	}
	return Range{From: l.rng.From, To: day}.Len() - 1, true
}
