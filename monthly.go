package finances

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyDiff is one month's closing total and its change versus the previous
// calendar month. The difference is continuous across year boundaries:
// January is diffed against the prior December, never reset.
type MonthlyDiff struct {
	Year  int
	Month time.Month
	Total decimal.Decimal // last known daily total within the month
	Diff  decimal.Decimal
}

// MonthlyDiffs derives the month-over-month series from the merged ledger's
// Total column: the last observed total in each month is that month's closing
// total, and each entry's Diff is the first difference against the previous
// entry. The first month has no prior month to diff against and is dropped.
func MonthlyDiffs(l *Ledger) []MonthlyDiff {
	type month struct {
		year int
		m    time.Month
	}
	var order []month
	closing := make(map[month]decimal.Decimal)
	for row := range l.Rows() {
		k := month{row.Date.Year(), row.Date.Month()}
		if _, seen := closing[k]; !seen {
			order = append(order, k)
		}
		// rows come in chronological order, the last one of the month sticks.
		closing[k] = row.Total
	}
	if len(order) < 2 {
		return nil
	}
	diffs := make([]MonthlyDiff, 0, len(order)-1)
	for i := 1; i < len(order); i++ {
		k, prev := order[i], order[i-1]
		diffs = append(diffs, MonthlyDiff{
			Year:  k.year,
			Month: k.m,
			Total: closing[k],
			Diff:  closing[k].Sub(closing[prev]),
		})
	}
	return diffs
}

// YearlyDiffs groups the monthly series by calendar year for presentation.
// Years are sorted descending (most recent first, the way the dashboard
// shows them); months within a year stay chronological. Partial years are
// fine: a list spanning half a year produces that year's available months.
func YearlyDiffs(l *Ledger) []YearDiffs {
	byYear := make(map[int][]MonthlyDiff)
	for _, d := range MonthlyDiffs(l) {
		byYear[d.Year] = append(byYear[d.Year], d)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	slices.Sort(years)
	slices.Reverse(years)
	grouped := make([]YearDiffs, 0, len(years))
	for _, y := range years {
		grouped = append(grouped, YearDiffs{Year: y, Months: byYear[y]})
	}
	return grouped
}

// YearDiffs is one presentation year of the monthly series.
type YearDiffs struct {
	Year   int
	Months []MonthlyDiff // chronological within the year
}
