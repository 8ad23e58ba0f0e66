package finances

import (
	"testing"
	"time"
)

// ledgerOf builds a single-account ledger from sparse (date, balance) points.
func ledgerOf(t *testing.T, rng Range, points map[Date]float64) *Ledger {
	t.Helper()
	a := current("only")
	var obs []Observation
	seq := int64(1)
	for on, v := range points {
		obs = append(obs, ob(on, seq, v))
		seq++
	}
	a.SetObservations(obs)
	list, err := NewAccountList(a)
	if err != nil {
		t.Fatal(err)
	}
	ledger, err := list.CalculateBalances(rng)
	if err != nil {
		t.Fatal(err)
	}
	return ledger
}

func TestMonthlyDiffs(t *testing.T) {
	// December closes at 1000, January at 1200, February at 1150.
	ledger := ledgerOf(t,
		Range{day(2024, time.December, 1), day(2025, time.February, 28)},
		map[Date]float64{
			day(2024, time.December, 1):  800,
			day(2024, time.December, 20): 1000,
			day(2025, time.January, 15):  1200,
			day(2025, time.February, 10): 1150,
		})

	diffs := MonthlyDiffs(ledger)
	if len(diffs) != 2 {
		t.Fatalf("MonthlyDiffs() = %d entries, want 2 (first month dropped)", len(diffs))
	}

	jan := diffs[0]
	if jan.Year != 2025 || jan.Month != time.January {
		t.Fatalf("first entry is %d-%v, want 2025-January", jan.Year, jan.Month)
	}
	// January against the prior December: continuous across the year boundary.
	if !jan.Total.Equal(dec(1200)) || !jan.Diff.Equal(dec(200)) {
		t.Errorf("January total=%s diff=%s, want 1200 and 200", jan.Total, jan.Diff)
	}

	feb := diffs[1]
	if !feb.Total.Equal(dec(1150)) || !feb.Diff.Equal(dec(-50)) {
		t.Errorf("February total=%s diff=%s, want 1150 and -50", feb.Total, feb.Diff)
	}
}

// The closing value of a month is the last daily total, not an average.
func TestMonthlyClosingIsLastValue(t *testing.T) {
	ledger := ledgerOf(t,
		Range{day(2025, time.March, 1), day(2025, time.April, 30)},
		map[Date]float64{
			day(2025, time.March, 1):  100,
			day(2025, time.March, 31): 900,
			day(2025, time.April, 2):  300,
		})
	diffs := MonthlyDiffs(ledger)
	if len(diffs) != 1 {
		t.Fatalf("MonthlyDiffs() = %d entries, want 1", len(diffs))
	}
	apr := diffs[0]
	// April closes at 300; March closed at 900 on its last day.
	if !apr.Total.Equal(dec(300)) || !apr.Diff.Equal(dec(-600)) {
		t.Errorf("April total=%s diff=%s, want 300 and -600", apr.Total, apr.Diff)
	}
}

func TestMonthlyDiffsTooShort(t *testing.T) {
	ledger := ledgerOf(t,
		Range{day(2025, time.March, 1), day(2025, time.March, 20)},
		map[Date]float64{day(2025, time.March, 1): 100})
	if diffs := MonthlyDiffs(ledger); diffs != nil {
		t.Errorf("MonthlyDiffs() over one month = %v, want nil", diffs)
	}
}

func TestYearlyDiffs(t *testing.T) {
	ledger := ledgerOf(t,
		Range{day(2024, time.November, 1), day(2025, time.February, 28)},
		map[Date]float64{
			day(2024, time.November, 1):  500,
			day(2024, time.December, 10): 700,
			day(2025, time.January, 5):   800,
			day(2025, time.February, 5):  900,
		})
	years := YearlyDiffs(ledger)
	if len(years) != 2 {
		t.Fatalf("YearlyDiffs() = %d years, want 2", len(years))
	}
	// Most recent year first.
	if years[0].Year != 2025 || years[1].Year != 2024 {
		t.Fatalf("year order = %d, %d, want 2025, 2024", years[0].Year, years[1].Year)
	}
	// Months chronological within the year.
	if got := years[0].Months; len(got) != 2 || got[0].Month != time.January || got[1].Month != time.February {
		t.Errorf("2025 months = %v, want January then February", got)
	}
	// 2024 keeps only December: November is the dropped first month.
	if got := years[1].Months; len(got) != 1 || got[0].Month != time.December {
		t.Errorf("2024 months = %v, want December only", got)
	}
}
