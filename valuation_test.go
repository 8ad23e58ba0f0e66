package finances

import (
	"testing"
	"time"
)

func feb(d int) Date { return day(2025, time.February, d) }

func TestPriceHoldings(t *testing.T) {
	txs := []ShareTransaction{
		{Date: feb(3), Instrument: "VWRL", Shares: Q(10)},
		{Date: feb(7), Instrument: "VWRL", Shares: Q(-4)},
	}
	positions, err := BuildPositions(txs, Range{feb(3), feb(8)})
	if err != nil {
		t.Fatal(err)
	}
	quotes := NewStaticQuotes().SetPrice("VWRL", "GBP", feb(3), 2)

	p, err := PriceHoldings(positions, quotes, "GBP")
	if err != nil {
		t.Fatalf("PriceHoldings() error = %v", err)
	}
	if len(p.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", p.Warnings())
	}

	// 10 shares at a flat £2 until the sale, then 6 shares.
	want := []float64{20, 20, 20, 20, 12, 12}
	i := 0
	for on := range p.Range().Days() {
		v, ok := p.Value("VWRL", on)
		if !ok {
			t.Fatalf("Value(VWRL, %v) unavailable", on)
		}
		if !v.Equal(dec(want[i])) {
			t.Errorf("Value(VWRL, %v) = %s, want %v", on, v, want[i])
		}
		balance, _ := p.Balance(on)
		if !balance.Equal(v) {
			t.Errorf("Balance(%v) = %s, want the single column %s", on, balance, v)
		}
		i++
	}
}

// A 250 GBp quote is £2.50: pence rescaling is a unit correction, not an FX
// conversion.
func TestPriceHoldingsPence(t *testing.T) {
	txs := []ShareTransaction{{Date: feb(3), Instrument: "VWRL", Shares: Q(1)}}
	positions, err := BuildPositions(txs, Range{feb(3), feb(3)})
	if err != nil {
		t.Fatal(err)
	}
	quotes := NewStaticQuotes().SetPrice("VWRL", "GBp", feb(3), 250)

	p, err := PriceHoldings(positions, quotes, "GBP")
	if err != nil {
		t.Fatal(err)
	}
	v, ok := p.Value("VWRL", feb(3))
	if !ok || !v.Equal(dec(2.5)) {
		t.Errorf("Value = %s %v, want 2.5", v, ok)
	}
	if len(p.Warnings()) != 0 {
		t.Errorf("pence rescaling must not need FX data, got warnings %v", p.Warnings())
	}
}

func TestPriceHoldingsFx(t *testing.T) {
	txs := []ShareTransaction{{Date: feb(3), Instrument: "AAPL", Shares: Q(2)}}
	positions, err := BuildPositions(txs, Range{feb(3), feb(4)})
	if err != nil {
		t.Fatal(err)
	}
	quotes := NewStaticQuotes().
		SetPrice("AAPL", "USD", feb(3), 100).
		SetFx("USD", "GBP", feb(3), 0.8)

	p, err := PriceHoldings(positions, quotes, "GBP")
	if err != nil {
		t.Fatal(err)
	}
	// 2 shares × $100 × 0.8 = £160.
	v, ok := p.Value("AAPL", feb(3))
	if !ok || !v.Equal(dec(160)) {
		t.Errorf("Value = %s %v, want 160", v, ok)
	}
	// The rate is carried forward over the FX gap.
	v, ok = p.Value("AAPL", feb(4))
	if !ok || !v.Equal(dec(160)) {
		t.Errorf("Value next day = %s %v, want 160", v, ok)
	}
}

// Days held before the first available quote are unavailable, excluded from
// the balance and reported, never counted as zero.
func TestPriceHoldingsPartialData(t *testing.T) {
	txs := []ShareTransaction{
		{Date: feb(1), Instrument: "VWRL", Shares: Q(10)},
		{Date: feb(1), Instrument: "AAPL", Shares: Q(1)},
	}
	positions, err := BuildPositions(txs, Range{feb(1), feb(4)})
	if err != nil {
		t.Fatal(err)
	}
	quotes := NewStaticQuotes().
		SetPrice("VWRL", "GBP", feb(3), 2).
		SetPrice("AAPL", "GBP", feb(1), 100)

	p, err := PriceHoldings(positions, quotes, "GBP")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := p.Value("VWRL", feb(2)); ok {
		t.Error("Value before the first quote must be unavailable")
	}
	if v, ok := p.Value("VWRL", feb(3)); !ok || !v.Equal(dec(20)) {
		t.Errorf("Value on first quote day = %s %v, want 20", v, ok)
	}

	// The balance on an unpriceable day sums only the available column.
	balance, _ := p.Balance(feb(2))
	if !balance.Equal(dec(100)) {
		t.Errorf("Balance(%v) = %s, want 100 (AAPL only)", feb(2), balance)
	}

	warnings := p.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("Warnings() = %v, want exactly one", warnings)
	}
	w, ok := warnings[0].(*PartialMarketDataWarning)
	if !ok {
		t.Fatalf("warning type = %T, want PartialMarketDataWarning", warnings[0])
	}
	if w.Instrument != "VWRL" {
		t.Errorf("warning instrument = %q, want VWRL", w.Instrument)
	}
	if want := (Range{feb(1), feb(2)}); w.Days != want {
		t.Errorf("warning days = %v, want %v", w.Days, want)
	}
}

func TestPriceHoldingsNoData(t *testing.T) {
	txs := []ShareTransaction{{Date: feb(3), Instrument: "GHOST", Shares: Q(1)}}
	positions, err := BuildPositions(txs, Range{feb(3), feb(3)})
	if err != nil {
		t.Fatal(err)
	}
	p, err := PriceHoldings(positions, NewStaticQuotes(), "GBP")
	if err != nil {
		t.Fatalf("an unknown instrument must warn, not fail: %v", err)
	}
	if _, ok := p.Value("GHOST", feb(3)); ok {
		t.Error("Value of an unquoted instrument must be unavailable")
	}
	if len(p.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want one", p.Warnings())
	}
}

func TestObservationsNumbering(t *testing.T) {
	txs := []ShareTransaction{{Date: feb(3), Instrument: "VWRL", Shares: Q(1)}}
	positions, err := BuildPositions(txs, Range{feb(3), feb(6)})
	if err != nil {
		t.Fatal(err)
	}
	quotes := NewStaticQuotes().SetPrice("VWRL", "GBP", feb(3), 2)
	p, err := PriceHoldings(positions, quotes, "GBP")
	if err != nil {
		t.Fatal(err)
	}
	obs := p.Observations()
	if len(obs) != 4 {
		t.Fatalf("Observations() = %d rows, want 4", len(obs))
	}
	for i, o := range obs {
		if o.Seq != int64(i+1) {
			t.Errorf("row %d has seq %d, want %d", i, o.Seq, i+1)
		}
	}
}

// The valued portfolio joins the merged ledger as the Holdings column.
func TestHoldingsInLedger(t *testing.T) {
	a := current("monzo")
	a.SetObservations([]Observation{ob(feb(1), 1, 100)})
	list, err := NewAccountList(a)
	if err != nil {
		t.Fatal(err)
	}

	txs := []ShareTransaction{{Date: feb(3), Instrument: "VWRL", Shares: Q(10)}}
	positions, err := BuildPositions(txs, Range{feb(3), feb(5)})
	if err != nil {
		t.Fatal(err)
	}
	quotes := NewStaticQuotes().SetPrice("VWRL", "GBP", feb(3), 2)
	p, err := PriceHoldings(positions, quotes, "GBP")
	if err != nil {
		t.Fatal(err)
	}
	if err := list.AttachHoldings(p, "GBP"); err != nil {
		t.Fatal(err)
	}

	ledger, err := list.CalculateBalances(Range{feb(1), feb(5)})
	if err != nil {
		t.Fatal(err)
	}
	holdings, err := ledger.Balance(HoldingsAccountID, feb(4))
	if err != nil {
		t.Fatal(err)
	}
	if !holdings.Equal(dec(20)) {
		t.Errorf("Holdings column = %s, want 20", holdings)
	}
	total, _ := ledger.Total(feb(4))
	if !total.Equal(dec(120)) {
		t.Errorf("Total = %s, want 120", total)
	}
}
