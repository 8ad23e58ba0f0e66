package finances

import (
	"testing"
	"time"
)

func TestStaticQuotesDaily(t *testing.T) {
	rng := Range{day(2025, time.March, 2), day(2025, time.March, 4)}
	s := NewStaticQuotes().
		SetPrice("VWRL", "GBp", day(2025, time.March, 1), 240). // outside rng
		SetPrice("VWRL", "GBp", day(2025, time.March, 3), 250)

	prices, currencies, err := s.Daily([]string{"VWRL", "GHOST"}, rng)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := prices["GHOST"]; ok {
		t.Error("unknown instruments must be absent, not empty")
	}
	if currencies["VWRL"] != "GBp" {
		t.Errorf("currency = %q, want GBp", currencies["VWRL"])
	}
	h := prices["VWRL"]
	if h.Len() != 1 {
		t.Fatalf("quotes outside the range must be clipped, got %d points", h.Len())
	}
	if v, ok := h.Get(day(2025, time.March, 3)); !ok || v != 250 {
		t.Errorf("quote = %v %v, want 250", v, ok)
	}
}

func TestStaticQuotesFxInverse(t *testing.T) {
	on := day(2025, time.March, 3)
	rng := Range{on, on}
	s := NewStaticQuotes().SetFx("USD", "GBP", on, 0.8)

	direct, err := s.FxDaily("USD", "GBP", rng)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := direct.Get(on); v != 0.8 {
		t.Errorf("direct rate = %v, want 0.8", v)
	}

	inverse, err := s.FxDaily("GBP", "USD", rng)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := inverse.Get(on); v != 1/0.8 {
		t.Errorf("inverse rate = %v, want %v", v, 1/0.8)
	}

	if _, err := s.FxDaily("EUR", "JPY", rng); err == nil {
		t.Error("expected an error for an unknown pair")
	}
}
