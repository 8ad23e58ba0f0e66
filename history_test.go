package finances

import (
	"testing"
	"time"
)

func TestHistoryAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := day(2025, time.July, 1), "jul"
	d2, v2 := day(2024, time.July, 1), "last jul"

	// Append out of order and check the history keeps itself sorted.
	h.Append(d1, v1)
	h.Append(d2, v2)

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if first, v := h.First(); first != d2 || v != v2 {
		t.Errorf("First() = %v %q, want %v %q", first, v, d2, v2)
	}
	if latest, v := h.Latest(); latest != d1 || v != v1 {
		t.Errorf("Latest() = %v %q, want %v %q", latest, v, d1, v1)
	}

	// Appending on an existing day overwrites.
	h.Append(d1, "overwritten")
	if h.Len() != 2 {
		t.Fatalf("overwrite grew the history: Len() = %d", h.Len())
	}
	if v, ok := h.Get(d1); !ok || v != "overwritten" {
		t.Errorf("Get(%v) = %q %v, want overwritten", d1, v, ok)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(day(2025, time.March, 10), 100)
	h.Append(day(2025, time.March, 20), 200)

	tests := []struct {
		name string
		on   Date
		want float64
		ok   bool
	}{
		{"before first point", day(2025, time.March, 9), 0, false},
		{"on first point", day(2025, time.March, 10), 100, true},
		{"in the gap", day(2025, time.March, 15), 100, true},
		{"on second point", day(2025, time.March, 20), 200, true},
		{"after last point", day(2025, time.April, 1), 200, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(tt.on)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ValueAsOf(%v) = %v %v, want %v %v", tt.on, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHistoryMerge(t *testing.T) {
	h := new(History[Quantity])
	on := day(2025, time.February, 3)
	h.Merge(on, Q(10), Quantity.Add)
	h.Merge(on, Q(-4), Quantity.Add)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, _ := h.Get(on); !v.Equal(Q(6)) {
		t.Errorf("merged value = %s, want 6", v)
	}
}
