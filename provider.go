package finances

import "fmt"

// StaticQuotes is an in-memory QuoteProvider. It backs tests and offline
// runs, and is the reference for what the HTTP provider must return: absent
// days stay absent, they are never padded with zeros.
type StaticQuotes struct {
	prices     map[string]*History[float64]
	currencies map[string]string
	fx         map[string]*History[float64] // keyed base+quote
}

// NewStaticQuotes returns an empty in-memory provider.
func NewStaticQuotes() *StaticQuotes {
	return &StaticQuotes{
		prices:     make(map[string]*History[float64]),
		currencies: make(map[string]string),
		fx:         make(map[string]*History[float64]),
	}
}

// SetPrice records a daily closing price for an instrument in its native
// currency.
func (s *StaticQuotes) SetPrice(id, currency string, on Date, price float64) *StaticQuotes {
	h, ok := s.prices[id]
	if !ok {
		h = &History[float64]{}
		s.prices[id] = h
	}
	h.Append(on, price)
	s.currencies[id] = currency
	return s
}

// SetFx records a daily base→quote conversion rate.
func (s *StaticQuotes) SetFx(base, quote string, on Date, rate float64) *StaticQuotes {
	key := base + quote
	h, ok := s.fx[key]
	if !ok {
		h = &History[float64]{}
		s.fx[key] = h
	}
	h.Append(on, rate)
	return s
}

// Daily implements QuoteProvider. Unknown instruments are absent from the
// result.
func (s *StaticQuotes) Daily(ids []string, rng Range) (map[string]*History[float64], map[string]string, error) {
	prices := make(map[string]*History[float64], len(ids))
	currencies := make(map[string]string, len(ids))
	for _, id := range ids {
		h, ok := s.prices[id]
		if !ok {
			continue
		}
		prices[id] = clip(h, rng)
		currencies[id] = s.currencies[id]
	}
	return prices, currencies, nil
}

// FxDaily implements QuoteProvider. When the direct pair is unknown, the
// inverse pair is tried and inverted.
func (s *StaticQuotes) FxDaily(base, quote string, rng Range) (*History[float64], error) {
	if h, ok := s.fx[base+quote]; ok {
		return clip(h, rng), nil
	}
	if h, ok := s.fx[quote+base]; ok {
		inverted := &History[float64]{}
		for on, v := range h.Values() {
			if rng.Contains(on) && v != 0 {
				inverted.Append(on, 1/v)
			}
		}
		return inverted, nil
	}
	return nil, fmt.Errorf("no exchange rate data for %s%s", base, quote)
}

func clip(h *History[float64], rng Range) *History[float64] {
	clipped := &History[float64]{}
	for on, v := range h.Values() {
		if rng.Contains(on) {
			clipped.Append(on, v)
		}
	}
	return clipped
}

var _ QuoteProvider = (*StaticQuotes)(nil)
