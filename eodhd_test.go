package finances

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// Undeclared instruments are skipped without touching the network.
func TestEODHDUndeclaredInstrument(t *testing.T) {
	e := NewEODHD("demo", []InstrumentConfig{})
	rng := Range{day(2025, time.March, 1), day(2025, time.March, 7)}

	prices, currencies, err := e.Daily([]string{"GHOST"}, rng)
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if len(prices) != 0 || len(currencies) != 0 {
		t.Errorf("Daily() = %v %v, want empty maps", prices, currencies)
	}
}

// closeTracker wraps a response body and records whether it was closed.
type closeTracker struct {
	io.Reader
	closed bool
}

func (b *closeTracker) Close() error { b.closed = true; return nil }

// stubTransport serves a canned status and body for every request.
type stubTransport struct {
	status int
	body   *closeTracker
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Status:     http.StatusText(s.status),
		Body:       s.body,
		Request:    req,
	}, nil
}

func TestJwgetClosesBody(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{"ok", 200, `{"close": 1.5}`, false},
		{"not found", 404, "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := &stubTransport{status: c.status, body: &closeTracker{Reader: strings.NewReader(c.body)}}
			client := &http.Client{Transport: tr}

			var data map[string]float64
			err := jwget(client, "http://example.com/api/eod/VWRL.LSE", &data)
			if (err != nil) != c.wantErr {
				t.Fatalf("jwget() error = %v, wantErr %v", err, c.wantErr)
			}
			if !tr.body.closed {
				t.Errorf("response body left open")
			}
			if !c.wantErr && data["close"] != 1.5 {
				t.Errorf("jwget() decoded %v, want close=1.5", data)
			}
		})
	}
}

func TestNewEODHDDeclarations(t *testing.T) {
	e := NewEODHD("demo", []InstrumentConfig{
		{ID: "VWRL", Ticker: "VWRL.LSE", Currency: "GBp"},
	})
	if e.tickers["VWRL"] != "VWRL.LSE" || e.curs["VWRL"] != "GBp" {
		t.Errorf("declarations not indexed: %v %v", e.tickers, e.curs)
	}
}
