package finances

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
)

// This file implements the QuoteProvider contract against the EODHD.com API.

// diskCache implements a simple disk cache for HTTP responses. The cache key
// includes today's date, so every entry expires at midnight: one network call
// per distinct URL per day, rerunning an analysis is free.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(os.TempDir(), key))
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// cachedClient returns a client whose responses expire daily.
func cachedClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// EODHD fetches daily prices and forex rates from eodhd.com. Instruments are
// declared up-front with their provider ticker and native currency, so the
// provider never guesses what a spreadsheet identifier means.
type EODHD struct {
	apiKey  string
	tickers map[string]string // instrument id -> eodhd ticker
	curs    map[string]string // instrument id -> native currency
	client  *http.Client
}

// NewEODHD creates a provider for the declared instruments.
func NewEODHD(apiKey string, instruments []InstrumentConfig) *EODHD {
	e := &EODHD{
		apiKey:  apiKey,
		tickers: make(map[string]string, len(instruments)),
		curs:    make(map[string]string, len(instruments)),
		client:  cachedClient(),
	}
	for _, ins := range instruments {
		e.tickers[ins.ID] = ins.Ticker
		e.curs[ins.ID] = ins.Currency
	}
	return e
}

// Daily implements QuoteProvider. Undeclared instruments are absent from the
// result, which downstream surfaces as a partial-data warning.
func (e *EODHD) Daily(ids []string, rng Range) (map[string]*History[float64], map[string]string, error) {
	prices := make(map[string]*History[float64], len(ids))
	currencies := make(map[string]string, len(ids))
	for _, id := range ids {
		ticker, ok := e.tickers[id]
		if !ok {
			log.Printf("instrument %q is not declared, skipping", id)
			continue
		}
		_, close, err := e.eod(ticker, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("could not fetch prices for %q (%s): %w", id, ticker, err)
		}
		prices[id] = close
		currencies[id] = e.curs[id]
	}
	return prices, currencies, nil
}

// FxDaily implements QuoteProvider using the provider's FOREX tickers.
// The feed's close price mirrors its open most of the time; the next day's
// open tracks the actual close better, so each open is shifted back one day.
func (e *EODHD) FxDaily(base, quote string, rng Range) (*History[float64], error) {
	ticker := fmt.Sprintf("%s%s.FOREX", base, quote)
	// Fetch one extra day so the shift does not truncate the range.
	open, _, err := e.eod(ticker, Range{From: rng.From, To: rng.To.Add(1)})
	if err != nil {
		return nil, err
	}
	close := &History[float64]{}
	for on, v := range open.Values() {
		close.Append(on.Add(-1), v)
	}
	if rate, err := lsTcIntraday(lsTcInstruments[base+quote]); err == nil {
		// Today's EOD rate is not published yet; the intraday quote stands in.
		close.Append(Today(), rate)
	}
	return clip(close, rng), nil
}

// eod returns the daily open and split-adjusted close prices for a ticker.
func (e *EODHD) eod(ticker string, rng Range) (open, close *History[float64], err error) {
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		ticker, e.apiKey, rng.From, rng.To)
	type info struct {
		Date  Date    `json:"date"`
		Close float64 `json:"adjusted_close"`
		Open  float64 `json:"open"`
	}
	content := make([]info, 0)
	if err := jwget(e.client, addr, &content); err != nil {
		return nil, nil, err
	}
	open, close = &History[float64]{}, &History[float64]{}
	for _, i := range content {
		open.Append(i.Date, i.Open)
		close.Append(i.Date, i.Close)
	}
	return open, close, nil
}

var _ QuoteProvider = (*EODHD)(nil)
