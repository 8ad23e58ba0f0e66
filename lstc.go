package finances

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// lsTcInstruments maps currency pairs to the ls-tc.de chart instrument ids
// used for intraday rates. EOD feeds publish with a day's delay; these fill
// in today's rate.
var lsTcInstruments = map[string]string{
	"USDGBP": "2An0s",
	"EURGBP": "2Amqa",
	"USDEUR": "349938",
}

// lsTcIntraday returns the latest intraday rate from the ls-tc chart feed.
//
// The payload nests the series deep in chart-widget structure; a jsonpath
// query keeps the extraction to one line instead of a ladder of type
// assertions.
func lsTcIntraday(instrumentID string) (float64, error) {
	if instrumentID == "" {
		return math.NaN(), fmt.Errorf("no intraday instrument declared")
	}
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=" +
		instrumentID + "&series=intraday&type=mini"
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error fetching intraday %q: %w", instrumentID, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error extracting %q from intraday %q: %w", path, instrumentID, err)
	}
	// jsonpath may return a list of one answer or a single answer; keep the
	// first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("intraday %q: %v is not a number", instrumentID, jval)
	}
	return val, nil
}
