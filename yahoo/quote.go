package yahoo

import (
	"fmt"
	"math"

	"github.com/PaesslerAG/jsonpath"
)

// Quote returns the latest regular market price for a ticker.
//
// It reads the chart meta object rather than decoding the whole series: the
// meta carries the live price even when the daily candles lag.
func (c *Client) Quote(ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.base, ticker)

	var jobj any
	if err := jwget(c.http, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", ticker, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", ticker, path, "not a float", jval)
	}
	return val, nil
}
