// Package yahoo fetches historical adjusted-close prices and quotes from
// the Yahoo Finance chart API.
package yahoo

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"

	"github.com/mkarren/optifolio"
	"github.com/mkarren/optifolio/date"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client consumes the Yahoo Finance v8 chart API. Responses are cached on
// disk with a daily expiry, so repeated runs on the same day do not hit the
// provider again.
type Client struct {
	base string
	http *http.Client
}

// New returns a client against the public Yahoo Finance endpoint.
func New() *Client {
	return &Client{base: defaultBaseURL, http: newDailyCachingClient()}
}

// chart API response, see
// https://query1.finance.yahoo.com/v8/finance/chart/AAPL?interval=1d
//
//	{
//	  "chart": {
//	    "result": [ {
//	      "meta": { "regularMarketPrice": 227.63, ... },
//	      "timestamp": [ 1713792600, ... ],
//	      "indicators": {
//	        "quote":    [ { "close": [169.89, ...], ... } ],
//	        "adjclose": [ { "adjclose": [169.30, ...] } ]
//	      }
//	    } ],
//	    "error": null
//	  }
//	}
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Description) }

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []float64 `json:"close"`
		} `json:"quote"`
		Adjclose []struct {
			Adjclose []float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// closes returns the daily closing prices, preferring the split/dividend
// adjusted series when the API provides one.
func (r *chartResult) closes() []float64 {
	if len(r.Indicators.Adjclose) > 0 && len(r.Indicators.Adjclose[0].Adjclose) > 0 {
		return r.Indicators.Adjclose[0].Adjclose
	}
	if len(r.Indicators.Quote) > 0 {
		return r.Indicators.Quote[0].Close
	}
	return nil
}

// Fetch retrieves the adjusted closes of every ticker over the range.
//
// A ticker the provider does not know is logged and skipped, leaving it
// absent from the table; only transport failures are returned as errors.
func (c *Client) Fetch(tickers []string, r date.Range) (*optifolio.Table, error) {
	table := optifolio.NewTable()
	for _, ticker := range tickers {
		result, err := c.chart(ticker, fmt.Sprintf("period1=%d&period2=%d&interval=1d", r.From.Unix(), r.To.Add(1).Unix()))
		if err != nil {
			if _, ok := err.(*apiError); ok {
				log.Printf("warning: skipping %s: %v", ticker, err)
				continue
			}
			return nil, err
		}

		closes := result.closes()
		for i, ts := range result.Timestamp {
			if i >= len(closes) {
				break
			}
			price := closes[i]
			// the API reports missing days as nulls, which decode to zero
			if price == 0 || math.IsNaN(price) {
				continue
			}
			table.Append(ticker, date.FromUnix(ts), price)
		}
	}
	return table, nil
}

// chart performs a single chart API call and unwraps the response envelope.
func (c *Client) chart(ticker, query string) (*chartResult, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.base, url.PathEscape(ticker), query)

	var content chartResponse
	if err := jwget(c.http, addr, &content); err != nil {
		return nil, fmt.Errorf("failed to fetch data for %q: %w", ticker, err)
	}
	if content.Chart.Error != nil {
		return nil, content.Chart.Error
	}
	if len(content.Chart.Result) == 0 {
		return nil, &apiError{Code: "Not Found", Description: fmt.Sprintf("no chart data for %q", ticker)}
	}
	return &content.Chart.Result[0], nil
}

var _ optifolio.Provider = (*Client)(nil)
