package optifolio

import (
	"github.com/mkarren/optifolio/date"
)

// Table holds adjusted-close price histories for a set of tickers.
//
// Tickers keep their insertion order. A ticker the provider returned no data
// for is simply absent; callers are expected to skip it.
type Table struct {
	tickers []string
	series  map[string]*date.History[float64]
}

// NewTable returns a new empty price table.
func NewTable() *Table {
	return &Table{
		tickers: make([]string, 0),
		series:  make(map[string]*date.History[float64]),
	}
}

// Append records the adjusted close of ticker on a given day.
func (t *Table) Append(ticker string, on date.Date, price float64) {
	h, ok := t.series[ticker]
	if !ok {
		h = new(date.History[float64])
		t.series[ticker] = h
		t.tickers = append(t.tickers, ticker)
	}
	h.Append(on, price)
}

// Has reports whether the table holds any price for ticker.
func (t *Table) Has(ticker string) bool {
	h, ok := t.series[ticker]
	return ok && h.Len() > 0
}

// Series returns the price history for ticker, or nil.
func (t *Table) Series(ticker string) *date.History[float64] { return t.series[ticker] }

// Tickers returns the tickers with data, in insertion order.
func (t *Table) Tickers() []string {
	list := make([]string, 0, len(t.tickers))
	for _, ticker := range t.tickers {
		if t.Has(ticker) {
			list = append(list, ticker)
		}
	}
	return list
}

// IsEmpty reports whether no ticker has any price.
func (t *Table) IsEmpty() bool { return len(t.Tickers()) == 0 }

// Provider fetches adjusted-close prices for tickers over a date range.
//
// Implementations treat an unknown ticker as absent data, not as an error;
// only transport or provider failures are reported.
type Provider interface {
	Fetch(tickers []string, r date.Range) (*Table, error)
}
