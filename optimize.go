package optifolio

import (
	"encoding/json"
	"errors"

	"github.com/mkarren/optifolio/date"
	"github.com/shopspring/decimal"
)

// LookbackDays is the default analysis window: two years of calendar days.
const LookbackDays = 730

// ErrNoData is reported when the provider returned no usable price series.
var ErrNoData = errors.New("no data available for the given tickers")

// Optimization is the result of a maximum Sharpe ratio optimization.
//
// ExpectedReturn and Volatility are annualized percentages, rounded to two
// decimals like every scalar this tool emits.
type Optimization struct {
	Weights        map[string]float64
	ExpectedReturn float64
	Volatility     float64
	Sharpe         float64
	Tickers        []string
	Period         date.Range
}

// Optimize computes the maximum Sharpe ratio portfolio over the price table.
//
// tickers is the requested list; tickers absent from the table are excluded
// from the optimization. An empty table yields ErrNoData.
func Optimize(table *Table, tickers []string, period date.Range, riskFree float64) (*Optimization, error) {
	if table == nil || table.IsEmpty() {
		return nil, ErrNoData
	}

	kept, matrix := alignedReturns(table)
	if len(kept) == 0 {
		return nil, ErrNoData
	}

	mu := make([]float64, len(kept))
	for i, series := range matrix {
		mu[i] = MeanHistoricalReturn(series)
	}
	cov := SampleCov(matrix)

	ef, err := NewEfficientFrontier(kept, mu, cov, riskFree)
	if err != nil {
		return nil, err
	}
	weights := ef.MaxSharpe()
	ret, vol, sharpe := ef.PortfolioPerformance(weights)

	return &Optimization{
		Weights:        ef.CleanWeights(weights),
		ExpectedReturn: round2(ret * 100),
		Volatility:     round2(vol * 100),
		Sharpe:         round2(sharpe),
		Tickers:        tickers,
		Period:         period,
	}, nil
}

// MaxWeight returns the largest single-asset weight.
func (o *Optimization) MaxWeight() float64 {
	max := 0.0
	for _, w := range o.Weights {
		if w > max {
			max = w
		}
	}
	return max
}

// MarshalJSON renders the optimization with a stable, report-friendly field
// order.
func (o *Optimization) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("optimal_weights", o.Weights)
	w.Append("expected_annual_return", o.ExpectedReturn)
	w.Append("annual_volatility", o.Volatility)
	w.Append("sharpe_ratio", o.Sharpe)
	w.Append("tickers", o.Tickers)
	w.Append("analysis_period", struct {
		Start date.Date `json:"start"`
		End   date.Date `json:"end"`
	}{o.Period.From, o.Period.To})
	return w.MarshalJSON()
}

var _ json.Marshaler = (*Optimization)(nil)

// round2 rounds half away from zero to two decimals, the convention of every
// scalar emitted in reports.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
