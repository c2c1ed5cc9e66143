package optifolio

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDays is the number of trading days used to annualize daily figures.
const TradingDays = 252

// DailyReturns converts a chronological price series into simple daily returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i]. Days with a zero previous
// price are kept at zero.
func DailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return returns
}

// MeanHistoricalReturn computes the compounded annual growth implied by a
// series of daily returns: prod(1+r)^(252/n) - 1.
func MeanHistoricalReturn(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	growth := 1.0
	for _, r := range returns {
		growth *= 1 + r
	}
	if growth <= 0 {
		// A wiped-out asset compounds to -100% a year.
		return -1
	}
	return math.Pow(growth, TradingDays/float64(len(returns))) - 1
}

// AnnualizedMeanReturn annualizes the arithmetic mean of daily returns.
func AnnualizedMeanReturn(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return stat.Mean(returns, nil) * TradingDays
}

// AnnualizedVolatility annualizes the standard deviation of daily returns.
func AnnualizedVolatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(TradingDays)
}

// alignedReturns builds the daily return series of every ticker with data,
// trimmed to a common length. Series are trimmed from the front so the most
// recent observations are kept.
func alignedReturns(t *Table) (tickers []string, matrix [][]float64) {
	tickers = t.Tickers()
	all := make([][]float64, 0, len(tickers))
	minLen := math.MaxInt
	kept := tickers[:0]
	for _, ticker := range tickers {
		r := DailyReturns(t.Series(ticker).Slice())
		if len(r) == 0 {
			continue
		}
		all = append(all, r)
		kept = append(kept, ticker)
		if len(r) < minLen {
			minLen = len(r)
		}
	}
	tickers = kept
	matrix = make([][]float64, len(all))
	for i, r := range all {
		matrix[i] = r[len(r)-minLen:]
	}
	return tickers, matrix
}
