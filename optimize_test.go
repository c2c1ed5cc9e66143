package optifolio

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mkarren/optifolio/date"
)

func testPeriod() date.Range {
	return date.Range{From: date.New(2024, time.January, 1), To: date.New(2024, time.December, 31)}
}

func TestOptimizeWeightsSumToOne(t *testing.T) {
	table := newTestTable(map[string][]float64{
		"AAA": {100, 101, 103, 102, 105, 104, 107, 106, 109, 111},
		"BBB": {50, 50.2, 50.1, 50.4, 50.3, 50.6, 50.5, 50.8, 50.7, 51},
		"CCC": {200, 198, 203, 201, 207, 204, 210, 206, 213, 209},
	})
	tickers := []string{"AAA", "BBB", "CCC"}

	result, err := Optimize(table, tickers, testPeriod(), DefaultRiskFreeRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0.0
	for ticker, w := range result.Weights {
		if w < 0 || w > 1 {
			t.Errorf("weight for %s = %v, want within [0,1]", ticker, w)
		}
		sum += w
	}
	// CleanWeights rounds to 5 decimals, so allow rounding slack.
	if math.Abs(sum-1) > 1e-4 {
		t.Errorf("weights sum to %v, want 1 within rounding tolerance", sum)
	}

	if result.Volatility < 0 {
		t.Errorf("volatility = %v, want >= 0", result.Volatility)
	}
	if len(result.Tickers) != 3 {
		t.Errorf("requested tickers must be echoed back, got %v", result.Tickers)
	}
}

func TestOptimizeNoData(t *testing.T) {
	testCases := []struct {
		name  string
		table *Table
	}{
		{"nil table", nil},
		{"empty table", NewTable()},
		{"only unusable series", newTestTable(map[string][]float64{"LONE": {42}})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Optimize(tc.table, []string{"AAA"}, testPeriod(), DefaultRiskFreeRate)
			if !errors.Is(err, ErrNoData) {
				t.Errorf("got error %v, want ErrNoData", err)
			}
		})
	}
}

func TestOptimizationJSON(t *testing.T) {
	table := newTestTable(map[string][]float64{
		"AAPL": {100, 101, 102, 103, 104},
	})
	// MISSING has no data: it is echoed in tickers but not in the weights.
	result, err := Optimize(table, []string{"AAPL", "MISSING"}, testPeriod(), DefaultRiskFreeRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)

	// field order is part of the report contract
	fields := []string{"optimal_weights", "expected_annual_return", "annual_volatility", "sharpe_ratio", "tickers", "analysis_period"}
	last := -1
	for _, field := range fields {
		i := strings.Index(doc, `"`+field+`"`)
		if i < 0 {
			t.Fatalf("field %q missing in %s", field, doc)
		}
		if i < last {
			t.Errorf("field %q out of order in %s", field, doc)
		}
		last = i
	}

	if !strings.Contains(doc, `"optimal_weights":{"AAPL":1}`) {
		t.Errorf("single asset must carry the full weight, got %s", doc)
	}
	if strings.Contains(doc, `"MISSING":`) {
		t.Errorf("ticker without data must not appear in weights, got %s", doc)
	}
	if !strings.Contains(doc, `"start":"2024-01-01"`) || !strings.Contains(doc, `"end":"2024-12-31"`) {
		t.Errorf("analysis period must carry the range bounds, got %s", doc)
	}
}

func TestRound2(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{1.004, 1.0},
		{-1.005, -1.01},
		{12.3456, 12.35},
		{0, 0},
	}
	for _, tc := range testCases {
		if got := round2(tc.in); got != tc.want {
			t.Errorf("round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
