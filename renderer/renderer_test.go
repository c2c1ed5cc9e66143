package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/mkarren/optifolio"
	"github.com/mkarren/optifolio/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func fixture() *optifolio.Prediction {
	return &optifolio.Prediction{
		Optimization: &optifolio.Optimization{
			Weights:        map[string]float64{"AAPL": 0.62, "MSFT": 0.38},
			ExpectedReturn: 18.42,
			Volatility:     16.8,
			Sharpe:         0.98,
			Tickers:        []string{"AAPL", "MSFT", "GHOST"},
			Period:         date.Range{From: date.New(2023, time.January, 2), To: date.New(2024, time.December, 31)},
		},
		Stocks: map[string]optifolio.StockAnalysis{
			"AAPL": {CurrentPrice: 227.63, AvgReturn: 21.3, Volatility: 22.1, OptimalWeight: 0.62, RecommendedAllocation: 6200},
			"MSFT": {CurrentPrice: 410.5, AvgReturn: 15.4, Volatility: 18.9, OptimalWeight: 0.38, RecommendedAllocation: 3800},
		},
		Projections: optifolio.Projections{
			InitialInvestment: 10000,
			Projected1Year:    11842, Gain1Year: 1842,
			Projected3Year: 16604.49, Gain3Year: 6604.49,
			Projected5Year: 23281.09, Gain5Year: 13281.09,
		},
		Risk: optifolio.RiskAssessment{RiskLevel: "Medium", DiversificationScore: 66.67},
		Recommendations: []string{
			"Portfolio is concentrated in one asset (62.0%). Consider diversifying.",
			"AAPL: High allocation recommended (62.0%). Strong performer.",
		},
	}
}

func TestNewPrediction(t *testing.T) {
	v := NewPrediction(fixture())

	if v.Tickers != "AAPL, MSFT, GHOST" {
		t.Errorf("tickers = %q", v.Tickers)
	}
	// GHOST has no analysis, so it yields no allocation row.
	if len(v.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(v.Rows))
	}
	if v.Rows[0].Ticker != "AAPL" || v.Rows[1].Ticker != "MSFT" {
		t.Errorf("rows out of order: %v, %v", v.Rows[0].Ticker, v.Rows[1].Ticker)
	}
	if !v.Rows[0].Weight.Equal(optifolio.Percent(62)) {
		t.Errorf("weight = %v, want 62%%", v.Rows[0].Weight)
	}
	if got, want := v.Rows[0].Allocation.String(), "$6,200.00"; got != want {
		t.Errorf("allocation = %q, want %q", got, want)
	}
	if v.Investment.IsZero() {
		t.Error("investment must not be zero")
	}
	if len(v.Projections) != 3 {
		t.Fatalf("got %d projection rows, want 3", len(v.Projections))
	}
	// gains are derived from the projected values, so the row must match the
	// precomputed figure
	if want := optifolio.NewMoneyFromFloat(13281.09, "USD"); !v.Projections[2].Gain.Equals(want) {
		t.Errorf("5 year gain = %v, want %v", v.Projections[2].Gain, want)
	}
}

func TestPredictionMarkdown(t *testing.T) {
	md := PredictionMarkdown(NewPrediction(fixture()))

	if strings.Contains(md, "error") && strings.Contains(md, "template") {
		t.Fatalf("template failure leaked into the report:\n%s", md)
	}

	// the report is one H1 followed by the three H2 sections
	var h1, h2 []string
	source := []byte(md)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	if err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			seg := h.Lines().At(0)
			title := string(seg.Value(source))
			switch h.Level {
			case 1:
				h1 = append(h1, title)
			case 2:
				h2 = append(h2, title)
			}
		}
		return ast.WalkContinue, nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(h1) != 1 || h1[0] != "Portfolio Prediction: AAPL, MSFT, GHOST" {
		t.Errorf("title headings = %q", h1)
	}
	want := []string{"Optimal Allocation of $10,000.00", "Projections", "Recommendations"}
	if len(h2) != len(want) {
		t.Fatalf("section headings = %q, want %q", h2, want)
	}
	for i := range want {
		if h2[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, h2[i], want[i])
		}
	}

	for _, line := range []string{
		"| AAPL | 62.00% | $6,200.00 | 227.63 | +21.30% | 22.10% |",
		"| MSFT | 38.00% | $3,800.00 | 410.50 | +15.40% | 18.90% |",
		"| 1 year | $11,842.00 | $1,842.00 |",
		"- AAPL: High allocation recommended (62.0%). Strong performer.",
	} {
		if !strings.Contains(md, line) {
			t.Errorf("report is missing %q:\n%s", line, md)
		}
	}
}
