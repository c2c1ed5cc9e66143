package renderer

import (
	"fmt"
	"strings"

	"github.com/mkarren/optifolio"
)

// reportCurrency is the display currency of the report. The provider quotes
// US listings, and investment amounts are taken as dollars.
const reportCurrency = "USD"

// AllocationRow is one per-ticker line of the report.
type AllocationRow struct {
	Ticker     string
	Weight     optifolio.Percent
	Allocation optifolio.Money
	Price      string
	AvgReturn  optifolio.Percent
	Volatility optifolio.Percent
}

// ProjectionRow is one compounding horizon of the report.
type ProjectionRow struct {
	Horizon string
	Value   optifolio.Money
	Gain    optifolio.Money
}

// Prediction is the view rendered by PredictionMarkdown.
type Prediction struct {
	Tickers         string
	Period          string
	ExpectedReturn  optifolio.Percent
	Volatility      optifolio.Percent
	Sharpe          float64
	RiskLevel       string
	Diversification optifolio.Percent
	Investment      optifolio.Money
	Rows            []AllocationRow
	Projections     []ProjectionRow
	Recommendations []string
}

// NewPrediction builds the report view from a prediction. Rows follow the
// requested ticker order.
func NewPrediction(p *optifolio.Prediction) *Prediction {
	o := p.Optimization

	rows := make([]AllocationRow, 0, len(p.Stocks))
	for _, ticker := range o.Tickers {
		analysis, ok := p.Stocks[ticker]
		if !ok {
			continue
		}
		rows = append(rows, AllocationRow{
			Ticker:     ticker,
			Weight:     optifolio.Percent(analysis.OptimalWeight * 100),
			Allocation: optifolio.NewMoneyFromFloat(analysis.RecommendedAllocation, reportCurrency),
			Price:      fmt.Sprintf("%.2f", analysis.CurrentPrice),
			AvgReturn:  optifolio.Percent(analysis.AvgReturn),
			Volatility: optifolio.Percent(analysis.Volatility),
		})
	}

	pj := p.Projections
	investment := optifolio.NewMoneyFromFloat(pj.InitialInvestment, reportCurrency)
	p1 := optifolio.NewMoneyFromFloat(pj.Projected1Year, reportCurrency)
	p3 := optifolio.NewMoneyFromFloat(pj.Projected3Year, reportCurrency)
	p5 := optifolio.NewMoneyFromFloat(pj.Projected5Year, reportCurrency)
	projections := []ProjectionRow{
		{"1 year", p1, p1.Sub(investment)},
		{"3 years", p3, p3.Sub(investment)},
		{"5 years", p5, p5.Sub(investment)},
	}

	return &Prediction{
		Tickers:         strings.Join(o.Tickers, ", "),
		Period:          o.Period.String(),
		ExpectedReturn:  optifolio.Percent(o.ExpectedReturn),
		Volatility:      optifolio.Percent(o.Volatility),
		Sharpe:          o.Sharpe,
		RiskLevel:       p.Risk.RiskLevel,
		Diversification: optifolio.Percent(p.Risk.DiversificationScore),
		Investment:      investment,
		Rows:            rows,
		Projections:     projections,
		Recommendations: p.Recommendations,
	}
}
