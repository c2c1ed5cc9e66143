package optifolio

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mkarren/optifolio/date"
)

// Thresholds of the recommendation heuristics. They are business rules
// carried over as-is, not calibrated quantities.
const (
	sharpeExcellent = 1.5
	sharpeGood      = 1.0

	// Annualized volatility bands, in percent.
	volatilityHigh   = 25.0
	volatilityMedium = 15.0

	concentrationMax = 0.4 // single-asset weight triggering a warning

	weightStrong  = 0.3  // per-ticker weight worth calling out
	weightWeak    = 0.05 // per-ticker weight worth reconsidering
	weightCounted = 0.05 // minimum weight counted as diversified
)

// DefaultInvestment is the principal assumed when none is given.
const DefaultInvestment = 10000

// StockAnalysis holds the per-ticker figures of a prediction. Returns and
// volatility are annualized percentages.
type StockAnalysis struct {
	CurrentPrice          float64 `json:"current_price"`
	AvgReturn             float64 `json:"avg_return"`
	Volatility            float64 `json:"volatility"`
	OptimalWeight         float64 `json:"optimal_weight"`
	RecommendedAllocation float64 `json:"recommended_allocation"`
}

// Projections compounds the portfolio expected return against a principal.
type Projections struct {
	InitialInvestment float64 `json:"initial_investment"`
	Projected1Year    float64 `json:"projected_1year"`
	Projected3Year    float64 `json:"projected_3year"`
	Projected5Year    float64 `json:"projected_5year"`
	Gain1Year         float64 `json:"gain_1year"`
	Gain3Year         float64 `json:"gain_3year"`
	Gain5Year         float64 `json:"gain_5year"`
}

// RiskAssessment classifies the portfolio volatility and diversification.
type RiskAssessment struct {
	RiskLevel            string  `json:"risk_level"`
	DiversificationScore float64 `json:"diversification_score"`
}

// Prediction is the full output of the predict operation.
type Prediction struct {
	Optimization    *Optimization
	Stocks          map[string]StockAnalysis
	Projections     Projections
	Risk            RiskAssessment
	Recommendations []string
}

// Predict projects the optimal portfolio's performance for an investment.
//
// It optimizes the portfolio over the table, analyzes each requested ticker
// that has data, compounds the expected return over 1/3/5 year horizons and
// derives the recommendation strings.
func Predict(table *Table, tickers []string, period date.Range, investment, riskFree float64) (*Prediction, error) {
	optimization, err := Optimize(table, tickers, period, riskFree)
	if err != nil {
		return nil, err
	}

	stocks := make(map[string]StockAnalysis, len(tickers))
	for _, ticker := range tickers {
		if !table.Has(ticker) {
			continue
		}
		prices := table.Series(ticker).Slice()
		returns := DailyReturns(prices)
		weight := optimization.Weights[ticker]
		_, last := table.Series(ticker).Latest()

		stocks[ticker] = StockAnalysis{
			CurrentPrice:          round2(last),
			AvgReturn:             round2(AnnualizedMeanReturn(returns) * 100),
			Volatility:            round2(AnnualizedVolatility(returns) * 100),
			OptimalWeight:         weight,
			RecommendedAllocation: round2(investment * weight),
		}
	}

	growth := 1 + optimization.ExpectedReturn/100
	p1 := round2(investment * growth)
	p3 := round2(investment * math.Pow(growth, 3))
	p5 := round2(investment * math.Pow(growth, 5))

	return &Prediction{
		Optimization: optimization,
		Stocks:       stocks,
		Projections: Projections{
			InitialInvestment: investment,
			Projected1Year:    p1,
			Projected3Year:    p3,
			Projected5Year:    p5,
			Gain1Year:         round2(p1 - investment),
			Gain3Year:         round2(p3 - investment),
			Gain5Year:         round2(p5 - investment),
		},
		Risk: RiskAssessment{
			RiskLevel:            riskLevel(optimization.Volatility),
			DiversificationScore: diversificationScore(optimization.Weights, len(tickers)),
		},
		Recommendations: recommendations(optimization, stocks),
	}, nil
}

// riskLevel classifies an annualized volatility (in percent) into fixed bands.
func riskLevel(volatility float64) string {
	switch {
	case volatility > volatilityHigh:
		return "High"
	case volatility > volatilityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// diversificationScore is the percentage of requested tickers carrying a
// meaningful weight. Always in [0, 100].
func diversificationScore(weights map[string]float64, requested int) float64 {
	if requested == 0 {
		return 0
	}
	counted := 0
	for _, w := range weights {
		if w > weightCounted {
			counted++
		}
	}
	return round2(float64(counted) / float64(requested) * 100)
}

// recommendations derives the fixed-threshold recommendation strings.
// Per-ticker lines follow the order of the optimization's requested tickers
// so the output is deterministic.
func recommendations(o *Optimization, stocks map[string]StockAnalysis) []string {
	recs := make([]string, 0, 4+len(stocks))

	switch {
	case o.Sharpe > sharpeExcellent:
		recs = append(recs, "Excellent risk-adjusted returns. Strong portfolio allocation.")
	case o.Sharpe > sharpeGood:
		recs = append(recs, "Good risk-adjusted returns. Portfolio is well-balanced.")
	default:
		recs = append(recs, "Consider diversifying to improve risk-adjusted returns.")
	}

	switch {
	case o.Volatility > volatilityHigh:
		recs = append(recs, "High volatility detected. Consider adding stable assets to reduce risk.")
	case o.Volatility < volatilityMedium:
		recs = append(recs, "Low volatility portfolio. Suitable for conservative investors.")
	}

	if max := o.MaxWeight(); max > concentrationMax {
		recs = append(recs, fmt.Sprintf("Portfolio is concentrated in one asset (%.1f%%). Consider diversifying.", max*100))
	}

	for _, ticker := range o.Tickers {
		analysis, ok := stocks[ticker]
		if !ok {
			continue
		}
		switch {
		case analysis.OptimalWeight > weightStrong:
			recs = append(recs, fmt.Sprintf("%s: High allocation recommended (%.1f%%). Strong performer.", ticker, analysis.OptimalWeight*100))
		case analysis.OptimalWeight < weightWeak:
			recs = append(recs, fmt.Sprintf("%s: Low allocation (%.1f%%). Consider alternatives.", ticker, analysis.OptimalWeight*100))
		}
	}

	return recs
}

// MarshalJSON renders the prediction with a stable, report-friendly field
// order.
func (p *Prediction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("portfolio_optimization", p.Optimization)
	w.Append("stock_analysis", p.Stocks)
	w.Append("investment_projections", p.Projections)
	w.Append("risk_assessment", p.Risk)
	w.Append("recommendations", p.Recommendations)
	return w.MarshalJSON()
}

var _ json.Marshaler = (*Prediction)(nil)
