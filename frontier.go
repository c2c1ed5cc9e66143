package optifolio

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultRiskFreeRate is the annual risk-free rate used for Sharpe ratios.
const DefaultRiskFreeRate = 0.02

// SampleCov computes the annualized sample covariance matrix of the aligned
// daily return series (one row per ticker, equal lengths).
func SampleCov(matrix [][]float64) *mat.SymDense {
	n := len(matrix)
	if n == 0 {
		return mat.NewSymDense(0, nil)
	}
	obs := len(matrix[0])

	// gonum wants observations in rows and assets in columns.
	x := mat.NewDense(obs, n, nil)
	for j, series := range matrix {
		for i, r := range series {
			x.Set(i, j, r)
		}
	}

	cov := mat.NewSymDense(n, nil)
	stat.CovarianceMatrix(cov, x, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, cov.At(i, j)*TradingDays)
		}
	}
	return cov
}

// EfficientFrontier holds the inputs of a mean-variance optimization: the
// annualized expected return vector and covariance matrix of a set of assets.
type EfficientFrontier struct {
	tickers  []string
	mu       []float64
	cov      *mat.SymDense
	riskFree float64
}

// NewEfficientFrontier returns a frontier for the given assets.
// mu and cov must be annualized and consistently ordered with tickers.
func NewEfficientFrontier(tickers []string, mu []float64, cov *mat.SymDense, riskFree float64) (*EfficientFrontier, error) {
	n := len(tickers)
	if n == 0 {
		return nil, fmt.Errorf("efficient frontier needs at least one asset")
	}
	if len(mu) != n || cov.SymmetricDim() != n {
		return nil, fmt.Errorf("inconsistent frontier inputs: %d tickers, %d returns, %d×%d covariance",
			n, len(mu), cov.SymmetricDim(), cov.SymmetricDim())
	}
	return &EfficientFrontier{tickers: tickers, mu: mu, cov: cov, riskFree: riskFree}, nil
}

// MaxSharpe finds the long-only maximum Sharpe ratio (tangency) portfolio.
//
// It scans the risk-aversion parameter λ ≥ 0, solving for each
// min w'Σw − λ·μ'w s.t. w ≥ 0, 1'w = 1 by projected gradient descent onto
// the probability simplex, and keeps the solution with the highest Sharpe
// ratio. Robust for the small asset counts this tool deals with.
func (ef *EfficientFrontier) MaxSharpe() []float64 {
	n := len(ef.mu)
	if n == 1 {
		return []float64{1}
	}

	bestSharpe := math.Inf(-1)
	var best []float64

	const numScans = 50
	for k := 0; k <= numScans; k++ {
		var lambda float64
		if k > 0 {
			t := float64(k) / float64(numScans)
			lambda = 0.001 * math.Pow(100000, t) // 0.001 to 100
		}
		w := ef.solveQP(lambda)
		_, _, sr := ef.PortfolioPerformance(w)
		if sr > bestSharpe {
			bestSharpe = sr
			best = w
		}
	}

	if best == nil {
		best = equalWeights(n)
	}
	return best
}

// PortfolioPerformance returns the annualized expected return, volatility
// and Sharpe ratio of the weighted portfolio.
func (ef *EfficientFrontier) PortfolioPerformance(weights []float64) (ret, vol, sharpe float64) {
	w := mat.NewVecDense(len(weights), weights)
	ret = mat.Dot(w, mat.NewVecDense(len(ef.mu), ef.mu))

	var sw mat.VecDense
	sw.MulVec(ef.cov, w)
	variance := mat.Dot(w, &sw)
	if variance > 0 {
		vol = math.Sqrt(variance)
	}
	if vol > 0 {
		sharpe = (ret - ef.riskFree) / vol
	}
	return ret, vol, sharpe
}

// CleanWeights maps the raw weight vector back to tickers, zeroing weights
// below cutoff and rounding the rest, the clean-up convention of
// mean-variance optimizers.
func (ef *EfficientFrontier) CleanWeights(weights []float64) map[string]float64 {
	const cutoff = 1e-4
	const rounding = 5

	pow := math.Pow(10, rounding)
	cleaned := make(map[string]float64, len(weights))
	for i, ticker := range ef.tickers {
		w := weights[i]
		if math.Abs(w) < cutoff {
			w = 0
		}
		cleaned[ticker] = math.Round(w*pow) / pow
	}
	return cleaned
}

// solveQP solves min w'Σw − λ·μ'w s.t. w ≥ 0, 1'w = 1 by projected
// gradient descent starting from equal weights.
func (ef *EfficientFrontier) solveQP(lambda float64) []float64 {
	n := len(ef.mu)
	w := equalWeights(n)

	// Step size 1/(2·trace(Σ)): the Lipschitz constant of ∇(w'Σw) = 2Σw is
	// 2·λ_max(Σ) ≤ 2·trace(Σ), and the linear term has zero Hessian.
	trace := 0.0
	for i := 0; i < n; i++ {
		trace += ef.cov.At(i, i)
	}
	if trace <= 0 {
		return w
	}
	step := 1 / (2 * trace)

	const maxIter = 1000
	const tol = 1e-10

	grad := mat.NewVecDense(n, nil)
	prev := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		grad.MulVec(ef.cov, mat.NewVecDense(n, w))

		copy(prev, w)
		for i := range w {
			w[i] -= step * (2*grad.AtVec(i) - lambda*ef.mu[i])
		}
		projectOntoSimplex(w)

		maxDiff := 0.0
		for i := range w {
			if d := math.Abs(w[i] - prev[i]); d > maxDiff {
				maxDiff = d
			}
		}
		if maxDiff < tol {
			break
		}
	}
	return w
}

// projectOntoSimplex projects v in place onto {w : w ≥ 0, Σw = 1}
// (Euclidean projection, Duchi et al. algorithm).
func projectOntoSimplex(v []float64) {
	n := len(v)
	u := make([]float64, n)
	copy(u, v)
	sort.Sort(sort.Reverse(sort.Float64Slice(u)))

	cum := 0.0
	rho := -1
	theta := 0.0
	for i, x := range u {
		cum += x
		if x-(cum-1)/float64(i+1) > 0 {
			rho = i
			theta = (cum - 1) / float64(i+1)
		}
	}
	if rho < 0 {
		// Degenerate input, fall back to equal weights.
		for i := range v {
			v[i] = 1 / float64(n)
		}
		return
	}
	for i := range v {
		v[i] -= theta
		if v[i] < 0 {
			v[i] = 0
		}
	}
}

func equalWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}
