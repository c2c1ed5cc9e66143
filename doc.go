// Package optifolio computes mean-variance optimal portfolio allocations
// from historical adjusted-close prices and derives heuristic investment
// recommendations from them.
//
// The core functionalities include:
//   - Price Tables: chronological adjusted-close series per ticker, fetched
//     from an external market-data provider.
//   - Mean-Variance Optimization: annualized historical returns, a sample
//     covariance matrix, and the long-only maximum Sharpe ratio portfolio
//     on the efficient frontier.
//   - Projections & Recommendations: compound-interest projections of an
//     investment over 1/3/5 year horizons, a risk assessment, and
//     threshold-based recommendation strings.
//
// This package serves as the foundational logic for the `pfo` command-line
// tool, which emits every result as a JSON document on standard output.
package optifolio
