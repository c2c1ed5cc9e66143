package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
	"github.com/mkarren/optifolio"
	"github.com/mkarren/optifolio/renderer"
	"github.com/mkarren/optifolio/yahoo"
)

// predictCmd holds the flags for the 'predict' subcommand.
type predictCmd struct {
	riskFree float64
	pretty   bool
}

func (*predictCmd) Name() string { return "predict" }
func (*predictCmd) Synopsis() string {
	return "project the optimal portfolio's performance for an investment"
}
func (*predictCmd) Usage() string {
	return `pfo predict [-rf <rate>] [-pretty] <tickers> [investment-amount]

  Optimizes the portfolio, analyzes each ticker, compounds the expected
  return over 1, 3 and 5 year horizons against the investment amount
  (10000 by default) and derives recommendations. Prints JSON on stdout,
  or a rendered markdown report with -pretty.

Usage Examples:
$ pfo predict AAPL,MSFT,GOOG 25000

`
}

func (c *predictCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.riskFree, "rf", optifolio.DefaultRiskFreeRate, "Annual risk-free rate used for the Sharpe ratio")
	f.BoolVar(&c.pretty, "pretty", false, "Render a markdown report instead of raw JSON")
}

func (c *predictCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prediction, err := predict(f, c.riskFree)
	if err != nil {
		return fail(err)
	}
	if c.pretty {
		printMarkdown(renderer.PredictionMarkdown(renderer.NewPrediction(prediction)))
		return subcommands.ExitSuccess
	}
	return emitJSON(prediction)
}

// predict parses the positional arguments and runs the whole prediction
// pipeline. It is shared with the 'explain' subcommand.
func predict(f *flag.FlagSet, riskFree float64) (*optifolio.Prediction, error) {
	tickers, err := parseTickers(f.Arg(0))
	if err != nil {
		return nil, err
	}

	investment := float64(optifolio.DefaultInvestment)
	if arg := f.Arg(1); arg != "" {
		investment, err = strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid investment amount %q: %w", arg, err)
		}
	}

	period := analysisPeriod()
	table, err := yahoo.New().Fetch(tickers, period)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}

	return optifolio.Predict(table, tickers, period, investment, riskFree)
}
