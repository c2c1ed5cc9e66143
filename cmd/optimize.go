package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mkarren/optifolio"
	"github.com/mkarren/optifolio/date"
	"github.com/mkarren/optifolio/yahoo"
)

// optimizeCmd holds the flags for the 'optimize' subcommand.
type optimizeCmd struct {
	start    string
	end      string
	riskFree float64
}

func (*optimizeCmd) Name() string     { return "optimize" }
func (*optimizeCmd) Synopsis() string { return "compute the maximum Sharpe ratio portfolio" }
func (*optimizeCmd) Usage() string {
	return `pfo optimize [-start <date>] [-end <date>] [-rf <rate>] <tickers>

  Computes the mean-variance optimal weights for a comma-separated list of
  tickers over the analysis period (the trailing two years by default) and
  prints the result as JSON on stdout.

Usage Examples:
$ pfo optimize AAPL,MSFT,GOOG

`
}

func (c *optimizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "Start of the analysis period (defaults to 730 days ago)")
	f.StringVar(&c.end, "end", "", "End of the analysis period (defaults to today)")
	f.Float64Var(&c.riskFree, "rf", optifolio.DefaultRiskFreeRate, "Annual risk-free rate used for the Sharpe ratio")
}

// period resolves the analysis range from the flags.
func (c *optimizeCmd) period() (date.Range, error) {
	r := analysisPeriod()
	if c.end != "" {
		d, err := date.Parse(c.end)
		if err != nil {
			return r, err
		}
		r = date.Trailing(d, optifolio.LookbackDays)
	}
	if c.start != "" {
		d, err := date.Parse(c.start)
		if err != nil {
			return r, err
		}
		r.From = d
	}
	if r.To.Before(r.From) {
		return r, fmt.Errorf("invalid period %s", r)
	}
	return r, nil
}

func (c *optimizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers, err := parseTickers(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	period, err := c.period()
	if err != nil {
		return fail(err)
	}

	table, err := yahoo.New().Fetch(tickers, period)
	if err != nil {
		return fail(fmt.Errorf("failed to fetch data: %w", err))
	}

	result, err := optifolio.Optimize(table, tickers, period, c.riskFree)
	if err != nil {
		return fail(err)
	}
	return emitJSON(result)
}
