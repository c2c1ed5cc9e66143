package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mkarren/optifolio/yahoo"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the latest market price of tickers" }
func (*quoteCmd) Usage() string {
	return `pfo quote <tickers>

  Prints the latest regular market price of each ticker as JSON.

Usage Examples:
$ pfo quote AAPL,MSFT

`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers, err := parseTickers(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	client := yahoo.New()
	quotes := make(map[string]float64, len(tickers))
	for _, ticker := range tickers {
		price, err := client.Quote(ticker)
		if err != nil {
			return fail(err)
		}
		quotes[ticker] = price
	}
	return emitJSON(quotes)
}
