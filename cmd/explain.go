package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mkarren/optifolio"
	"google.golang.org/genai"
)

// explainModel is the Gemini model used to narrate predictions.
const explainModel = "gemini-2.5-flash"

const explainInstruction = `You are a financial analyst. The JSON document below is a
mean-variance portfolio analysis: optimal weights, expected performance,
projections and heuristic recommendations. Explain it to a retail investor
in plain language, in markdown, without giving personalized financial advice.`

// explainCmd holds the flags for the 'explain' subcommand.
type explainCmd struct {
	riskFree float64
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "narrate a prediction in plain language" }
func (*explainCmd) Usage() string {
	return `pfo explain [-rf <rate>] <tickers> [investment-amount]

  Runs the same analysis as 'predict' and asks Gemini for a plain-language
  narrative of the result.

  Requires the GEMINI_API_KEY environment variable to be set.

Usage Examples:
$ pfo explain AAPL,MSFT,GOOG 25000

`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.riskFree, "rf", optifolio.DefaultRiskFreeRate, "Annual risk-free rate used for the Sharpe ratio")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prediction, err := predict(f, c.riskFree)
	if err != nil {
		return fail(err)
	}
	document, err := json.Marshal(prediction)
	if err != nil {
		return fail(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("failed to initialize the Gemini client: %w", err))
	}

	prompt := fmt.Sprintf("%s\n\n```json\n%s\n```", explainInstruction, document)
	resp, err := client.Models.GenerateContent(ctx, explainModel, genai.Text(prompt), nil)
	if err != nil {
		return fail(fmt.Errorf("failed to generate the narrative: %w", err))
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
