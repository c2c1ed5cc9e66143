// Package cmd implements the CLI application to optimize portfolios.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/subcommands"
	"github.com/mkarren/optifolio"
	"github.com/mkarren/optifolio/date"
)

// Commands lists the subcommands.
// A main package will register them all, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&optimizeCmd{},
	&predictCmd{},
	&quoteCmd{},
	&explainCmd{},
}

// Run registers the subcommands and executes the one selected on the command
// line, returning the process exit code.
//
// Dispatch errors follow the same contract as command failures: a missing or
// unknown command, or invalid flags, print a single {"error":...} object on
// stdout and exit 1.
func Run(ctx context.Context) int {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range Commands {
		commander.Register(c, "")
	}
	flag.Parse()

	if err := checkCommand(flag.Arg(0)); err != nil {
		return int(fail(err))
	}
	switch status := commander.Execute(ctx); status {
	case subcommands.ExitSuccess:
		return 0
	case subcommands.ExitUsageError:
		return int(fail(fmt.Errorf("invalid arguments for command %q", flag.Arg(0))))
	default:
		return 1
	}
}

// checkCommand validates the selected command name before dispatch, so that
// the commander's usage listing never replaces the JSON error object.
func checkCommand(name string) error {
	names := make([]string, len(Commands))
	for i, c := range Commands {
		names[i] = c.Name()
	}
	list := strings.Join(names, ", ")
	if name == "" {
		return fmt.Errorf("missing command: use one of %s", list)
	}
	for _, c := range Commands {
		if c.Name() == name {
			return nil
		}
	}
	return fmt.Errorf("unknown command %q: use one of %s", name, list)
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// parseTickers splits a comma-separated ticker argument into a normalized list.
func parseTickers(arg string) ([]string, error) {
	var tickers []string
	for _, t := range strings.Split(arg, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tickers = append(tickers, strings.ToUpper(t))
	}
	if len(tickers) == 0 {
		return nil, errors.New("no tickers provided")
	}
	return tickers, nil
}

// analysisPeriod returns the default trailing two-year window ending today.
func analysisPeriod() date.Range {
	return date.Trailing(date.Today(), optifolio.LookbackDays)
}

// stdout is where command results and error objects go. A variable so tests
// can capture the output.
var stdout io.Writer = os.Stdout

// emitJSON prints a result document on stdout.
func emitJSON(v any) subcommands.ExitStatus {
	out, err := json.Marshal(v)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// fail reports an error as the JSON error object the CLI contract requires,
// on stdout, and exits non-zero. Usage errors follow the same contract.
func fail(err error) subcommands.ExitStatus {
	out, _ := json.Marshal(map[string]string{"error": err.Error()})
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitFailure
}
