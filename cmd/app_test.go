package cmd

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/mkarren/optifolio"
	"github.com/mkarren/optifolio/date"
)

func TestParseTickers(t *testing.T) {
	testCases := []struct {
		name    string
		arg     string
		want    []string
		wantErr bool
	}{
		{"single", "AAPL", []string{"AAPL"}, false},
		{"several", "AAPL,MSFT,GOOG", []string{"AAPL", "MSFT", "GOOG"}, false},
		{"lowercase and spaces", " aapl , msft ", []string{"AAPL", "MSFT"}, false},
		{"empty entries dropped", "AAPL,,MSFT,", []string{"AAPL", "MSFT"}, false},
		{"empty", "", nil, true},
		{"only separators", " , ,", nil, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTickers(tc.arg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tc.wantErr)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("ticker %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	testCases := []struct {
		name    string
		arg     string
		wantErr string // substring of the expected error, empty for success
	}{
		{"optimize", "optimize", ""},
		{"predict", "predict", ""},
		{"quote", "quote", ""},
		{"explain", "explain", ""},
		{"missing", "", "missing command"},
		{"unknown", "bogus", `unknown command "bogus"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkCommand(tc.arg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("checkCommand(%q) = nil, want an error", tc.arg)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
			// the error names the valid commands so the JSON object is actionable
			if !strings.Contains(err.Error(), "optimize, predict, quote, explain") {
				t.Errorf("error %q does not list the commands", err)
			}
		})
	}
}

func TestFail(t *testing.T) {
	var buf bytes.Buffer
	stdout = &buf
	defer func() { stdout = os.Stdout }()

	if got := fail(errors.New(`unknown command "bogus"`)); got != subcommands.ExitFailure {
		t.Errorf("fail returned %v, want ExitFailure", got)
	}
	want := `{"error":"unknown command \"bogus\""}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestAnalysisPeriod(t *testing.T) {
	r := analysisPeriod()
	if r.To != date.Today() {
		t.Errorf("period ends %s, want today", r.To)
	}
	if want := date.Today().Add(-optifolio.LookbackDays); r.From != want {
		t.Errorf("period starts %s, want %s", r.From, want)
	}
}

func TestOptimizePeriod(t *testing.T) {
	testCases := []struct {
		name       string
		start, end string
		want       string // expected range, empty when an error is expected
	}{
		{"explicit bounds", "2024-01-01", "2024-12-31", "2024-01-01..2024-12-31"},
		{"end only keeps the trailing window", "", "2024-12-31", "2023-01-01..2024-12-31"},
		{"lenient date form", "2024-1-2", "2024-3-4", "2024-01-02..2024-03-04"},
		{"bad start", "notadate", "2024-12-31", ""},
		{"bad end", "2024-01-01", "notadate", ""},
		{"inverted", "2024-12-31", "2024-01-01", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &optimizeCmd{start: tc.start, end: tc.end}
			r, err := c.period()
			if tc.want == "" {
				if err == nil {
					t.Fatalf("got %s, want an error", r)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.String() != tc.want {
				t.Errorf("got %s, want %s", r, tc.want)
			}
		})
	}
}

func TestOptimizePeriodDefault(t *testing.T) {
	c := &optimizeCmd{}
	r, err := c.period()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != analysisPeriod() {
		t.Errorf("got %s, want the default trailing window", r)
	}
}
