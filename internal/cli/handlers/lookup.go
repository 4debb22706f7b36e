package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/filter"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/stats"
)

const dateHint = "Please specify a valid date (Y-m-d), month (Y-m), or year (Y)."

// Lookup lists the rows of every log file found for input, followed by a
// summary of their hours. Rows not matching f are left out.
func Lookup(deps *cli.Deps, input string, f *filter.Filter) {
	result, err := deps.Services.Lookup.Lookup(input, f)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateInput) {
			cli.PrintError(deps.Stderr, fmt.Sprintf("Invalid date %q", input), nil, dateHint)
		} else {
			cli.PrintError(deps.Stderr, "Failed to look up logs", err, "")
		}
		deps.Exit(1)
		return
	}

	logsDir := deps.Services.Stats.LogsDir()
	heading := result.Spec.Dash
	if input != result.Spec.Dash {
		heading = input + ", " + result.Spec.Dash
	}

	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule)
	_, _ = fmt.Fprintf(deps.Stdout, "Analyzing data for %s:\n", heading)
	for _, p := range result.Patterns {
		_, _ = fmt.Fprintf(deps.Stdout, "- Looking for %s in %s\n", p, logsDir)
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.Rule)

	if len(result.Files) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No log files found for %s\n", result.Spec.Slash)
		return
	}

	for _, file := range result.Files {
		rel := cli.RelPath(logsDir, file.Path)
		if len(file.Warnings) > 0 {
			_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d malformed %s in %s:\n",
				len(file.Warnings), cli.Pluralize("line", len(file.Warnings)), rel)
			for _, w := range file.Warnings {
				_, _ = fmt.Fprintln(deps.Stderr, cli.FormatParseWarning(w))
			}
			_, _ = fmt.Fprintln(deps.Stderr)
		}

		_, _ = fmt.Fprintf(deps.Stdout, "%s:\n", rel)
		if len(file.Rows) == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "  (no entries)")
			continue
		}
		for _, r := range file.Rows {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatRow(r))
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  Total: %s hours\n", file.Total)
	}

	displaySummary(deps, cli.BuildPeriodWithFilters(result.Spec.Slash, f), result.Summary)
}

func displaySummary(deps *cli.Deps, period string, s service.SummaryResult) {
	st := s.Statistics
	out := deps.Stdout

	_, _ = fmt.Fprintln(out, cli.Rule)
	_, _ = fmt.Fprintf(out, "Summary for %s:\n", period)
	_, _ = fmt.Fprintln(out, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(out, "Total time:      %s\n", cli.FormatHours(st.TotalHours))
	_, _ = fmt.Fprintf(out, "Total entries:   %d %s\n", st.EntryCount, cli.Pluralize("entry", st.EntryCount))
	_, _ = fmt.Fprintf(out, "Days with work:  %d %s\n", st.DaysWithEntries, cli.Pluralize("day", st.DaysWithEntries))
	_, _ = fmt.Fprintf(out, "Average per day: %s\n", cli.FormatHours(st.AverageHoursPerDay))

	displayBreakdown(deps, "By category:", s.Categories)
	displayBreakdown(deps, "By hashtag:", s.Hashtags)
}

func displayBreakdown(deps *cli.Deps, title string, items []stats.Breakdown) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintln(deps.Stdout, title)
	for _, b := range items {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-28s  %10s  (%d %s)\n",
			b.Label, cli.FormatHours(b.Hours), b.EntryCount, cli.Pluralize("entry", b.EntryCount))
	}
}
