package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/report"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/storage"
	"github.com/xolan/acme/internal/timeutil"
)

// GenerateOptions controls where a generated report goes
type GenerateOptions struct {
	Report   report.Options
	ToStdout bool // print the CSV instead of writing it to the gen directory
	Copy     bool // also copy the CSV to the clipboard
}

// GenerateCSV builds the report for a date input or interval and writes it to
// the gen directory. Progress messages go to stderr when the CSV itself is
// printed to stdout.
func GenerateCSV(deps *cli.Deps, input string, opts GenerateOptions) {
	info := deps.Stdout
	if opts.ToStdout {
		info = deps.Stderr
	}

	req := service.ReportRequest{Input: input, Options: opts.Report}
	var (
		res *service.ReportResult
		err error
	)
	if opts.ToStdout {
		res, err = deps.Services.Report.Build(req)
	} else {
		res, err = deps.Services.Report.Generate(req)
	}
	if err != nil {
		handleReportError(deps, input, err)
		return
	}

	if res.Kind == service.KindInterval {
		_, _ = fmt.Fprintf(info, "Creating a collection for intervals from %s to %s:\n", res.Interval.From.Dash, res.Interval.To.Dash)
	}
	printCollectionWarnings(deps, res)

	if res.Kind != service.KindDay {
		found := res.Collection.Found()
		_, _ = fmt.Fprintf(info, "Found %d daily log %s for (%s) %s collection.\n",
			found, cli.Pluralize("file", found), res.Period, res.Kind)
	}

	if opts.ToStdout {
		_, _ = fmt.Fprintln(deps.Stdout, res.CSV)
	} else {
		_, _ = fmt.Fprintf(info, "Generated CSV file %s successfully.\n", res.Path)
	}

	if opts.Copy {
		if err := deps.Clipboard(res.CSV); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Warning: failed to copy to clipboard: %v\n", err)
		} else {
			_, _ = fmt.Fprintln(info, "Copied CSV to clipboard.")
		}
	}
}

func handleReportError(deps *cli.Deps, input string, err error) {
	switch {
	case errors.Is(err, timeutil.ErrInvalidInterval):
		cli.PrintError(deps.Stderr, fmt.Sprintf("Invalid interval %q", input), nil, "")
		_, _ = fmt.Fprintln(deps.Stderr, timeutil.IntervalUsage)
	case errors.Is(err, storage.ErrLogNotFound):
		_, _ = fmt.Fprintf(deps.Stderr, "Log file %s does not exist.\n", deps.Services.Report.DayLogPath(input))
	case errors.Is(err, service.ErrInvalidDateInput):
		cli.PrintError(deps.Stderr, fmt.Sprintf("Invalid date %q", input), nil, dateHint)
	default:
		cli.PrintError(deps.Stderr, "Failed to generate report", err, "")
	}
	deps.Exit(1)
}

func printCollectionWarnings(deps *cli.Deps, res *service.ReportResult) {
	warnings := res.Collection.Warnings
	if len(warnings) == 0 {
		return
	}
	writeWarnings(deps.Stderr, deps.Services.Stats.LogsDir(), warnings)
}

func writeWarnings(w io.Writer, logsDir string, warnings []report.FileWarning) {
	_, _ = fmt.Fprintf(w, "Warning: Found %d malformed %s:\n", len(warnings), cli.Pluralize("line", len(warnings)))
	last := ""
	for _, fw := range warnings {
		if fw.Path != last {
			_, _ = fmt.Fprintf(w, "%s:\n", cli.RelPath(logsDir, fw.Path))
			last = fw.Path
		}
		_, _ = fmt.Fprintln(w, cli.FormatParseWarning(fw.ParseWarning))
	}
	_, _ = fmt.Fprintln(w)
}
