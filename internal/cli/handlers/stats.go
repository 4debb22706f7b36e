package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/stats"
)

// ShowStats analyzes the names of the files in the logs directory.
// With listFiles every group of files is listed after the counts.
func ShowStats(deps *cli.Deps, listFiles bool) {
	logsDir := deps.Services.Stats.LogsDir()
	a, err := deps.Services.Stats.Analyze()
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to analyze logs directory", err, "")
		deps.Exit(1)
		return
	}

	out := deps.Stdout
	_, _ = fmt.Fprintln(out, cli.Rule)
	_, _ = fmt.Fprintf(out, "Analyzing logs from directory %s:\n", logsDir)

	if a.Total() > 0 {
		valid, custom, ymd, invalid := a.Valid(), a.Custom(), a.YMD(), a.Invalid()

		_, _ = fmt.Fprintln(out, "\nAnalysis:")
		_, _ = fmt.Fprintf(out, "- %d total files found.\n", a.Total())
		if len(custom) > 0 {
			_, _ = fmt.Fprintf(out, "- %d valid log files, including %d with custom names.\n", len(valid), len(custom))
		} else {
			_, _ = fmt.Fprintf(out, "- %d valid log files.\n", len(valid))
		}
		if len(ymd) > 0 {
			_, _ = fmt.Fprintf(out, "- %d log files in valid Y-m-d format.\n", len(ymd))
		}
		if len(invalid) > 0 {
			_, _ = fmt.Fprintf(out, "- %d files with invalid log file names. These will be ignored.\n", len(invalid))
		}

		if listFiles {
			_, _ = fmt.Fprintln(out, cli.Rule)
			_, _ = fmt.Fprintln(out, "Listing files:")
			listGroup(deps, fmt.Sprintf("%d valid log files:", len(valid)), valid)
			listGroup(deps, fmt.Sprintf("%d of the valid log files have custom names:", len(custom)), custom)
			listGroup(deps, fmt.Sprintf("%d log files in valid Y-m-d format:", len(ymd)), ymd)
			listGroup(deps, fmt.Sprintf("%d files with invalid log file names. These will be ignored:", len(invalid)), invalid)
		}
	}

	_, _ = fmt.Fprintln(out, cli.Rule)
}

func listGroup(deps *cli.Deps, title string, files []stats.Classification) {
	if len(files) == 0 {
		return
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	_, _ = fmt.Fprintf(deps.Stdout, "\n%s\n", title)
	_, _ = fmt.Fprintf(deps.Stdout, "- %s\n", strings.Join(paths, "\n- "))
}
