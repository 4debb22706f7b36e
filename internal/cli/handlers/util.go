package handlers

import (
	"fmt"
	"path/filepath"

	"github.com/xolan/acme/internal/cli"
)

// MakeFiles creates the day logs 01.txt..31.txt in dir, or lists them when apply is false
func MakeFiles(deps *cli.Deps, dir string, apply bool) {
	paths, err := deps.Services.Util.MakeFiles(dir, apply)
	printMade(deps, "files", "touch", dir, paths, apply)
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to make files", err, "")
		deps.Exit(1)
	}
}

// MakeDirs creates the month directories 01..12 in dir, or lists them when apply is false
func MakeDirs(deps *cli.Deps, dir string, apply bool) {
	paths, err := deps.Services.Util.MakeDirs(dir, apply)
	printMade(deps, "dirs", "mkdir", dir, paths, apply)
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to make directories", err, "")
		deps.Exit(1)
	}
}

func printMade(deps *cli.Deps, what, verb, dir string, paths []string, apply bool) {
	if apply {
		_, _ = fmt.Fprintf(deps.Stdout, "Applying making %s in %s\n", what, dir)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Mock-making %s in %s\n", what, dir)
	}
	for _, p := range paths {
		if apply {
			_, _ = fmt.Fprintf(deps.Stdout, "%s %s applied\n", verb, p)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "%s %s\n", verb, p)
		}
	}
	if !apply {
		_, _ = fmt.Fprintln(deps.Stdout, "Run again with apply to create them.")
	}
}

// CleanGen removes generated day reports older than clean_after_days
func CleanGen(deps *cli.Deps) {
	removed, err := deps.Services.Util.CleanGen()
	for _, p := range removed {
		_, _ = fmt.Fprintln(deps.Stdout, filepath.Base(p))
	}
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to clean generated reports", err, "")
		deps.Exit(1)
		return
	}

	if len(removed) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing to clean up.")
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "--------------")
	_, _ = fmt.Fprintf(deps.Stdout, "Cleaned up %d older gencsv %s from: %s\n",
		len(removed), cli.Pluralize("file", len(removed)), deps.Services.Util.GenDir())
}
