package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/cli/handlers"
)

// utilCmd groups the maintenance helpers
var utilCmd = &cobra.Command{
	Use:   "util",
	Short: "Maintenance helpers for the metrics directory",
}

var makefilesCmd = &cobra.Command{
	Use:   "makefiles <dir> [apply]",
	Short: "Create the daily logs 01.txt to 31.txt in a directory",
	Long: `Create the empty daily logs 01.txt to 31.txt in dir, skipping existing files.
Without "apply" only the files that would be created are printed.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		apply, ok := applyArg(deps, args)
		if !ok || !ensureServices(deps, dirFlag(cmd)) {
			return
		}
		handlers.MakeFiles(deps, args[0], apply)
	},
}

var makedirsCmd = &cobra.Command{
	Use:   "makedirs <dir> [apply]",
	Short: "Create the month directories 01 to 12 in a directory",
	Long: `Create the month directories 01 to 12 in dir, skipping existing ones.
Without "apply" only the directories that would be created are printed.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		apply, ok := applyArg(deps, args)
		if !ok || !ensureServices(deps, dirFlag(cmd)) {
			return
		}
		handlers.MakeDirs(deps, args[0], apply)
	},
}

var cleangenCmd = &cobra.Command{
	Use:   "cleangen",
	Short: "Remove old daily reports from the gen directory",
	Long: `Remove the daily reports (gen/YYYY-MM-DD.csv) last modified more than
clean_after_days days ago. Month, year and interval reports are kept.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		if !ensureServices(deps, dirFlag(cmd)) {
			return
		}
		handlers.CleanGen(deps)
	},
}

func init() {
	utilCmd.AddCommand(makefilesCmd)
	utilCmd.AddCommand(makedirsCmd)
	utilCmd.AddCommand(cleangenCmd)
	rootCmd.AddCommand(utilCmd)
}

// applyArg reports whether the optional second argument asks to apply the changes
func applyArg(deps *cli.Deps, args []string) (apply bool, ok bool) {
	if len(args) < 2 {
		return false, true
	}
	if args[1] == "apply" {
		return true, true
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown argument %q\n", args[1])
	_, _ = fmt.Fprintln(deps.Stderr, `Hint: Pass "apply" to create the files`)
	deps.Exit(1)
	return false, false
}
