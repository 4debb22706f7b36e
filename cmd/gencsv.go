package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/cli/handlers"
	"github.com/xolan/acme/internal/report"
)

var gencsvCmd = &cobra.Command{
	Use:   "gencsv <date|interval> [module-options]",
	Short: "Generate a CSV report",
	Long: `Generate a CSV report into the gen directory of the metrics directory.

A day writes gen/YYYY-MM-DD.csv from logs/YYYY/MM/DD.txt. A month or a year
collects every daily log it contains into gen/YYYY-MM.csv or gen/YYYY.csv.
An interval (from,to[,separator]) collects every day from the start of from
to the end of to.

Module options are a comma-separated list such as "cat" (split the trailing
category block into columns).

Examples:
  acme gencsv today
  acme gencsv -y --stdout
  acme gencsv 2024-03 cat
  acme gencsv 2024-01-01,2024-01-31 --stdout
  acme gencsv 2024,2025,_ --no-footer`,
	Aliases: []string{"g"},
	Args:    dateArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if !ensureServices(cli.GetDeps(), dirFlag(cmd)) {
			return
		}
		runGenerate(cmd, withDateFlag(cmd, args))
	},
}

func init() {
	addGenerateFlags(gencsvCmd)
	addDateFlags(gencsvCmd)
	rootCmd.AddCommand(gencsvCmd)
}

// addGenerateFlags registers the report generation flags on c
func addGenerateFlags(c *cobra.Command) {
	c.Flags().Bool("no-header", false, "Leave out the header row")
	c.Flags().Bool("no-footer", false, "Leave out the total row")
	c.Flags().Bool("copy", false, "Copy the CSV to the clipboard")
	c.Flags().Bool("stdout", false, "Print the CSV instead of writing a file")
}

// runGenerate generates the report for args[0] with the optional module options in args[1]
func runGenerate(cmd *cobra.Command, args []string) {
	noHeader, _ := cmd.Flags().GetBool("no-header")
	noFooter, _ := cmd.Flags().GetBool("no-footer")
	copyCSV, _ := cmd.Flags().GetBool("copy")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	opts := handlers.GenerateOptions{
		Report: report.Options{
			Header: !noHeader,
			Footer: !noFooter,
		},
		ToStdout: toStdout,
		Copy:     copyCSV,
	}
	if len(args) > 1 {
		opts.Report.ModuleOptions = args[1]
	}

	handlers.GenerateCSV(cli.GetDeps(), args[0], opts)
}
