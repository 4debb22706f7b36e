package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/cli/handlers"
	"github.com/xolan/acme/internal/filter"
)

var rootCmd = &cobra.Command{
	Use:   "acme [date]",
	Short: "Turn daily work logs into CSV reports",
	Long: `acme reads plain-text daily work logs from a metrics directory and turns
them into CSV reports.

Usage:
  acme                                  Analyze the logs directory
  acme -l                               Analyze and list every log file
  acme <date>                           Look up the logs of a date
  acme -g <date> [module-options]       Generate a CSV report (same as gencsv)
  acme view [date] [module-options]     Browse a report interactively

Dates:
  M/D, MM/DD                  a day of the current year
  MM/DD/YY, MM/DD/YYYY        a day, YY of 69-99 is 19YY, otherwise 20YY
  MM/YYYY                     a month
  YYYY/MM/DD, YYYY/MM, YYYY   a day, a month or a year
  today|tod, yesterday|yest   also -t and -y
  month|mon, year|yr          the current month or year, also -m and --year
Month and day may have one or two digits, and "-" may replace "/" (2024-03-15).
The -yr form of --year needs "--" before it: acme -- -yr
Intervals (gencsv only): from,to[,separator], e.g. 2024-01-01,2024-01-31

The metrics directory is the first directory holding a "logs" directory,
searched from --dir (or the working directory) upwards.`,
	Args: dateArgs(0, 2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogger(cli.GetDeps().Stderr, verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runRoot(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Metrics directory, or a directory inside it")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")

	rootCmd.Flags().BoolP("stats", "s", false, "Analyze the logs directory")
	rootCmd.Flags().BoolP("list-files", "l", false, "Analyze the logs directory and list every file")
	rootCmd.Flags().BoolP("gencsv", "g", false, "Generate a CSV report for the date argument")
	addGenerateFlags(rootCmd)
	addFilterFlags(rootCmd)
	addDateFlags(rootCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"acme version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runRoot dispatches the flag forms of the subcommands and date lookups
func runRoot(cmd *cobra.Command, args []string) {
	deps := cli.GetDeps()
	if !ensureServices(deps, dirFlag(cmd)) {
		return
	}
	args = withDateFlag(cmd, args)

	gencsv, _ := cmd.Flags().GetBool("gencsv")
	listFiles, _ := cmd.Flags().GetBool("list-files")
	showStats, _ := cmd.Flags().GetBool("stats")

	switch {
	case gencsv:
		if len(args) == 0 {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: gencsv requires a date or interval")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage: acme -g <date> [module-options]")
			deps.Exit(1)
			return
		}
		runGenerate(cmd, args)
	case listFiles:
		handlers.ShowStats(deps, true)
	case showStats || len(args) == 0:
		handlers.ShowStats(deps, false)
	case len(args) > 1:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unexpected argument %q\n", args[1])
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: acme <date>")
		deps.Exit(1)
	default:
		handlers.Lookup(deps, args[0], filterFromFlags(cmd))
	}
}

// dirFlag returns the --dir value
func dirFlag(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("dir")
	return dir
}

// addFilterFlags registers the row filter flags on c
func addFilterFlags(c *cobra.Command) {
	c.Flags().String("keyword", "", "Only rows whose description contains this text")
	c.Flags().String("category", "", "Only rows of this category")
	c.Flags().StringSlice("tag", nil, "Only rows carrying this hashtag (repeatable)")
}

// dateFlags stand in for the date argument with a day keyword
var dateFlags = []struct {
	name, short, usage string
}{
	{"today", "t", "Use today as the date"},
	{"yesterday", "y", "Use yesterday as the date"},
	{"month", "m", "Use the current month as the date"},
	{"year", "", "Use the current year as the date"},
}

// addDateFlags registers the date keyword flags on c. At most one may be set.
func addDateFlags(c *cobra.Command) {
	names := make([]string, 0, len(dateFlags))
	for _, f := range dateFlags {
		c.Flags().BoolP(f.name, f.short, false, f.usage)
		names = append(names, f.name)
	}
	c.MarkFlagsMutuallyExclusive(names...)
}

// withDateFlag returns args with the keyword of a set date flag in front
func withDateFlag(cmd *cobra.Command, args []string) []string {
	for _, f := range dateFlags {
		if set, _ := cmd.Flags().GetBool(f.name); set {
			return append([]string{f.name}, args...)
		}
	}
	return args
}

// dateArgs is cobra.RangeArgs with a set date flag counted as the date argument
func dateArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return cobra.RangeArgs(min, max)(cmd, withDateFlag(cmd, args))
	}
}

// filterFromFlags builds the row filter from the filter flags of cmd.
// It returns nil when no filter flag is set.
func filterFromFlags(cmd *cobra.Command) *filter.Filter {
	keyword, _ := cmd.Flags().GetString("keyword")
	category, _ := cmd.Flags().GetString("category")
	tags, _ := cmd.Flags().GetStringSlice("tag")

	f := filter.NewFilter(keyword, category, tags)
	if f.IsEmpty() {
		return nil
	}
	return f
}
