package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/tui"
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view [date|interval] [module-options]",
	Short: "Browse a report interactively",
	Long: `Launch the interactive report browser.

The browser shows the report of a date (today by default) as a table, a
summary of its hours by category and hashtag, the files of the logs
directory and the configuration.

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-4: Switch views
  - Left/Right or h/l: Previous/next day, month or year
  - t: Back to today
  - g: Write the report to the gen directory
  - c: Copy the report CSV to the clipboard
  - T: Pick a color theme
  - ?: Show help
  - q: Quit`,
	Args: dateArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		runView(cmd, withDateFlag(cmd, args))
	},
}

func init() {
	addFilterFlags(viewCmd)
	addDateFlags(viewCmd)
	rootCmd.AddCommand(viewCmd)
}

// runTUI starts the program; tests replace it
var runTUI = tui.Run

func runView(cmd *cobra.Command, args []string) {
	deps := cli.GetDeps()
	if !ensureServices(deps, dirFlag(cmd)) {
		return
	}

	opts := tui.Options{
		Filter:    filterFromFlags(cmd),
		Clipboard: deps.Clipboard,
	}
	if len(args) > 0 {
		opts.Input = args[0]
	}
	if len(args) > 1 {
		opts.ModuleOptions = args[1]
	}

	if err := runTUI(deps.Services, opts); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running report browser: %v\n", err)
		deps.Exit(1)
	}
}
