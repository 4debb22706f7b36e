package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/cli/handlers"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Analyze the logs directory",
	Long: `Analyze the files of the logs directory.

Counts the files found, the valid daily logs (logs/YYYY/MM/DD.txt), the
ones with a custom name (DD-name.txt), the ones named after their full date
(logs/YYYY/YYYY-MM-DD.txt) and the files that are not daily logs.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		if !ensureServices(deps, dirFlag(cmd)) {
			return
		}
		handlers.ShowStats(deps, false)
	},
}

// listFilesCmd represents the list-files command
var listFilesCmd = &cobra.Command{
	Use:   "list-files",
	Short: "Analyze the logs directory and list every file",
	Long:  `Analyze the files of the logs directory like stats, then list the files of each group.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		if !ensureServices(deps, dirFlag(cmd)) {
			return
		}
		handlers.ShowStats(deps, true)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listFilesCmd)
}
