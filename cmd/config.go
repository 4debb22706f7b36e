package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the effective configuration settings for acme.

acme works without any configuration file. The global config file is read
first, then the app/config.toml of the metrics directory overrides it.

Configuration file location:
  ~/.config/acme/config.toml          Linux
  ~/Library/Application Support/acme  macOS
  %APPDATA%\acme\config.toml          Windows

Examples:
  acme config                         Show all current settings
  acme config init                    Write a commented sample config`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		if !ensureConfigServices(deps, dirFlag(cmd)) {
			return
		}
		handlers.ShowConfig(deps)
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample global config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		if !ensureConfigServices(deps, dirFlag(cmd)) {
			return
		}
		handlers.InitConfig(deps)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
