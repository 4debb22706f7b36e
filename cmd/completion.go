package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/module"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for acme.

Besides commands and flags, gencsv and view complete the date keywords for
their first argument and the module names for the second:

  acme gencsv <TAB>          today  yesterday  month  year
  acme gencsv 2024-03 <TAB>  categorize  cat  words  wr

Usage:
  acme completion bash       Generate bash completion script
  acme completion zsh        Generate zsh completion script
  acme completion fish       Generate fish completion script
  acme completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(acme completion bash)

  # Install completion permanently:
  # Linux:
  acme completion bash > ~/.local/share/bash-completion/completions/acme

  # macOS (requires bash-completion from Homebrew):
  acme completion bash > $(brew --prefix)/etc/bash_completion.d/acme

Zsh:
  # Load completion temporarily (current session only):
  source <(acme completion zsh)

  # Install completion permanently:
  # Add to ~/.zshrc:
  echo 'fpath=(~/.zsh/completion $fpath)' >> ~/.zshrc
  echo 'autoload -Uz compinit && compinit' >> ~/.zshrc

  # Generate completion file:
  mkdir -p ~/.zsh/completion
  acme completion zsh > ~/.zsh/completion/_acme

  # Then restart your shell

Fish:
  # Install completion permanently:
  acme completion fish > ~/.config/fish/completions/acme.fish

PowerShell:
  # Open your PowerShell profile:
  notepad $PROFILE

  # Add this line to your profile:
  acme completion powershell | Out-String | Invoke-Expression

  # Save and restart PowerShell`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	gencsvCmd.ValidArgsFunction = completeReportArgs
	viewCmd.ValidArgsFunction = completeReportArgs
	rootCmd.AddCommand(completionCmd)
}

// completeReportArgs completes [date] [module-options] arguments
func completeReportArgs(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	switch len(withDateFlag(cmd, args)) {
	case 0:
		keywords := make([]string, 0, len(dateFlags))
		for _, f := range dateFlags {
			keywords = append(keywords, f.name)
		}
		return keywords, cobra.ShellCompDirectiveNoFileComp
	case 1:
		var names []string
		for _, m := range module.Builtins() {
			names = append(names, m.Name())
			if m.Nickname() != "" {
				names = append(names, m.Nickname())
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	deps := cli.GetDeps()
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}
