package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for timeaxis.

Completions cover every command and flag, including the axis kinds accepted
by --kind and .toml files for render --config.

Load them for the current shell:

  bash:        source <(timeaxis completion bash)
  zsh:         source <(timeaxis completion zsh)
  fish:        timeaxis completion fish | source
  powershell:  timeaxis completion powershell | Out-String | Invoke-Expression

To load them for every session, write the script to your shell's completion
directory, e.g.

  timeaxis completion bash > /etc/bash_completion.d/timeaxis
  timeaxis completion zsh > "${fpath[1]}/_timeaxis"
  timeaxis completion fish > ~/.config/fish/completions/timeaxis.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.out)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.out)
			}
			return nil
		},
	}

	return cmd
}
