package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cardlayout.

Card ids are completed for --card from the card file given on the command
line, so "cardlayout preview cards.json --card <TAB>" lists the cards.

Bash:
  $ source <(cardlayout completion bash)

Zsh:
  $ cardlayout completion zsh > "${fpath[1]}/_cardlayout"

Fish:
  $ cardlayout completion fish > ~/.config/fish/completions/cardlayout.fish

PowerShell:
  PS> cardlayout completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}

	return cmd
}

// completeCardIDs completes --card with the ids found in the card file
// passed as the first argument.
func completeCardIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cards, err := readCards(args[0], "")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var ids []string
	for _, card := range cards {
		if card.ID == "" || !strings.HasPrefix(card.ID, toComplete) {
			continue
		}
		if card.Name != "" {
			ids = append(ids, card.ID+"\t"+card.Name)
		} else {
			ids = append(ids, card.ID)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
