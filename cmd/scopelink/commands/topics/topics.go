package topics

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand creates the topics command. It delegates to the
// topic-aware help command so listing and rendering stay in one place.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.ValidArgsFunction != nil {
				return helpCmd.ValidArgsFunction(helpCmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd.Run == nil {
				return fmt.Errorf("help command not available")
			}
			helpArgs := []string{"topics"}
			if len(args) > 0 {
				helpArgs = args
			}
			helpCmd.Run(helpCmd, helpArgs)
			return nil
		},
	}
}
