package status

import (
	"github.com/spf13/cobra"

	cli "github.com/scopelink/scopelink/cmd/scopelink/commands/internal"
)

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewContext(cmd)
			if err != nil {
				return err
			}
			return cli.RunStatus(ctx)
		},
	}
}
