package version

import (
	"fmt"

	"github.com/spf13/cobra"

	info "github.com/scopelink/scopelink/internal/version"
)

// NewCommand creates the version command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scopelink version %s\n", info.Version)
			if info.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", info.Commit)
			}
			if info.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", info.Date)
			}
		},
	}
}
