package deps

import (
	"github.com/spf13/cobra"

	cli "github.com/scopelink/scopelink/cmd/scopelink/commands/internal"
	"github.com/scopelink/scopelink/pkg/commands"
)

// NewCommand creates the deps command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deps",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE:    run,
	}

	cmd.Flags().Bool("conflicts", false, MsgFlagConflicts)
	cmd.Flags().String("align", "", MsgFlagAlign)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext(cmd)
	if err != nil {
		return err
	}

	conflictsOnly, _ := cmd.Flags().GetBool("conflicts")
	align, _ := cmd.Flags().GetString("align")

	result, err := commands.AnalyzeDeps(commands.DepsOptions{
		WorkingDir:    ctx.WorkingDir,
		Roots:         ctx.Roots,
		ConflictsOnly: conflictsOnly,
		Align:         align,
		DryRun:        ctx.DryRun,
	})
	if err != nil {
		return ctx.Fail(err)
	}

	renderer, err := ctx.Renderer()
	if err != nil {
		return ctx.Fail(err)
	}
	return renderer.RenderResult(result)
}
