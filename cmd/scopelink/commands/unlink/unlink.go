package unlink

import (
	"github.com/spf13/cobra"

	cli "github.com/scopelink/scopelink/cmd/scopelink/commands/internal"
	"github.com/scopelink/scopelink/pkg/commands"
	"github.com/scopelink/scopelink/pkg/config"
)

// NewCommand creates the unlink command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "unlink [@scope | @scope/name | status]",
		Short:             MsgShort,
		Long:              MsgLong,
		Example:           MsgExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cli.PackageCompletion,
		RunE:              run,
	}

	cmd.Flags().StringArrayP(cli.FlagPattern, "p", nil, MsgFlagPattern)
	cmd.Flags().Bool("clean", false, MsgFlagClean)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContext(cmd)
	if err != nil {
		return err
	}

	var argument string
	if len(args) > 0 {
		argument = args[0]
	}
	if argument == "status" {
		return cli.RunStatus(ctx)
	}

	cfg, err := config.Load(ctx.WorkingDir)
	if err != nil {
		return ctx.Fail(err)
	}
	if patterns, _ := cmd.Flags().GetStringArray(cli.FlagPattern); len(patterns) > 0 {
		cfg.Unlink.Patterns = patterns
	}

	clean, _ := cmd.Flags().GetBool("clean")
	result, err := commands.UnlinkPackages(cmd.Context(), commands.UnlinkOptions{
		WorkingDir: ctx.WorkingDir,
		Argument:   argument,
		Config:     cfg,
		Roots:      ctx.Roots,
		Clean:      clean || cfg.Unlink.Clean,
		Force:      ctx.Force,
		DryRun:     ctx.DryRun,
	})
	if err != nil {
		return ctx.Fail(err)
	}

	renderer, err := ctx.Renderer()
	if err != nil {
		return ctx.Fail(err)
	}
	if err := renderer.RenderResult(result); err != nil {
		return err
	}
	if !result.Success {
		return cli.Failed(result.Message)
	}
	return nil
}
