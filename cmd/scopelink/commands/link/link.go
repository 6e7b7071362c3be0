package link

import (
	"github.com/spf13/cobra"

	cli "github.com/scopelink/scopelink/cmd/scopelink/commands/internal"
	"github.com/scopelink/scopelink/pkg/commands"
	"github.com/scopelink/scopelink/pkg/config"
)

// NewCommand creates the link command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "link [@scope | @scope/name | status]",
		Short:             MsgShort,
		Long:              MsgLong,
		Example:           MsgExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cli.PackageCompletion,
		RunE:              run,
	}

	cmd.Flags().StringArrayP(cli.FlagPattern, "p", nil, MsgFlagPattern)
	cmd.Flags().StringToString("scope-root", nil, MsgFlagScopeRoot)

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
		cfg.Link.Patterns = patterns
	}
	if scopeRoots, _ := cmd.Flags().GetStringToString("scope-root"); len(scopeRoots) > 0 {
		if cfg.Link.ScopeRoots == nil {
			cfg.Link.ScopeRoots = make(map[string]string, len(scopeRoots))
		}
		for scope, dir := range scopeRoots {
			cfg.Link.ScopeRoots[scope] = dir
		}
	}

	result, err := commands.LinkPackages(cmd.Context(), commands.LinkOptions{
		WorkingDir: ctx.WorkingDir,
		Argument:   argument,
		Config:     cfg,
		Roots:      ctx.Roots,
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
