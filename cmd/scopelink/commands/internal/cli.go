// Package internal carries the plumbing shared by scopelink's CLI
// subcommands: resolved global flags, renderer construction, config
// overrides, and the status report that both the status subcommand and
// the literal status argument delegate to.
package internal

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scopelink/scopelink/pkg/commands"
	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/filesystem"
	"github.com/scopelink/scopelink/pkg/ui"
	"github.com/scopelink/scopelink/pkg/workspace"
)

// Names of the flags shared across subcommands.
const (
	FlagRoot    = "root"
	FlagFormat  = "format"
	FlagDryRun  = "dry-run"
	FlagForce   = "force"
	FlagPattern = "pattern"
)

// Context is the resolved command-line environment a subcommand runs
// with.
type Context struct {
	// WorkingDir is the directory scopelink was invoked from.
	WorkingDir string

	// Roots are the workspace roots from --root, absolute. Empty means
	// the configured root patterns apply.
	Roots []string

	// DryRun and Force mirror the persistent flags.
	DryRun bool
	Force  bool

	format ui.Format
}

// NewContext resolves the persistent flags and working directory for
// one subcommand invocation.
func NewContext(cmd *cobra.Command) (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
	}

	flags := cmd.Root().PersistentFlags()
	dryRun, _ := flags.GetBool(FlagDryRun)
	force, _ := flags.GetBool(FlagForce)

	formatName, _ := flags.GetString(FlagFormat)
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrArgumentInvalid, "invalid --format value").
			WithDetail("format", formatName)
	}

	roots, _ := flags.GetStringArray(FlagRoot)
	for i, root := range roots {
		if !filepath.IsAbs(root) {
			roots[i] = filepath.Join(wd, root)
		}
	}

	return &Context{
		WorkingDir: wd,
		Roots:      roots,
		DryRun:     dryRun,
		Force:      force,
		format:     format,
	}, nil
}

// Renderer builds the stdout renderer for the resolved format.
func (c *Context) Renderer() (ui.Renderer, error) {
	return ui.NewRenderer(c.format, os.Stdout)
}

// Fail reports err on stderr in the resolved format and returns a
// silenced error so the caller can unwind without a second report.
func (c *Context) Fail(err error) error {
	renderer, rerr := ui.NewRenderer(c.format, os.Stderr)
	if rerr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return Silence(err)
	}
	if rerr := renderer.RenderError(err); rerr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return Silence(err)
}

// silentError marks an error as already reported to the user.
type silentError struct {
	err error
}

func (e *silentError) Error() string { return e.err.Error() }
func (e *silentError) Unwrap() error { return e.err }

// Silence wraps err so main knows not to print it again.
func Silence(err error) error {
	if err == nil {
		return nil
	}
	return &silentError{err: err}
}

// Silenced reports whether err was already shown to the user.
func Silenced(err error) bool {
	var silent *silentError
	return stderrors.As(err, &silent)
}

// Failed converts an already-rendered failed outcome into a silenced
// error. Smart-mode terminal states degrade to a failed result instead
// of a Go error; the process still has to exit non-zero.
func Failed(message string) error {
	return Silence(stderrors.New(message))
}

// RunStatus runs the link report and renders it. The status subcommand
// and the literal status argument to link and unlink both end here.
func RunStatus(ctx *Context) error {
	result, err := commands.GetStatus(commands.StatusOptions{
		WorkingDir: ctx.WorkingDir,
		Roots:      ctx.Roots,
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

// PackageCompletion completes @scope and @scope/name arguments from
// the discovered workspace, plus the literal status argument.
func PackageCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx, err := NewContext(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	cfg, err := config.Load(ctx.WorkingDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	roots := ctx.Roots
	if len(roots) == 0 {
		if roots, err = workspace.ExpandRoots(cfg.Dir, cfg.Workspace.Roots); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}

	pkgs, err := workspace.Discover(filesystem.NewOS(), roots, cfg.Workspace.Ignore)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	seen := make(map[string]bool)
	completions := []string{"status"}
	for _, pkg := range pkgs {
		if scope := pkg.Scope(); scope != "" && !seen[scope] {
			seen[scope] = true
			completions = append(completions, scope)
		}
		completions = append(completions, pkg.Name)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
