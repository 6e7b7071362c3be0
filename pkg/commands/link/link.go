// Package link implements the link command. With no argument it runs
// in smart mode: the current directory's package is registered as
// globally linkable and its sibling dependencies are symlinked in.
// With a @scope or @scope/name argument it runs in explicit mode:
// every matching workspace package is registered and linked into its
// direct consumers.
package link

import (
	"context"

	"github.com/scopelink/scopelink/pkg/commands/internal"
	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/npm"
	"github.com/scopelink/scopelink/pkg/symlink"
	"github.com/scopelink/scopelink/pkg/types"
)

// Options contains options for the link command.
type Options struct {
	// WorkingDir is the directory link was invoked from. Smart mode
	// operates on this directory's package.
	WorkingDir string

	// Argument is the raw @scope or @scope/name argument. Empty
	// selects smart mode.
	Argument string

	// Config is the effective configuration. Loaded from WorkingDir
	// when nil.
	Config *config.Config

	// FS is the filesystem to reconcile against. Defaults to the
	// operating system filesystem.
	FS types.FS

	// Client runs package manager operations. Defaults to the
	// configured manager binary.
	Client *npm.Client

	// Roots lists the workspace root directories. When empty, the
	// configured root patterns are expanded.
	Roots []string

	// DryRun reports planned work without changing anything.
	DryRun bool
}

// Result is the outcome of one link invocation.
type Result struct {
	// Mode is "smart" or "explicit".
	Mode string `json:"mode"`

	// Success is false for the smart-mode terminal states that degrade
	// to a message instead of an error.
	Success bool `json:"success"`

	// Message is the human-readable summary line.
	Message string `json:"message"`

	// Package is the current package's name (smart mode).
	Package string `json:"package,omitempty"`

	// Linked lists the dependency slots reconciled in smart mode.
	Linked []LinkedDependency `json:"linked,omitempty"`

	// Skipped lists link-set names with no known source (smart mode).
	Skipped []string `json:"skipped,omitempty"`

	// Packages lists the per-source results of explicit mode.
	Packages []PackageResult `json:"packages,omitempty"`

	// DryRun reports whether this was a dry run.
	DryRun bool `json:"dryRun"`
}

// LinkedDependency records one reconciled dependency slot.
type LinkedDependency struct {
	// Name is the dependency that was linked.
	Name string `json:"name"`

	// Source is the directory the slot now points at.
	Source string `json:"source"`

	// Action is what the reconciler did to the slot.
	Action symlink.Action `json:"action"`
}

// PackageResult records one source package processed in explicit mode.
type PackageResult struct {
	// Name of the source package.
	Name string `json:"name"`

	// Directory the source was registered from.
	Directory string `json:"directory"`

	// Consumers lists the consumer packages the source was linked into.
	Consumers []string `json:"consumers"`
}

// LinkPackages runs the link command and returns its result. Smart
// mode never returns an error: its terminal failures are descriptive
// results with Success false, so an unlinkable directory degrades to a
// no-op instead of breaking a developer's workflow. Explicit mode
// raises on invalid arguments, registration failures, and consumer
// relink failures.
func LinkPackages(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.link")
	logger.Debug().
		Str("workingDir", opts.WorkingDir).
		Str("argument", opts.Argument).
		Bool("dryRun", opts.DryRun).
		Msg("Starting link command")

	env, err := internal.NewEnv(internal.EnvOptions{
		WorkingDir: opts.WorkingDir,
		Config:     opts.Config,
		FS:         opts.FS,
		Client:     opts.Client,
		Roots:      opts.Roots,
	})
	if err != nil {
		return nil, err
	}

	if opts.Argument == "" {
		return linkSelf(ctx, env, opts.DryRun)
	}
	return linkExplicit(ctx, env, opts.Argument, opts.DryRun)
}
