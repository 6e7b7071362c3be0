// Package unlink implements the unlink command, the mirror of link.
// Smart mode restores the current directory's package: external links
// matching the configured patterns are removed, the global
// self-registration is dropped, and an optional clean reinstalls real
// versions from the registry. Explicit mode detaches matching
// workspace packages from their direct consumers.
//
// Failure handling mirrors link asymmetrically on purpose: explicit
// link aborts on the first consumer failure, explicit unlink logs each
// consumer failure and keeps going.
package unlink

import (
	"context"

	"github.com/scopelink/scopelink/pkg/commands/internal"
	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/npm"
	"github.com/scopelink/scopelink/pkg/symlink"
	"github.com/scopelink/scopelink/pkg/types"
	"github.com/scopelink/scopelink/pkg/ui/confirmations"
)

// Options contains options for the unlink command.
type Options struct {
	// WorkingDir is the directory unlink was invoked from. Smart mode
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

	// Clean removes the dependency tree and lockfile after unlinking
	// and reinstalls from the registry. Smart mode only.
	Clean bool

	// Force skips the clean confirmation prompt.
	Force bool

	// Confirmer approves the destructive clean. Defaults to the
	// terminal prompt.
	Confirmer confirmations.Confirmer

	// DryRun reports planned work without changing anything.
	DryRun bool
}

// Result is the outcome of one unlink invocation.
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

	// Removed lists the dependency slots removed in smart mode.
	Removed []RemovedLink `json:"removed,omitempty"`

	// Residual lists same-scope links still present after a smart
	// unlink without clean.
	Residual []string `json:"residual,omitempty"`

	// Cleaned reports whether the destructive clean ran to completion.
	Cleaned bool `json:"cleaned"`

	// Packages lists the per-source results of explicit mode.
	Packages []PackageResult `json:"packages,omitempty"`

	// DryRun reports whether this was a dry run.
	DryRun bool `json:"dryRun"`
}

// RemovedLink records one removed dependency slot.
type RemovedLink struct {
	// Name is the dependency whose slot was removed.
	Name string `json:"name"`

	// Target is the symlink target the slot held, as stored.
	Target string `json:"target,omitempty"`

	// Action is what the reconciler did to the slot.
	Action symlink.Action `json:"action"`
}

// PackageResult records one source package processed in explicit mode.
type PackageResult struct {
	// Name of the source package.
	Name string `json:"name"`

	// Directory the source lives in.
	Directory string `json:"directory"`

	// Consumers lists the consumer packages the source was detached
	// from.
	Consumers []string `json:"consumers,omitempty"`

	// Failures lists consumers whose slots could not be removed; each
	// was logged and skipped.
	Failures []string `json:"failures,omitempty"`
}

// UnlinkPackages runs the unlink command and returns its result.
// Smart mode raises only when the destructive clean fails; everything
// else degrades to logged warnings. Explicit mode raises only on an
// invalid or unmatched argument.
func UnlinkPackages(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.unlink")
	logger.Debug().
		Str("workingDir", opts.WorkingDir).
		Str("argument", opts.Argument).
		Bool("clean", opts.Clean).
		Bool("dryRun", opts.DryRun).
		Msg("Starting unlink command")

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
		return unlinkSelf(ctx, env, opts)
	}
	return unlinkExplicit(ctx, env, opts)
}
