// Package commands provides scopelink's high-level command
// implementations, the orchestration layer between the CLI and the
// domain packages.
//
// Each command lives in its own subdirectory:
//   - link/   - LinkPackages, smart and explicit linking
//   - unlink/ - UnlinkPackages, the reverse direction plus --clean
//   - status/ - GetStatus, the read-only link inventory
//   - deps/   - Analyze, the dependency version report and --align
//   - internal/ - shared environment and target selection
//
// This file re-exports the command entry points so callers can depend
// on a single package.
package commands

import (
	"context"

	"github.com/scopelink/scopelink/pkg/commands/deps"
	"github.com/scopelink/scopelink/pkg/commands/link"
	"github.com/scopelink/scopelink/pkg/commands/status"
	"github.com/scopelink/scopelink/pkg/commands/unlink"
)

// LinkPackages links workspace packages for local development.
type LinkOptions = link.Options

func LinkPackages(ctx context.Context, opts LinkOptions) (*link.Result, error) {
	return link.LinkPackages(ctx, opts)
}

// UnlinkPackages restores registry-installed dependencies.
type UnlinkOptions = unlink.Options

func UnlinkPackages(ctx context.Context, opts UnlinkOptions) (*unlink.Result, error) {
	return unlink.UnlinkPackages(ctx, opts)
}

// GetStatus reports every symlinked dependency in the workspace.
type StatusOptions = status.Options

func GetStatus(opts StatusOptions) (*status.Result, error) {
	return status.GetStatus(opts)
}

// AnalyzeDeps builds the workspace dependency version report.
type DepsOptions = deps.Options

func AnalyzeDeps(opts DepsOptions) (*deps.Result, error) {
	return deps.Analyze(opts)
}
