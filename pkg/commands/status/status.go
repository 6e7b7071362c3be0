// Package status implements the read-only link report: every
// workspace package with at least one symlinked dependency, and where
// each link points. It is reachable as the status subcommand and as
// the literal "status" argument to link and unlink.
package status

import (
	"github.com/scopelink/scopelink/pkg/commands/internal"
	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/types"
	"github.com/scopelink/scopelink/pkg/workspace"
)

// Options contains options for the status command.
type Options struct {
	// WorkingDir is the directory status was invoked from.
	WorkingDir string

	// Config is the effective configuration. Loaded from WorkingDir
	// when nil.
	Config *config.Config

	// FS is the filesystem to scan. Defaults to the operating system
	// filesystem.
	FS types.FS

	// Roots lists the workspace root directories. When empty, the
	// configured root patterns are expanded.
	Roots []string
}

// Result is the link report.
type Result struct {
	// Packages lists every workspace package carrying at least one
	// symlinked dependency.
	Packages []types.PackageLinks `json:"packages"`

	// Scanned is the number of workspace packages examined.
	Scanned int `json:"scanned"`

	// Roots are the directories that were scanned.
	Roots []string `json:"roots"`
}

// GetStatus scans the workspace and reports its symlinked
// dependencies. Nothing is mutated and no subprocess runs.
func GetStatus(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.status")
	logger.Debug().
		Str("workingDir", opts.WorkingDir).
		Msg("Starting status command")

	env, err := internal.NewEnv(internal.EnvOptions{
		WorkingDir: opts.WorkingDir,
		Config:     opts.Config,
		FS:         opts.FS,
		Roots:      opts.Roots,
	})
	if err != nil {
		return nil, err
	}

	pkgs, err := workspace.Discover(env.FS, env.Roots, env.Config.Workspace.Ignore)
	if err != nil {
		return nil, err
	}

	linked := make([]types.PackageLinks, 0)
	for _, links := range workspace.CollectLinks(env.FS, pkgs, env.Roots) {
		if len(links.Links) == 0 {
			continue
		}
		linked = append(linked, links)
	}

	logger.Info().
		Int("packages", len(linked)).
		Int("scanned", len(pkgs)).
		Msg("Collected link status")

	return &Result{Packages: linked, Scanned: len(pkgs), Roots: env.Roots}, nil
}
