// Package internal carries the execution environment and target
// selection logic shared by the scopelink command orchestrators.
package internal

import (
	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/filesystem"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/npm"
	"github.com/scopelink/scopelink/pkg/types"
	"github.com/scopelink/scopelink/pkg/workspace"
)

// EnvOptions names the injectable pieces of a command's execution
// environment. Any nil or empty member is resolved from configuration
// defaults by NewEnv.
type EnvOptions struct {
	// WorkingDir is the directory the command was invoked from.
	WorkingDir string

	// Config is the effective configuration. Loaded from WorkingDir
	// when nil.
	Config *config.Config

	// FS is the filesystem used for discovery and reconciliation.
	// Defaults to the operating system filesystem.
	FS types.FS

	// Client runs package manager operations. Defaults to an exec
	// client using the configured manager binary.
	Client *npm.Client

	// Roots lists the workspace root directories to scan. When empty,
	// the configured root patterns are expanded relative to the
	// workspace directory.
	Roots []string
}

// Env is the resolved environment a command runs against.
type Env struct {
	WorkingDir string
	Config     *config.Config
	FS         types.FS
	Client     *npm.Client
	Roots      []string
}

// NewEnv resolves the unset members of opts and returns the complete
// environment. Configuration and root-pattern failures are fatal here;
// nothing downstream can run without them.
func NewEnv(opts EnvOptions) (*Env, error) {
	logger := logging.GetLogger("commands.internal")

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(opts.WorkingDir)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	client := opts.Client
	if client == nil {
		client = npm.NewExecClient(cfg.Manager.Bin)
	}

	roots := opts.Roots
	if len(roots) == 0 {
		expanded, err := workspace.ExpandRoots(cfg.Dir, cfg.Workspace.Roots)
		if err != nil {
			return nil, err
		}
		roots = expanded
	}

	logger.Debug().
		Str("workingDir", opts.WorkingDir).
		Strs("roots", roots).
		Str("manager", cfg.Manager.Bin).
		Msg("Command environment resolved")

	return &Env{
		WorkingDir: opts.WorkingDir,
		Config:     cfg,
		FS:         fsys,
		Client:     client,
		Roots:      roots,
	}, nil
}
