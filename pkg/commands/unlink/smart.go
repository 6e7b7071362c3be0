package unlink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scopelink/scopelink/pkg/commands/internal"
	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/manifest"
	"github.com/scopelink/scopelink/pkg/paths"
	"github.com/scopelink/scopelink/pkg/symlink"
	"github.com/scopelink/scopelink/pkg/types"
	"github.com/scopelink/scopelink/pkg/ui/confirmations"
	"github.com/scopelink/scopelink/pkg/workspace"
)

// unlinkSelf restores the current directory's package: remove external
// links matching the unlink patterns, drop the global registration,
// optionally clean and reinstall, then scan for leftover same-scope
// links. Only a failed reinstall unwinds; a package that was never
// linked unlinks to a clean no-op.
func unlinkSelf(ctx context.Context, env *internal.Env, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.unlink")
	result := &Result{Mode: "smart", DryRun: opts.DryRun}

	self, err := manifest.Load(env.FS, env.WorkingDir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", env.WorkingDir).Msg("Cannot load current package manifest")
		result.Message = fmt.Sprintf("Cannot unlink %s: %v", env.WorkingDir, err)
		return result, nil
	}
	result.Package = self.Name

	// External-pattern slots first, each failure logged and skipped.
	reconciler := symlink.NewReconciler(env.FS, opts.DryRun)
	for _, name := range self.DependencyNames() {
		if !matchesAny(name, env.Config.Unlink.Patterns) {
			continue
		}
		outcome, err := reconciler.Remove(self.Dir, name)
		if err != nil {
			logger.Warn().Err(err).Str("dependency", name).Msg("Failed to unlink dependency, continuing")
			continue
		}
		if outcome.Action == symlink.ActionAbsent {
			continue
		}
		result.Removed = append(result.Removed, RemovedLink{
			Name:   name,
			Target: outcome.Target,
			Action: outcome.Action,
		})
	}

	// Not being registered is a steady state, not a failure.
	if opts.DryRun {
		logger.Info().Str("package", self.Name).Msg("Dry run, skipping global deregistration")
	} else if err := env.Client.Deregister(ctx, self.Dir, self.Name); err != nil {
		logger.Warn().Err(err).Str("package", self.Name).Msg("Global deregistration failed, continuing")
	}

	if opts.Clean {
		cleaned, err := runClean(ctx, env, opts, self)
		if err != nil {
			return nil, err
		}
		result.Cleaned = cleaned
	}

	// Same-scope links survive a non-clean unlink; the operator needs
	// to know registry versions are still shadowed.
	if scope := self.Scope(); scope != "" {
		for _, links := range workspace.CollectLinks(env.FS, []types.Package{*self}, env.Roots) {
			for _, record := range links.Links {
				if types.ScopeOf(record.Dependency) != scope {
					continue
				}
				result.Residual = append(result.Residual, record.Dependency)
			}
		}
		if len(result.Residual) > 0 {
			logger.Warn().
				Strs("dependencies", result.Residual).
				Msg("Same-scope links remain, rerun with --clean to restore registry versions")
		}
	}

	result.Success = true
	switch {
	case opts.DryRun:
		result.Message = fmt.Sprintf("Would unlink %s", self.Name)
	case result.Cleaned:
		result.Message = fmt.Sprintf("Unlinked %s and reinstalled dependencies", self.Name)
	default:
		result.Message = fmt.Sprintf("Unlinked %s", self.Name)
	}
	return result, nil
}

// runClean removes the dependency tree and lockfile, then reinstalls
// from the registry. The reinstall must succeed: stopping after the
// removals would leave the package with no dependencies at all.
func runClean(ctx context.Context, env *internal.Env, opts Options, self *types.Package) (bool, error) {
	logger := logging.GetLogger("commands.unlink")

	if opts.DryRun {
		logger.Info().Str("package", self.Name).Msg("Dry run, skipping clean")
		return false, nil
	}

	if !opts.Force {
		confirmer := opts.Confirmer
		if confirmer == nil {
			confirmer = confirmations.NewConsole()
		}
		prompt := fmt.Sprintf("Remove %s and %s from %s and reinstall?",
			paths.ModulesDirName, env.Config.Manager.Lockfile, self.Name)
		approved, err := confirmer.Confirm(prompt)
		if err != nil {
			return false, errors.Wrap(err, errors.ErrInternal, "clean confirmation failed")
		}
		if !approved {
			logger.Info().Str("package", self.Name).Msg("Clean declined, skipping")
			return false, nil
		}
	}

	modules := filepath.Join(self.Dir, paths.ModulesDirName)
	if err := env.FS.RemoveAll(modules); err != nil {
		return false, errors.Wrap(err, errors.ErrFileAccess, "cannot remove dependency tree").
			WithDetail("path", modules)
	}
	lockfile := filepath.Join(self.Dir, env.Config.Manager.Lockfile)
	if err := env.FS.Remove(lockfile); err != nil && !os.IsNotExist(err) {
		return false, errors.Wrap(err, errors.ErrFileAccess, "cannot remove lockfile").
			WithDetail("path", lockfile)
	}

	if err := env.Client.Install(ctx, self.Dir); err != nil {
		return false, err
	}

	logger.Info().Str("package", self.Name).Msg("Reinstalled dependencies from the registry")
	return true, nil
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if workspace.MatchesPattern(name, pattern) {
			return true
		}
	}
	return false
}
