package link

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/scopelink/scopelink/pkg/commands/internal"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/manifest"
	"github.com/scopelink/scopelink/pkg/registry"
	"github.com/scopelink/scopelink/pkg/symlink"
	"github.com/scopelink/scopelink/pkg/types"
	"github.com/scopelink/scopelink/pkg/workspace"
)

// linkSelf links sibling packages into the current directory's
// package: register self globally (soft), compute the link set from
// same-scope dependencies plus configured patterns, resolve each name
// to a source directory, and reconcile the dependency slots. Every
// per-dependency failure is logged and skipped.
func linkSelf(ctx context.Context, env *internal.Env, dryRun bool) (*Result, error) {
	logger := logging.GetLogger("commands.link")
	result := &Result{Mode: "smart", DryRun: dryRun}

	self, err := manifest.Load(env.FS, env.WorkingDir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", env.WorkingDir).Msg("Cannot load current package manifest")
		result.Message = fmt.Sprintf("Cannot link %s: %v", env.WorkingDir, err)
		return result, nil
	}
	result.Package = self.Name

	if self.Scope() == "" {
		logger.Warn().Str("package", self.Name).Msg("Current package has no scope")
		result.Message = fmt.Sprintf("Package %s has no scope, nothing to link", self.Name)
		return result, nil
	}

	// Registration is soft: linking still works against whatever the
	// registry already holds.
	if dryRun {
		logger.Info().Str("package", self.Name).Msg("Dry run, skipping global registration")
	} else if err := env.Client.RegisterGlobal(ctx, self.Dir); err != nil {
		logger.Warn().Err(err).Str("package", self.Name).Msg("Global registration failed, continuing")
	}

	names := workspace.LinkSet(self, env.Config.Link.Patterns)
	if len(names) == 0 {
		result.Success = true
		result.Message = fmt.Sprintf("Self-linked %s, no dependencies to link", self.Name)
		return result, nil
	}

	logger.Debug().Strs("dependencies", names).Msg("Computed link set")
	sources := resolveSources(ctx, env, names)

	reconciler := symlink.NewReconciler(env.FS, dryRun)
	for _, name := range names {
		sourceDir, ok := sources[name]
		if !ok {
			// Not in any scope root and not registered: skip, don't fail.
			logger.Info().Str("dependency", name).Msg("No link source known, skipping")
			result.Skipped = append(result.Skipped, name)
			continue
		}

		outcome, err := reconciler.Ensure(self.Dir, name, sourceDir)
		if err != nil {
			logger.Warn().Err(err).Str("dependency", name).Msg("Failed to link dependency, continuing")
			result.Skipped = append(result.Skipped, name)
			continue
		}
		result.Linked = append(result.Linked, LinkedDependency{
			Name:   name,
			Source: sourceDir,
			Action: outcome.Action,
		})
	}

	// A stale lockfile only risks drift, not correctness.
	if len(result.Linked) > 0 && !dryRun {
		if err := env.Client.RegenerateLockfile(ctx, self.Dir); err != nil {
			logger.Warn().Err(err).Str("package", self.Name).Msg("Lockfile regeneration failed")
		}
	}

	result.Success = true
	if dryRun {
		result.Message = fmt.Sprintf("Would link %d package(s) into %s", len(result.Linked), self.Name)
	} else {
		result.Message = fmt.Sprintf("Linked %d package(s) into %s", len(result.Linked), self.Name)
	}
	return result, nil
}

// resolveSources maps each link-set name to a source directory. Scope
// roots win over the global registry: a configured local checkout is
// usable without any registration step. The registry is only queried
// when names remain unresolved.
func resolveSources(ctx context.Context, env *internal.Env, names []string) map[string]string {
	logger := logging.GetLogger("commands.link")
	sources := make(map[string]string)

	wanted := make(map[string]bool)
	for _, name := range names {
		if scope := types.ScopeOf(name); scope != "" {
			wanted[scope] = true
		}
	}

	for scope, root := range env.Config.Link.ScopeRoots {
		if !wanted[scope] {
			continue
		}
		dir := root
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(env.Config.Dir, dir)
		}
		pkgs, err := workspace.Discover(env.FS, []string{dir}, env.Config.Workspace.Ignore)
		if err != nil {
			logger.Warn().Err(err).Str("scope", scope).Str("dir", dir).Msg("Scope root discovery failed, skipping")
			continue
		}
		for _, pkg := range pkgs {
			if pkg.Scope() != scope {
				continue
			}
			sources[pkg.Name] = pkg.Dir
			logger.Debug().Str("package", pkg.Name).Str("dir", pkg.Dir).Msg("Resolved from scope root")
		}
	}

	unresolved := false
	for _, name := range names {
		if _, ok := sources[name]; !ok {
			unresolved = true
			break
		}
	}
	if !unresolved {
		return sources
	}

	global := registry.Discover(ctx, env.FS, env.Client, env.WorkingDir)
	for _, name := range names {
		if _, ok := sources[name]; ok {
			continue
		}
		if dir, ok := global[name]; ok {
			sources[name] = dir
		}
	}
	return sources
}
