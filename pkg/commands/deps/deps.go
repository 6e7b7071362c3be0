// Package deps implements the dependency report. It aggregates every
// dependency declared across the workspace's manifests into per-name
// usage lists, normalizes version specifiers so equivalent patterns
// compare equal, and flags a conflict when distinct normalized
// patterns coexist for one name. Align rewrites the dissenting
// manifests to the highest-floor pattern among the declarations.
package deps

import (
	"sort"

	"github.com/scopelink/scopelink/pkg/commands/internal"
	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/manifest"
	"github.com/scopelink/scopelink/pkg/types"
	"github.com/scopelink/scopelink/pkg/workspace"

	"github.com/Masterminds/semver/v3"
)

// Options configures the deps command
type Options struct {
	// WorkingDir is the directory the command was invoked from
	WorkingDir string

	// Config is the effective configuration; loaded from WorkingDir
	// when nil
	Config *config.Config

	// FS is the filesystem to scan; defaults to the operating system
	// filesystem
	FS types.FS

	// Roots overrides the configured workspace roots when non-empty
	Roots []string

	// ConflictsOnly restricts the report to dependencies whose
	// declared patterns disagree
	ConflictsOnly bool

	// Align names a dependency whose dissenting declarations should be
	// rewritten to the highest-floor pattern among them
	Align string

	// DryRun reports what Align would rewrite without touching any
	// manifest
	DryRun bool
}

// Result is the outcome of a deps command
type Result struct {
	// Dependencies lists every reported dependency, sorted by name
	Dependencies []Dependency `json:"dependencies"`

	// Scanned is the number of workspace packages inspected
	Scanned int `json:"scanned"`

	// Conflicts counts the conflicting dependencies across the whole
	// workspace, before any ConflictsOnly filtering
	Conflicts int `json:"conflicts"`

	// Aligned lists the manifest rewrites Align performed (or would
	// perform under DryRun)
	Aligned []Alignment `json:"aligned,omitempty"`

	// DryRun echoes Options.DryRun
	DryRun bool `json:"dryRun"`
}

// Dependency is one dependency name and everywhere it is declared
type Dependency struct {
	Name     string  `json:"name"`
	Usages   []Usage `json:"usages"`
	Conflict bool    `json:"conflict"`
}

// Usage is a single declaration of a dependency in one manifest
// section
type Usage struct {
	// Package is the name of the declaring package
	Package string `json:"package"`

	// Directory is the declaring package's directory
	Directory string `json:"directory"`

	// Section is the manifest section the declaration sits in
	Section string `json:"section"`

	// Spec is the version specifier as written
	Spec string `json:"spec"`

	// Normalized is the canonical form of Spec; equal to Spec for
	// non-semver specifiers
	Normalized string `json:"normalized"`
}

// Alignment records one manifest rewrite
type Alignment struct {
	Package string `json:"package"`
	Section string `json:"section"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Analyze builds the dependency report for the workspace and
// optionally aligns one dependency's declarations.
func Analyze(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.deps")
	logger.Debug().
		Str("workingDir", opts.WorkingDir).
		Str("align", opts.Align).
		Bool("conflictsOnly", opts.ConflictsOnly).
		Bool("dryRun", opts.DryRun).
		Msg("Starting deps command")

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

	usages := collectUsages(pkgs)
	result := &Result{Scanned: len(pkgs), DryRun: opts.DryRun}

	if opts.Align != "" {
		aligned, err := align(env.FS, usages, opts.Align, opts.DryRun)
		if err != nil {
			return nil, err
		}
		result.Aligned = aligned
	}

	for _, name := range sortedNames(usages) {
		dep := Dependency{
			Name:     name,
			Usages:   usages[name],
			Conflict: hasConflict(usages[name]),
		}
		if dep.Conflict {
			result.Conflicts++
		}
		if opts.ConflictsOnly && !dep.Conflict {
			continue
		}
		result.Dependencies = append(result.Dependencies, dep)
	}

	logger.Info().
		Int("dependencies", len(result.Dependencies)).
		Int("conflicts", result.Conflicts).
		Int("aligned", len(result.Aligned)).
		Msg("Dependency report built")
	return result, nil
}

// collectUsages walks every package's dependency sections. A package
// declaring the same name in two sections contributes two usages.
func collectUsages(pkgs []types.Package) map[string][]Usage {
	usages := make(map[string][]Usage)
	for i := range pkgs {
		pkg := &pkgs[i]
		for _, section := range types.SectionNames {
			deps := pkg.Section(section)
			for _, dep := range sortedKeys(deps) {
				spec := deps[dep]
				usages[dep] = append(usages[dep], Usage{
					Package:    pkg.Name,
					Directory:  pkg.Dir,
					Section:    section,
					Spec:       spec,
					Normalized: ParsePattern(spec).Normalized,
				})
			}
		}
	}
	return usages
}

// align rewrites every declaration of name whose specifier differs
// from the highest-floor pattern among them. Usages are updated in
// place so the report reflects the post-align state.
func align(fsys types.FS, usages map[string][]Usage, name string, dryRun bool) ([]Alignment, error) {
	logger := logging.GetLogger("commands.deps")

	declared := usages[name]
	if len(declared) == 0 {
		return nil, errors.Newf(errors.ErrNotFound, "no workspace package declares %s", name).
			WithDetail("dependency", name)
	}

	var target *Usage
	var targetFloor *semver.Version
	for i := range declared {
		floor, ok := ParsePattern(declared[i].Spec).Floor()
		if !ok {
			continue
		}
		if targetFloor == nil || floor.GreaterThan(targetFloor) {
			target = &declared[i]
			targetFloor = floor
		}
	}
	if target == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "cannot align %s: none of its declarations is a semver pattern", name).
			WithDetail("dependency", name)
	}

	var aligned []Alignment
	for i := range declared {
		usage := &declared[i]
		if usage.Spec == target.Spec {
			continue
		}
		if !dryRun {
			if err := manifest.UpdateDependency(fsys, usage.Directory, usage.Section, name, target.Spec); err != nil {
				return aligned, err
			}
		}
		logger.Info().
			Str("package", usage.Package).
			Str("section", usage.Section).
			Str("from", usage.Spec).
			Str("to", target.Spec).
			Bool("dryRun", dryRun).
			Msg("Aligned dependency declaration")
		aligned = append(aligned, Alignment{
			Package: usage.Package,
			Section: usage.Section,
			From:    usage.Spec,
			To:      target.Spec,
		})
		if !dryRun {
			usage.Spec = target.Spec
			usage.Normalized = target.Normalized
		}
	}
	return aligned, nil
}

func hasConflict(declared []Usage) bool {
	seen := make(map[string]struct{})
	for _, usage := range declared {
		seen[usage.Normalized] = struct{}{}
	}
	return len(seen) > 1
}

func sortedNames(usages map[string][]Usage) []string {
	names := make([]string, 0, len(usages))
	for name := range usages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
