// Package workspace discovers packages and derives the relations that
// link operations act on: scope and argument matching, the one-hop
// consumer graph, and the per-package link records behind the status
// report.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/manifest"
	"github.com/scopelink/scopelink/pkg/paths"
	"github.com/scopelink/scopelink/pkg/types"
)

// ExpandRoots resolves configured root patterns into existing
// directories. Patterns are globs relative to workspaceDir
// ("packages/*", "libs/**"); absolute patterns are taken as-is. The
// result is cleaned, deduplicated, and sorted. Root expansion runs
// against the real filesystem: it happens once at startup, before any
// abstracted workspace operation.
func ExpandRoots(workspaceDir string, patterns []string) ([]string, error) {
	logger := logging.GetLogger("workspace.discovery")

	seen := make(map[string]struct{})
	var roots []string
	for _, pattern := range patterns {
		abs := pattern
		if !filepath.IsAbs(pattern) {
			abs = filepath.Join(workspaceDir, pattern)
		}

		matches, err := doublestar.FilepathGlob(abs)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid root pattern").
				WithDetail("pattern", pattern)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				continue
			}
			clean := filepath.Clean(match)
			if _, dup := seen[clean]; dup {
				continue
			}
			seen[clean] = struct{}{}
			roots = append(roots, clean)
		}
	}

	sort.Strings(roots)
	if len(roots) == 0 {
		logger.Warn().Strs("patterns", patterns).Msg("No root directories matched")
	} else {
		logger.Debug().Strs("roots", roots).Msg("Expanded workspace roots")
	}
	return roots, nil
}

// Discover walks each root looking for package manifests. Dependency
// trees (node_modules), hidden directories, and ignore-pattern matches
// are never descended into. A directory whose manifest fails to load
// is skipped with a warning; the walk continues. A package whose
// .scopelink.toml sets link = false under [package] is left out.
// Packages are sorted by name; when two directories declare the same
// name the first found wins.
func Discover(fsys types.FS, roots []string, ignore []string) ([]types.Package, error) {
	d := &discoverer{
		fs:        fsys,
		ignore:    ignore,
		logger:    logging.GetLogger("workspace.discovery"),
		seenDirs:  make(map[string]struct{}),
		seenNames: make(map[string]string),
	}

	for _, root := range roots {
		d.walk(root, root)
	}

	sort.Slice(d.pkgs, func(i, j int) bool {
		return d.pkgs[i].Name < d.pkgs[j].Name
	})

	d.logger.Info().Int("count", len(d.pkgs)).Msg("Discovered workspace packages")
	return d.pkgs, nil
}

type discoverer struct {
	fs        types.FS
	ignore    []string
	logger    zerolog.Logger
	seenDirs  map[string]struct{}
	seenNames map[string]string
	pkgs      []types.Package
}

func (d *discoverer) walk(root, dir string) {
	clean := filepath.Clean(dir)
	if _, visited := d.seenDirs[clean]; visited {
		return
	}
	d.seenDirs[clean] = struct{}{}

	if _, err := d.fs.Stat(paths.ManifestPath(dir)); err == nil {
		d.load(dir)
	}

	entries, err := d.fs.ReadDir(dir)
	if err != nil {
		d.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory, skipping")
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		if name == paths.ModulesDirName {
			d.logger.Trace().Str("dir", dir).Msg("Skipping dependency tree")
			continue
		}
		if strings.HasPrefix(name, ".") {
			continue
		}

		child := filepath.Join(dir, name)
		if d.ignored(root, child) {
			d.logger.Trace().Str("dir", child).Msg("Skipping ignored directory")
			continue
		}

		d.walk(root, child)
	}
}

func (d *discoverer) load(dir string) {
	pkg, err := manifest.Load(d.fs, dir)
	if err != nil {
		// Log the error but continue with other packages
		d.logger.Warn().
			Err(err).
			Str("dir", dir).
			Msg("Failed to load package manifest, skipping")
		return
	}

	if pkgCfg, err := config.LoadPackageConfig(d.fs, dir); err != nil {
		d.logger.Warn().
			Err(err).
			Str("dir", dir).
			Msg("Malformed package config, treating package as linkable")
	} else if !pkgCfg.Linkable() {
		d.logger.Debug().
			Str("package", pkg.Name).
			Str("dir", dir).
			Msg("Package opted out of linking")
		return
	}

	if existing, dup := d.seenNames[pkg.Name]; dup {
		d.logger.Warn().
			Str("package", pkg.Name).
			Str("kept", existing).
			Str("ignored", dir).
			Msg("Duplicate package name, keeping first occurrence")
		return
	}
	d.seenNames[pkg.Name] = dir

	d.pkgs = append(d.pkgs, *pkg)
	d.logger.Trace().
		Str("package", pkg.Name).
		Str("dir", dir).
		Msg("Discovered package")
}

// ignored reports whether path matches any ignore pattern. Patterns
// match against the slash-form path relative to the root, so
// "**/node_modules" style globs work at any depth.
func (d *discoverer) ignored(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range d.ignore {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}
