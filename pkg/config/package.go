package config

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/paths"
	"github.com/scopelink/scopelink/pkg/types"
)

// PackageConfig carries the per-package settings from the [package]
// table of a .scopelink.toml sitting next to a package manifest. The
// workspace-level tables in the same file belong to Load; this reader
// ignores them.
type PackageConfig struct {
	Package PackageSettings `toml:"package"`
}

// PackageSettings controls how one package takes part in link
// operations.
type PackageSettings struct {
	// Link excludes the package from discovery when false. Existing
	// symlinks into consumers stay on disk; scopelink just stops
	// managing the package.
	Link *bool `toml:"link"`
}

// Linkable reports whether the package takes part in link operations.
func (c PackageConfig) Linkable() bool {
	return c.Package.Link == nil || *c.Package.Link
}

// LoadPackageConfig reads the per-package settings for the package in
// dir. A missing config file yields the defaults.
func LoadPackageConfig(fsys types.FS, dir string) (PackageConfig, error) {
	path := filepath.Join(dir, paths.WorkspaceConfigTOML)

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return PackageConfig{}, nil
		}
		return PackageConfig{}, errors.Wrap(err, errors.ErrFileAccess, "failed to read package config").
			WithDetail("path", path)
	}

	var cfg PackageConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return PackageConfig{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse package config").
			WithDetail("path", path)
	}

	logging.GetLogger("config").Debug().
		Str("path", path).
		Bool("linkable", cfg.Linkable()).
		Msg("Package config loaded")

	return cfg, nil
}
