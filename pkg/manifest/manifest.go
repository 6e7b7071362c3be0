// Package manifest reads and writes package manifest files
// (package.json). Reads validate into types.Package; writes go through
// an order-preserving document editor so a rewritten manifest only
// differs in the fields that changed.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/paths"
	"github.com/scopelink/scopelink/pkg/types"
)

// Load reads and validates the package manifest in dir. The returned
// package has Dir filled in. A manifest that parses but carries no
// name is invalid: nothing can be linked under an empty name.
func Load(fsys types.FS, dir string) (*types.Package, error) {
	path := paths.ManifestPath(dir)

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrManifestNotFound, "no package manifest").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read package manifest").
			WithDetail("path", path)
	}

	var pkg types.Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestInvalid, "cannot parse package manifest").
			WithDetail("path", path)
	}

	if pkg.Name == "" {
		return nil, errors.New(errors.ErrManifestInvalid, "package manifest has no name").
			WithDetail("path", path)
	}

	pkg.Dir = dir
	return &pkg, nil
}

// UpdateDependency rewrites one dependency's version specifier in the
// manifest in dir, preserving member order and formatting conventions
// (two-space indent, trailing newline).
func UpdateDependency(fsys types.FS, dir, section, depName, spec string) error {
	logger := logging.GetLogger("manifest")
	path := paths.ManifestPath(dir)

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(err, errors.ErrManifestNotFound, "no package manifest").
				WithDetail("path", path)
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot read package manifest").
			WithDetail("path", path)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return errors.Wrap(err, errors.ErrManifestInvalid, "cannot parse package manifest").
			WithDetail("path", path)
	}

	doc.SetDependency(section, depName, spec)

	if err := fsys.WriteFile(path, doc.Encode(), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot write package manifest").
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Str("section", section).
		Str("dependency", depName).
		Str("spec", spec).
		Msg("Updated manifest dependency")
	return nil
}
