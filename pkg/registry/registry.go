// Package registry reads the package manager's global link registry.
// Every globally linked package shows up as a directory; entries
// whose directory has no valid named manifest are dropped. The
// registry is advisory: when the query itself fails scopelink
// degrades to an empty registry instead of failing the operation.
package registry

import (
	"context"

	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/manifest"
	"github.com/scopelink/scopelink/pkg/npm"
	"github.com/scopelink/scopelink/pkg/types"
)

// Discover queries the global link registry and maps package name to
// source directory. A failed query logs a warning and returns an
// empty map; a registry entry without a valid named manifest is
// skipped.
func Discover(ctx context.Context, fsys types.FS, client *npm.Client, dir string) map[string]string {
	logger := logging.GetLogger("registry")

	dirs, err := client.GlobalLinkDirs(ctx, dir)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("Global link registry unavailable, continuing with empty registry")
		return map[string]string{}
	}

	entries := make(map[string]string)
	for _, entryDir := range dirs {
		pkg, err := manifest.Load(fsys, entryDir)
		if err != nil {
			logger.Debug().
				Str("dir", entryDir).
				Err(err).
				Msg("Skipping registry entry without a valid manifest")
			continue
		}
		entries[pkg.Name] = entryDir
	}

	logger.Debug().Int("entries", len(entries)).Msg("Discovered global link registry")
	return entries
}
