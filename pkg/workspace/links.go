package workspace

import (
	"os"
	"strings"

	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/paths"
	"github.com/scopelink/scopelink/pkg/symlink"
	"github.com/scopelink/scopelink/pkg/types"
)

// CollectLinks inspects every package's declared dependency slots and
// reports the symlinked ones. The stored target is reported verbatim;
// the external classification comes from resolving it against the
// slot's location and checking containment in the scanned roots.
func CollectLinks(fsys types.FS, pkgs []types.Package, roots []string) []types.PackageLinks {
	logger := logging.GetLogger("workspace.links")

	report := make([]types.PackageLinks, 0, len(pkgs))
	for _, pkg := range pkgs {
		links := types.PackageLinks{
			Name:  pkg.Name,
			Dir:   pkg.Dir,
			Links: []types.LinkRecord{},
		}

		for _, dep := range pkg.DependencyNames() {
			slot := paths.DependencySlot(pkg.Dir, dep)

			info, err := fsys.Lstat(slot)
			if err != nil {
				if !os.IsNotExist(err) {
					logger.Warn().Err(err).Str("slot", slot).Msg("Cannot inspect slot")
				}
				continue
			}
			if info.Mode()&os.ModeSymlink == 0 {
				continue
			}

			stored, err := fsys.Readlink(slot)
			if err != nil {
				logger.Warn().Err(err).Str("slot", slot).Msg("Cannot read link target")
				continue
			}

			resolved := symlink.Resolve(slot, stored)
			links.Links = append(links.Links, types.LinkRecord{
				Dependency: dep,
				Target:     stored,
				Resolved:   resolved,
				IsExternal: !underAny(resolved, roots),
			})
		}

		report = append(report, links)
	}

	return report
}

// underAny reports whether path lies inside any of the roots
func underAny(path string, roots []string) bool {
	for _, root := range roots {
		if path == root || strings.HasPrefix(path, root+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
