package workspace

import (
	"strings"

	"github.com/scopelink/scopelink/pkg/types"
)

// FindConsumers returns the packages that directly declare target as a
// dependency in any section. The relation is deliberately one hop: a
// consumer's own consumers are not followed, so linking a package
// never cascades through the workspace.
func FindConsumers(pkgs []types.Package, target *types.Package) []types.Package {
	var consumers []types.Package
	for _, pkg := range pkgs {
		if pkg.Name == target.Name {
			continue
		}
		if pkg.HasDependency(target.Name) {
			consumers = append(consumers, pkg)
		}
	}
	return consumers
}

// MatchesPattern reports whether a dependency name matches a link
// pattern. A pattern is either an exact name or a bare scope matching
// every name in that scope.
func MatchesPattern(name, pattern string) bool {
	if pattern == name {
		return true
	}
	if strings.HasPrefix(pattern, "@") && !strings.Contains(pattern, "/") {
		return types.ScopeOf(name) == pattern
	}
	return false
}

// LinkSet selects which of self's dependencies a smart link should
// link: every dependency sharing self's scope, plus anything matching
// the configured patterns. The result keeps the sorted dependency
// order.
func LinkSet(self *types.Package, patterns []string) []string {
	scope := self.Scope()

	var deps []string
	for _, dep := range self.DependencyNames() {
		if scope != "" && types.ScopeOf(dep) == scope {
			deps = append(deps, dep)
			continue
		}
		for _, pattern := range patterns {
			if MatchesPattern(dep, pattern) {
				deps = append(deps, dep)
				break
			}
		}
	}
	return deps
}
