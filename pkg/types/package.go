package types

import (
	"sort"
	"strings"
)

// Dependency section names as they appear in a package manifest.
const (
	SectionDependencies         = "dependencies"
	SectionDevDependencies      = "devDependencies"
	SectionPeerDependencies     = "peerDependencies"
	SectionOptionalDependencies = "optionalDependencies"
)

// SectionNames lists the manifest dependency sections in their
// conventional order.
var SectionNames = []string{
	SectionDependencies,
	SectionDevDependencies,
	SectionPeerDependencies,
	SectionOptionalDependencies,
}

// Package represents one workspace package, built from its manifest
type Package struct {
	// Name is the package name from the manifest (e.g. "@acme/widgets")
	Name string `json:"name"`

	// Version is the declared package version, if any
	Version string `json:"version,omitempty"`

	// Dependency sections, each mapping dependency name to version spec
	Dependencies         map[string]string `json:"dependencies,omitempty"`
	DevDependencies      map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies     map[string]string `json:"peerDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`

	// Dir is the absolute path to the package directory. It is not part
	// of the manifest; discovery fills it in.
	Dir string `json:"-"`
}

// ScopeOf returns the @-prefixed scope of a package name, or "" for an
// unscoped name. For "@acme/widgets" this is "@acme".
func ScopeOf(name string) string {
	if !strings.HasPrefix(name, "@") {
		return ""
	}
	if i := strings.Index(name, "/"); i > 0 {
		return name[:i]
	}
	return name
}

// Scope returns the package's own scope, or "" if its name is unscoped
func (p *Package) Scope() string {
	return ScopeOf(p.Name)
}

// Section returns the named dependency section, or nil if the section
// is unknown or empty
func (p *Package) Section(name string) map[string]string {
	switch name {
	case SectionDependencies:
		return p.Dependencies
	case SectionDevDependencies:
		return p.DevDependencies
	case SectionPeerDependencies:
		return p.PeerDependencies
	case SectionOptionalDependencies:
		return p.OptionalDependencies
	}
	return nil
}

// HasDependency reports whether depName appears in any of the four
// dependency sections
func (p *Package) HasDependency(depName string) bool {
	for _, section := range SectionNames {
		if _, ok := p.Section(section)[depName]; ok {
			return true
		}
	}
	return false
}

// DependencyNames returns the union of dependency names across all four
// sections, sorted for deterministic iteration
func (p *Package) DependencyNames() []string {
	seen := make(map[string]struct{})
	for _, section := range SectionNames {
		for dep := range p.Section(section) {
			seen[dep] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for dep := range seen {
		names = append(names, dep)
	}
	sort.Strings(names)
	return names
}

// VersionSpec returns the declared version specifier for depName and
// the section it was found in. Sections are checked in conventional
// order; the first hit wins.
func (p *Package) VersionSpec(depName string) (spec, section string, ok bool) {
	for _, name := range SectionNames {
		if v, found := p.Section(name)[depName]; found {
			return v, name, true
		}
	}
	return "", "", false
}
