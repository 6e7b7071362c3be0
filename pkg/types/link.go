package types

// LinkRecord describes one symlinked dependency found inside a
// package's module-resolution directory
type LinkRecord struct {
	// Dependency is the dependency name the slot belongs to
	Dependency string `json:"dependency"`

	// Target is the symlink target exactly as stored on disk
	Target string `json:"target"`

	// Resolved is the absolute path the stored target resolves to
	Resolved string `json:"resolved"`

	// IsExternal is true when the resolved target lies outside every
	// scanned workspace root
	IsExternal bool `json:"isExternal"`
}

// PackageLinks groups the link records found for one package, for the
// status report
type PackageLinks struct {
	// Name of the package the links belong to
	Name string `json:"name"`

	// Dir is the package directory that was scanned
	Dir string `json:"dir"`

	// Links are the symlinked dependencies, sorted by dependency name
	Links []LinkRecord `json:"links"`
}
