package config

// Config is the effective scopelink configuration after all layers
// have been merged
type Config struct {
	Workspace WorkspaceConfig `koanf:"workspace"`
	Manager   ManagerConfig   `koanf:"manager"`
	Link      LinkConfig      `koanf:"link"`
	Unlink    UnlinkConfig    `koanf:"unlink"`

	// Dir is the workspace directory the config was loaded for. It is
	// not a config key; Load fills it in.
	Dir string `koanf:"-"`
}

// WorkspaceConfig controls package discovery
type WorkspaceConfig struct {
	// Roots are glob patterns, relative to the workspace directory,
	// naming the directories scanned for package manifests
	Roots []string `koanf:"roots"`

	// Ignore are glob patterns for directories discovery skips
	Ignore []string `koanf:"ignore"`
}

// ManagerConfig names the package manager scopelink shells out to
type ManagerConfig struct {
	Bin      string `koanf:"bin"`
	Lockfile string `koanf:"lockfile"`
}

// LinkConfig controls which dependencies get linked and where their
// sources are looked up
type LinkConfig struct {
	// Patterns are extra dependency names or scopes to link beyond
	// same-scope matches
	Patterns []string `koanf:"patterns"`

	// ScopeRoots maps a scope to a directory hosting that scope's
	// packages, consulted before the global link registry
	ScopeRoots map[string]string `koanf:"scope_roots"`
}

// UnlinkConfig controls unlink behavior
type UnlinkConfig struct {
	Patterns []string `koanf:"patterns"`
	Clean    bool     `koanf:"clean"`
}
