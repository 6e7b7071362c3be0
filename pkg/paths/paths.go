// Package paths provides centralized path handling for scopelink.
// It implements XDG Base Directory specification compliance and maps
// dependency names to their module-resolution slots.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for scopelink
	EnvConfigDir = "SCOPELINK_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for scopelink
	EnvStateDir = "SCOPELINK_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Well-known file and directory names. These are fixed conventions of
// the package ecosystem and of scopelink itself, not user-configurable
// paths; user-configurable settings belong in pkg/config.
const (
	// AppDirName is the directory name for scopelink-specific files
	AppDirName = "scopelink"

	// UserConfigFile is the user-level configuration file name
	UserConfigFile = "scopelink.toml"

	// WorkspaceConfigTOML is the workspace configuration file name
	WorkspaceConfigTOML = ".scopelink.toml"

	// WorkspaceConfigYAML is the YAML workspace configuration file name
	WorkspaceConfigYAML = ".scopelink.yaml"

	// LogFileName is the name of the log file
	LogFileName = "scopelink.log"

	// ManifestFile is the package manifest file name
	ManifestFile = "package.json"

	// ModulesDirName is the module-resolution directory name
	ModulesDirName = "node_modules"
)

// Paths provides centralized path management for scopelink
type Paths interface {
	ConfigDir() string
	StateDir() string
	UserConfigPath() string
	LogFilePath() string
}

// paths provides centralized path management for scopelink
type paths struct {
	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance, respecting environment overrides
func New() Paths {
	p := &paths{}

	// Config directory
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.xdgState = filepath.Join(stateHome, AppDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}

	return p
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) StateDir() string {
	return p.xdgState
}

// UserConfigPath returns the path to the user-level config file
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// DependencySlot returns the canonical module-resolution path for a
// dependency inside consumerDir. Scoped names nest one extra directory
// level: "@acme/core" resolves at node_modules/@acme/core.
func DependencySlot(consumerDir, dependency string) string {
	return filepath.Join(consumerDir, ModulesDirName, filepath.FromSlash(dependency))
}

// ManifestPath returns the path to the package manifest in dir
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestFile)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}
		if path == "~" {
			return homeDir
		}
		if strings.HasPrefix(path, "~/") {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}
