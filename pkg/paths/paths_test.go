// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test XDG path resolution and dependency slot mapping

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/scopelink/scopelink/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/custom/config")
	t.Setenv(paths.EnvStateDir, "/custom/state")

	p := paths.New()

	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, "/custom/state", p.StateDir())
	assert.Equal(t, "/custom/config/scopelink.toml", p.UserConfigPath())
	assert.Equal(t, "/custom/state/scopelink.log", p.LogFilePath())
}

func TestNew_XDGStateHome(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	p := paths.New()

	assert.Equal(t, filepath.Join("/xdg/state", "scopelink"), p.StateDir())
}

func TestDependencySlot(t *testing.T) {
	tests := []struct {
		name       string
		dependency string
		expected   string
	}{
		{
			name:       "unscoped_dependency",
			dependency: "lodash",
			expected:   "/workspace/app/node_modules/lodash",
		},
		{
			name:       "scoped_dependency_nests_by_scope",
			dependency: "@acme/core",
			expected:   "/workspace/app/node_modules/@acme/core",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paths.DependencySlot("/workspace/app", tt.dependency)
			assert.Equal(t, filepath.FromSlash(tt.expected), got)
		})
	}
}

func TestManifestPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/workspace", "app", "package.json"),
		paths.ManifestPath(filepath.Join("/workspace", "app")))
}
