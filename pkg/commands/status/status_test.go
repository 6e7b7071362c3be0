// pkg/commands/status/status_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS
// PURPOSE: Test the link report, including internal versus external
// target classification

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/testutil"
	"github.com/scopelink/scopelink/pkg/types"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Workspace: config.WorkspaceConfig{
			Roots:  []string{"."},
			Ignore: []string{"**/node_modules", "**/.git"},
		},
		Manager: config.ManagerConfig{Bin: "npm", Lockfile: "package-lock.json"},
		Dir:     dir,
	}
}

func statusOptions(fs *testutil.MemoryFS) Options {
	return Options{
		WorkingDir: "/ws",
		Config:     testConfig("/ws"),
		FS:         fs,
		Roots:      []string{"/ws"},
	}
}

func TestGetStatus_ClassifiesInternalAndExternal(t *testing.T) {
	// Setup: one link inside the workspace, one into another checkout
	fs := testutil.NewMemoryFS()
	testutil.WriteManifest(t, fs, "/ws/a", types.Package{Name: "@acme/a"})
	testutil.WriteManifest(t, fs, "/ws/consumer", types.Package{
		Name: "@acme/consumer",
		Dependencies: map[string]string{
			"@acme/a":   "^1.0.0",
			"@acme/sdk": "^2.0.0",
		},
	})
	testutil.MustSymlink(t, fs, "../../../a", "/ws/consumer/node_modules/@acme/a")
	testutil.MustSymlink(t, fs, "/Users/dev/other-workspace/sdk", "/ws/consumer/node_modules/@acme/sdk")

	// Execute
	result, err := GetStatus(statusOptions(fs))

	// Verify
	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	require.Len(t, result.Packages, 1)

	links := result.Packages[0]
	assert.Equal(t, "@acme/consumer", links.Name)
	require.Len(t, links.Links, 2)

	internal := links.Links[0]
	assert.Equal(t, "@acme/a", internal.Dependency)
	assert.Equal(t, "../../../a", internal.Target)
	assert.Equal(t, "/ws/a", internal.Resolved)
	assert.False(t, internal.IsExternal)

	external := links.Links[1]
	assert.Equal(t, "@acme/sdk", external.Dependency)
	assert.Equal(t, "/Users/dev/other-workspace/sdk", external.Target)
	assert.Equal(t, "/Users/dev/other-workspace/sdk", external.Resolved)
	assert.True(t, external.IsExternal)
}

func TestGetStatus_OmitsPackagesWithoutLinks(t *testing.T) {
	// Setup: a real install is not a link
	fs := testutil.NewMemoryFS()
	testutil.WriteManifest(t, fs, "/ws/app", types.Package{
		Name:         "@acme/app",
		Dependencies: map[string]string{"lodash": "^4.17.21"},
	})
	require.NoError(t, fs.MkdirAll("/ws/app/node_modules/lodash", 0o755))

	// Execute
	result, err := GetStatus(statusOptions(fs))

	// Verify: scanned but not reported
	require.NoError(t, err)
	assert.Equal(t, 1, result.Scanned)
	assert.Empty(t, result.Packages)
}

func TestGetStatus_EmptyWorkspace(t *testing.T) {
	// Setup
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/ws", 0o755))

	// Execute
	result, err := GetStatus(statusOptions(fs))

	// Verify
	require.NoError(t, err)
	assert.Zero(t, result.Scanned)
	assert.Empty(t, result.Packages)
}
