// pkg/filesystem/afero_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, real filesystem (capability path)
// PURPOSE: Test the adapter's symlink capability detection and the
// in-memory stand-in

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_MemMapStandInSymlinks(t *testing.T) {
	// Setup: MemMapFs has no symlink support, the stand-in kicks in
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/ws/app", 0755))

	// Execute
	require.NoError(t, fsys.Symlink("/ws/core", "/ws/app/core-link"))
	target, err := fsys.Readlink("/ws/app/core-link")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, "/ws/core", target)
}

func TestAferoFS_OsBackendUsesRealSymlinks(t *testing.T) {
	// Setup
	dir := t.TempDir()
	fsys := NewOS()
	require.NoError(t, fsys.MkdirAll(filepath.Join(dir, "core"), 0755))

	// Execute
	link := filepath.Join(dir, "core-link")
	require.NoError(t, fsys.Symlink(filepath.Join(dir, "core"), link))

	// Verify: Lstat sees the link itself, Readlink the target
	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	target, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "core"), target)
}

func TestAferoFS_ReadFileRejectsDirectories(t *testing.T) {
	// Setup
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/ws/app", 0755))

	// Execute
	_, err := fsys.ReadFile("/ws/app")

	// Verify
	require.Error(t, err)
}

func TestAferoFS_ReadDirEntries(t *testing.T) {
	// Setup
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/ws/app", 0755))
	require.NoError(t, fsys.WriteFile("/ws/readme.md", []byte("hello"), 0644))

	// Execute
	entries, err := fsys.ReadDir("/ws")

	// Verify
	require.NoError(t, err)
	require.Len(t, entries, 2)
	names := []string{entries[0].Name(), entries[1].Name()}
	assert.Contains(t, names, "app")
	assert.Contains(t, names, "readme.md")
}

func TestAferoFS_WriteReadRoundTrip(t *testing.T) {
	// Setup
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/ws", 0755))

	// Execute
	require.NoError(t, fsys.WriteFile("/ws/package.json", []byte(`{"name": "@acme/app"}`), 0644))
	data, err := fsys.ReadFile("/ws/package.json")

	// Verify
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "@acme/app"}`, string(data))

	// Remove drops the file
	require.NoError(t, fsys.Remove("/ws/package.json"))
	_, err = fsys.ReadFile("/ws/package.json")
	assert.Error(t, err)
}
