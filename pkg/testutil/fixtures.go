package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scopelink/scopelink/pkg/types"
)

// WriteManifest writes pkg as a package.json manifest in dir, creating
// the directory if needed
func WriteManifest(t *testing.T, fsys types.FS, dir string, pkg types.Package) {
	t.Helper()

	data, err := json.MarshalIndent(pkg, "", "  ")
	require.NoError(t, err)

	require.NoError(t, fsys.MkdirAll(dir, 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(dir, "package.json"), append(data, '\n'), 0644))
}

// WriteRawManifest writes literal manifest contents in dir, for
// malformed or hand-crafted fixtures
func WriteRawManifest(t *testing.T, fsys types.FS, dir string, contents string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(dir, 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(dir, "package.json"), []byte(contents), 0644))
}

// MustSymlink creates a symlink, creating the parent directory first,
// and fails the test on error
func MustSymlink(t *testing.T, fsys types.FS, target, link string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, fsys.Symlink(target, link))
}
