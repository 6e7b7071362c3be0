// pkg/symlink/reconciler_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS
// PURPOSE: Test slot classification and reconciliation actions

package symlink

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/testutil"
	"github.com/scopelink/scopelink/pkg/types"
)

func newWorkspace(t *testing.T) *testutil.MemoryFS {
	t.Helper()
	fs := testutil.NewMemoryFS()
	testutil.WriteManifest(t, fs, "/ws/core", types.Package{Name: "@acme/core"})
	testutil.WriteManifest(t, fs, "/ws/app", types.Package{
		Name:         "@acme/app",
		Dependencies: map[string]string{"@acme/core": "^1.0.0"},
	})
	return fs
}

func TestReconciler_Ensure_CreatesLink(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	r := NewReconciler(fs, false)

	// Execute
	outcome, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, StateAbsent, outcome.State)
	assert.Equal(t, ActionCreated, outcome.Action)
	assert.Equal(t, "/ws/app/node_modules/@acme/core", outcome.Slot)

	info, err := fs.Lstat("/ws/app/node_modules/@acme/core")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	stored, err := fs.Readlink("/ws/app/node_modules/@acme/core")
	require.NoError(t, err)
	assert.Equal(t, "../../../core", stored)
	assert.Equal(t, "/ws/core", Resolve(outcome.Slot, stored))
}

func TestReconciler_Ensure_Idempotent(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	r := NewReconciler(fs, false)

	_, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")
	require.NoError(t, err)

	// Execute
	outcome, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, StateCorrect, outcome.State)
	assert.Equal(t, ActionUpToDate, outcome.Action)
}

func TestReconciler_Ensure_RepairsStaleLink(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	testutil.WriteManifest(t, fs, "/elsewhere/core", types.Package{Name: "@acme/core"})
	testutil.MustSymlink(t, fs, "/elsewhere/core", "/ws/app/node_modules/@acme/core")
	r := NewReconciler(fs, false)

	// Execute
	outcome, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, StateStale, outcome.State)
	assert.Equal(t, ActionRepaired, outcome.Action)

	stored, err := fs.Readlink("/ws/app/node_modules/@acme/core")
	require.NoError(t, err)
	assert.Equal(t, "/ws/core", Resolve(outcome.Slot, stored))
}

func TestReconciler_Ensure_ReplacesInstalledDirectory(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	// An installed copy from the registry occupies the slot
	testutil.WriteManifest(t, fs, "/ws/app/node_modules/@acme/core", types.Package{
		Name:    "@acme/core",
		Version: "0.9.0",
	})
	r := NewReconciler(fs, false)

	// Execute
	outcome, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")

	// Verify: destructive replacement is a success, not an error
	require.NoError(t, err)
	assert.Equal(t, StateOccupiedDir, outcome.State)
	assert.Equal(t, ActionReplacedDir, outcome.Action)

	info, err := fs.Lstat("/ws/app/node_modules/@acme/core")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestReconciler_Ensure_ReplacesRegularFile(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	require.NoError(t, fs.MkdirAll("/ws/app/node_modules/@acme", 0755))
	require.NoError(t, fs.WriteFile("/ws/app/node_modules/@acme/core", []byte("stub"), 0644))
	r := NewReconciler(fs, false)

	// Execute
	outcome, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, StateOccupiedFile, outcome.State)
	assert.Equal(t, ActionReplacedFile, outcome.Action)
}

func TestReconciler_Ensure_DryRun(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	r := NewReconciler(fs, true)

	// Execute
	outcome, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, ActionWouldCreate, outcome.Action)

	_, err = fs.Lstat("/ws/app/node_modules/@acme/core")
	assert.True(t, os.IsNotExist(err), "dry run must not touch the slot")
}

func TestReconciler_Remove_RemovesLink(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	r := NewReconciler(fs, false)
	_, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")
	require.NoError(t, err)

	// Execute
	outcome, err := r.Remove("/ws/app", "@acme/core")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, ActionRemoved, outcome.Action)
	assert.Equal(t, "../../../core", outcome.Target)

	_, err = fs.Lstat("/ws/app/node_modules/@acme/core")
	assert.True(t, os.IsNotExist(err))

	// The source package is untouched
	_, err = fs.Stat("/ws/core/package.json")
	assert.NoError(t, err)
}

func TestReconciler_Remove_AbsentIsNoop(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	r := NewReconciler(fs, false)

	// Execute
	outcome, err := r.Remove("/ws/app", "@acme/core")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, StateAbsent, outcome.State)
	assert.Equal(t, ActionAbsent, outcome.Action)
}

func TestReconciler_Remove_OccupiedSlotErrors(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	testutil.WriteManifest(t, fs, "/ws/app/node_modules/@acme/core", types.Package{
		Name:    "@acme/core",
		Version: "0.9.0",
	})
	r := NewReconciler(fs, false)

	// Execute
	outcome, err := r.Remove("/ws/app", "@acme/core")

	// Verify: real installs are never deleted by unlink
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSlotOccupied))
	assert.Equal(t, StateOccupiedDir, outcome.State)

	_, statErr := fs.Stat("/ws/app/node_modules/@acme/core/package.json")
	assert.NoError(t, statErr, "occupied slot must be left alone")
}

func TestReconciler_Remove_DryRun(t *testing.T) {
	// Setup
	fs := newWorkspace(t)
	r := NewReconciler(fs, false)
	_, err := r.Ensure("/ws/app", "@acme/core", "/ws/core")
	require.NoError(t, err)

	// Execute
	outcome, err := NewReconciler(fs, true).Remove("/ws/app", "@acme/core")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, ActionWouldRemove, outcome.Action)

	_, err = fs.Lstat("/ws/app/node_modules/@acme/core")
	assert.NoError(t, err, "dry run must keep the link")
}

func TestRelativeTarget(t *testing.T) {
	tests := []struct {
		name   string
		slot   string
		source string
		want   string
	}{
		{
			name:   "sibling package",
			slot:   "/ws/app/node_modules/core",
			source: "/ws/core",
			want:   "../../core",
		},
		{
			name:   "scoped slot nests one level deeper",
			slot:   "/ws/app/node_modules/@acme/core",
			source: "/ws/core",
			want:   "../../../core",
		},
		{
			name:   "source outside the workspace",
			slot:   "/ws/app/node_modules/@acme/core",
			source: "/opt/registry/core",
			want:   "../../../../opt/registry/core",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeTarget(tt.slot, tt.source)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.source, Resolve(tt.slot, got))
		})
	}
}
