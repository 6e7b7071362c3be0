// Package filesystem provides the types.FS implementations scopelink
// runs against: an afero adapter that detects the backend's symlink
// capabilities, and NewOS, the OS-backed instance production code
// uses. Tests that need exact symlink semantics use
// testutil.MemoryFS instead.
package filesystem
