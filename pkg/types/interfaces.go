package types

import (
	"io/fs"
)

// FS is the filesystem seam every scopelink operation goes through.
// Production code uses the afero-backed adapter in pkg/filesystem;
// tests substitute testutil.MemoryFS so workspace layouts never touch
// the real disk.
//
// Symlink awareness is why the seam exists at all: reconciliation has
// to inspect link slots with Lstat and Readlink without following
// them, which fs.FS only offers through optional interfaces.
type FS interface {
	// Reads, used by discovery and status.
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Readlink(name string) (string, error)

	// Writes, used when reconciling link slots.
	Symlink(oldname, newname string) error
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
}
