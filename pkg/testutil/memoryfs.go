package testutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/scopelink/scopelink/pkg/types"
)

// fileUmask is stripped from the permission bits of written files,
// matching a stock 022 process umask.
const fileUmask fs.FileMode = 0o022

// MemoryFS is an in-memory types.FS backed by a flat path-to-node map.
// Symlinks are tracked explicitly: Lstat and Readlink see the link
// itself, while ReadFile and Stat follow it one hop, which is as deep
// as scopelink ever links.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*node

	// failures maps cleaned paths to errors returned instead of
	// touching the node, for exercising I/O error handling.
	failures map[string]error
}

var _ types.FS = (*MemoryFS)(nil)

// node is a single filesystem object. The mode's type bits tell files,
// directories, and symlinks apart; data and link apply to the matching
// kind only.
type node struct {
	mode  fs.FileMode
	mtime time.Time
	data  []byte
	link  string
}

// NewMemoryFS returns a filesystem containing only the root directory.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes:    map[string]*node{"/": {mode: 0o755 | fs.ModeDir, mtime: time.Now()}},
		failures: make(map[string]error),
	}
}

// WithError makes operations on path fail with err. Returns the
// receiver so fixture setup can chain calls.
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failures[m.clean(path)] = err
	return m
}

// clean canonicalizes a path. There is no working directory, so
// relative paths hang off the root.
func (m *MemoryFS) clean(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

// lookup fetches the node at path, honoring injected failures.
func (m *MemoryFS) lookup(path string) (*node, error) {
	path = m.clean(path)
	if err, ok := m.failures[path]; ok {
		return nil, err
	}
	n, ok := m.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return n, nil
}

// requireParent checks that the parent of path is an existing directory.
func (m *MemoryFS) requireParent(path string) error {
	dir := filepath.Dir(path)
	n, err := m.lookup(dir)
	if err != nil {
		return err
	}
	if !n.mode.IsDir() {
		return &fs.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
	}
	return nil
}

// resolve follows a symlink node one hop. A relative target is
// interpreted against the link's directory, like the OS does.
func (m *MemoryFS) resolve(path string, n *node) (*node, error) {
	target := n.link
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(m.clean(path)), target)
	}
	return m.lookup(target)
}

// Stat returns file info, following a symlink at the final element.
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	if n.mode&fs.ModeSymlink != 0 {
		if n, err = m.resolve(name, n); err != nil {
			return nil, err
		}
	}
	return snapshot(filepath.Base(name), n), nil
}

// ReadFile returns a copy of the file's contents, reading through a
// symlink if name is one.
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	if n.mode.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}
	if n.mode&fs.ModeSymlink != 0 {
		if n, err = m.resolve(name, n); err != nil {
			return nil, err
		}
	}
	return append([]byte(nil), n.data...), nil
}

// WriteFile writes data to a file, creating missing parent directories.
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.clean(name)
	if err, ok := m.failures[path]; ok {
		return err
	}

	if err := m.requireParent(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := m.mkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
	}

	m.nodes[path] = &node{
		mode:  perm &^ fileUmask,
		mtime: time.Now(),
		data:  append([]byte(nil), data...),
	}
	return nil
}

// MkdirAll creates a directory along with any missing parents.
func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mkdirAll(path, perm)
}

// mkdirAll walks the path segment by segment. Callers hold the write
// lock.
func (m *MemoryFS) mkdirAll(path string, perm fs.FileMode) error {
	cur := "/"
	for _, seg := range strings.Split(m.clean(path), "/") {
		if seg == "" {
			continue
		}
		cur = filepath.Join(cur, seg)
		if n, ok := m.nodes[cur]; ok {
			if !n.mode.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: errors.New("not a directory")}
			}
			continue
		}
		m.nodes[cur] = &node{mode: perm | fs.ModeDir, mtime: time.Now()}
	}
	return nil
}

// ReadDir lists a directory's immediate children sorted by name.
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := m.clean(name)
	n, err := m.lookup(path)
	if err != nil {
		return nil, err
	}
	if !n.mode.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	var entries []fs.DirEntry
	for p, child := range m.nodes {
		if p != path && filepath.Dir(p) == path {
			entries = append(entries, dirEntry{snapshot(filepath.Base(p), child)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Symlink creates a symbolic link. Like os.Symlink it fails when the
// link path already exists, and never validates the target.
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.clean(link)
	if _, ok := m.nodes[path]; ok {
		return &fs.PathError{Op: "symlink", Path: link, Err: fs.ErrExist}
	}
	if err := m.requireParent(path); err != nil {
		return err
	}

	m.nodes[path] = &node{mode: 0o777 | fs.ModeSymlink, mtime: time.Now(), link: target}
	return nil
}

// Readlink returns a symlink's target exactly as it was created.
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, err := m.lookup(name)
	if err != nil {
		return "", err
	}
	if n.mode&fs.ModeSymlink == 0 {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.New("not a symbolic link")}
	}
	return n.link, nil
}

// Remove deletes a file, symlink, or empty directory. Removing a
// symlink leaves its target alone.
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.clean(name)
	n, err := m.lookup(path)
	if err != nil {
		return err
	}
	if n.mode.IsDir() {
		for p := range m.nodes {
			if strings.HasPrefix(p, path+"/") {
				return &fs.PathError{Op: "remove", Path: name, Err: errors.New("directory not empty")}
			}
		}
	}

	delete(m.nodes, path)
	return nil
}

// RemoveAll deletes a path and everything under it. A missing path is
// not an error.
func (m *MemoryFS) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.clean(path)
	for p := range m.nodes {
		if p == path || strings.HasPrefix(p, path+"/") {
			delete(m.nodes, p)
		}
	}
	return nil
}

// Lstat returns file info for the path itself, never following a
// symlink.
func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return snapshot(filepath.Base(name), n), nil
}

// snapshot captures a node's metadata as an immutable fs.FileInfo.
func snapshot(name string, n *node) fileInfo {
	return fileInfo{name: name, size: int64(len(n.data)), mode: n.mode, mtime: n.mtime}
}

type fileInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	mtime time.Time
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi fileInfo) ModTime() time.Time { return fi.mtime }
func (fi fileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi fileInfo) Sys() interface{}   { return nil }

type dirEntry struct {
	fileInfo
}

func (de dirEntry) Type() fs.FileMode          { return de.mode.Type() }
func (de dirEntry) Info() (fs.FileInfo, error) { return de.fileInfo, nil }
