// pkg/testutil/memoryfs_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test MemoryFS implementation

package testutil

import (
	"os"
	"testing"
)

func TestMemoryFS_BasicOperations(t *testing.T) {
	fs := NewMemoryFS()

	// Test WriteFile and ReadFile
	t.Run("WriteAndRead", func(t *testing.T) {
		content := []byte("test content")
		err := fs.WriteFile("/test.txt", content, 0644)
		if err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		read, err := fs.ReadFile("/test.txt")
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}

		if string(read) != string(content) {
			t.Errorf("content mismatch: got %q, want %q", read, content)
		}
	})

	// Test MkdirAll
	t.Run("MkdirAll", func(t *testing.T) {
		err := fs.MkdirAll("/path/to/dir", 0755)
		if err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}

		info, err := fs.Stat("/path/to/dir")
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}

		if !info.IsDir() {
			t.Error("created path is not a directory")
		}
	})

	// Test Symlink
	t.Run("Symlink", func(t *testing.T) {
		err := fs.WriteFile("/target.txt", []byte("target content"), 0644)
		if err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		err = fs.Symlink("/target.txt", "/link.txt")
		if err != nil {
			t.Fatalf("Symlink failed: %v", err)
		}

		dest, err := fs.Readlink("/link.txt")
		if err != nil {
			t.Fatalf("Readlink failed: %v", err)
		}

		if dest != "/target.txt" {
			t.Errorf("wrong link destination: got %q, want %q", dest, "/target.txt")
		}
	})
}

func TestMemoryFS_SymlinkSemantics(t *testing.T) {
	fs := NewMemoryFS()

	if err := fs.MkdirAll("/ws/core", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := fs.WriteFile("/ws/core/package.json", []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.Symlink("../core", "/ws/link"); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	// Lstat reports the link itself
	info, err := fs.Lstat("/ws/link")
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("Lstat did not report a symlink")
	}

	// Stat follows the link to the directory
	info, err = fs.Stat("/ws/link")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat did not follow the symlink to a directory")
	}

	// Creating over an existing path fails like os.Symlink
	if err := fs.Symlink("../core", "/ws/link"); !os.IsExist(err) {
		t.Errorf("expected ErrExist for duplicate symlink, got: %v", err)
	}

	// Remove deletes the link, not the target
	if err := fs.Remove("/ws/link"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := fs.Lstat("/ws/link"); !os.IsNotExist(err) {
		t.Errorf("link still present after Remove: %v", err)
	}
	if _, err := fs.Stat("/ws/core/package.json"); err != nil {
		t.Errorf("target was removed with the link: %v", err)
	}
}

func TestMemoryFS_ReadDirSorted(t *testing.T) {
	fs := NewMemoryFS()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := fs.MkdirAll("/ws/"+name, 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
	}

	entries, err := fs.ReadDir("/ws")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	want := []string{"alpha", "mid", "zeta"}
	if len(entries) != len(want) {
		t.Fatalf("wrong entry count: got %d, want %d", len(entries), len(want))
	}
	for i, entry := range entries {
		if entry.Name() != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, entry.Name(), want[i])
		}
	}
}

func TestMemoryFS_ErrorInjection(t *testing.T) {
	fs := NewMemoryFS()

	// Inject error
	fs.WithError("/error.txt", os.ErrPermission)

	// Try to read - should get injected error
	_, err := fs.ReadFile("/error.txt")
	if err != os.ErrPermission {
		t.Errorf("expected permission error, got: %v", err)
	}

	// Try to write - should get injected error
	err = fs.WriteFile("/error.txt", []byte("data"), 0644)
	if err != os.ErrPermission {
		t.Errorf("expected permission error, got: %v", err)
	}
}
