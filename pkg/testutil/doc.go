// Package testutil provides utilities for testing scopelink components.
//
// Key components:
//   - MemoryFS: In-memory filesystem implementation for fast, isolated tests
//   - FakeRunner: Scripted package manager runner that records invocations
//   - WriteManifest / WriteRawManifest / MustSymlink: workspace fixture helpers
//
// Usage guidelines:
//   - Tests should build workspaces on MemoryFS, not the real filesystem
//   - Package manager behavior is scripted per command, never executed
//   - All test data should be defined inline, not in external files
package testutil
