// pkg/registry/registry_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS, FakeRunner
// PURPOSE: Test global link registry discovery and degradation

package registry

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scopelink/scopelink/pkg/npm"
	"github.com/scopelink/scopelink/pkg/testutil"
	"github.com/scopelink/scopelink/pkg/types"
)

func TestDiscover_MapsNamesToDirs(t *testing.T) {
	// Setup
	fs := testutil.NewMemoryFS()
	testutil.WriteManifest(t, fs, "/home/dev/ws/core", types.Package{Name: "@acme/core", Version: "1.0.0"})
	testutil.WriteManifest(t, fs, "/home/dev/ws/tools", types.Package{Name: "@acme/tools", Version: "2.0.0"})

	runner := testutil.NewFakeRunner()
	runner.Respond("ls --global --parseable --depth=0",
		"/home/dev/ws/core\n/home/dev/ws/tools\n")
	client := npm.NewClient(runner)

	// Execute
	entries := Discover(context.Background(), fs, client, "/ws")

	// Verify
	assert.Equal(t, map[string]string{
		"@acme/core":  "/home/dev/ws/core",
		"@acme/tools": "/home/dev/ws/tools",
	}, entries)
}

func TestDiscover_SkipsEntriesWithoutValidManifest(t *testing.T) {
	// Setup
	fs := testutil.NewMemoryFS()
	testutil.WriteManifest(t, fs, "/ws/good", types.Package{Name: "@acme/good"})
	// The manager's own lib directory has no manifest at all
	assert.NoError(t, fs.MkdirAll("/usr/local/lib", 0755))
	// A parseable manifest without a name cannot be linked by name
	testutil.WriteRawManifest(t, fs, "/ws/anon", `{"version": "1.0.0"}`)

	runner := testutil.NewFakeRunner()
	runner.Respond("ls --global --parseable --depth=0",
		"/usr/local/lib\n/ws/anon\n/ws/good\n")
	client := npm.NewClient(runner)

	// Execute
	entries := Discover(context.Background(), fs, client, "/ws")

	// Verify
	assert.Equal(t, map[string]string{"@acme/good": "/ws/good"}, entries)
}

func TestDiscover_QueryFailureDegradesToEmpty(t *testing.T) {
	// Setup
	fs := testutil.NewMemoryFS()
	runner := testutil.NewFakeRunner()
	runner.Fail("ls --global --parseable --depth=0", fmt.Errorf("registry unreachable"))
	client := npm.NewClient(runner)

	// Execute
	entries := Discover(context.Background(), fs, client, "/ws")

	// Verify
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
