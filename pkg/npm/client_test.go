// pkg/npm/client_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: FakeRunner
// PURPOSE: Test package manager client operations and error coding

package npm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/testutil"
)

func TestClient_RegisterGlobal(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	client := NewClient(runner)

	// Execute
	err := client.RegisterGlobal(context.Background(), "/ws/core")

	// Verify
	require.NoError(t, err)
	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/ws/core", calls[0].Dir)
	assert.Equal(t, []string{"link"}, calls[0].Args)
}

func TestClient_RegisterGlobal_Failure(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	runner.Fail("link", fmt.Errorf("EACCES: permission denied"))
	client := NewClient(runner)

	// Execute
	err := client.RegisterGlobal(context.Background(), "/ws/core")

	// Verify
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistrationFailed))
}

func TestClient_LinkIntoConsumer_RunsInConsumerDir(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	client := NewClient(runner)

	// Execute
	err := client.LinkIntoConsumer(context.Background(), "/ws/app", "@acme/core")

	// Verify
	require.NoError(t, err)
	calls := runner.CallsFor("link @acme/core")
	require.Len(t, calls, 1)
	assert.Equal(t, "/ws/app", calls[0].Dir)
}

func TestClient_LinkIntoConsumer_Failure(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	runner.Fail("link @acme/core", fmt.Errorf("404 not found"))
	client := NewClient(runner)

	// Execute
	err := client.LinkIntoConsumer(context.Background(), "/ws/app", "@acme/core")

	// Verify
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConsumerOpFailed))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/ws/app", details["consumer"])
}

func TestClient_GlobalLinkDirs(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	runner.Respond("ls --global --parseable --depth=0",
		"/usr/local/lib\n/home/dev/ws/core\n/home/dev/ws/tools\n\n")
	client := NewClient(runner)

	// Execute
	dirs, err := client.GlobalLinkDirs(context.Background(), "/ws")

	// Verify
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/local/lib", "/home/dev/ws/core", "/home/dev/ws/tools"}, dirs)
}

func TestClient_GlobalLinkDirs_QueryFailure(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	runner.Fail("ls --global --parseable --depth=0", fmt.Errorf("registry unreachable"))
	client := NewClient(runner)

	// Execute
	dirs, err := client.GlobalLinkDirs(context.Background(), "/ws")

	// Verify
	require.Error(t, err)
	assert.Nil(t, dirs)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryUnavailable))
}

func TestClient_Deregister(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	client := NewClient(runner)

	// Execute
	err := client.Deregister(context.Background(), "/ws/core", "@acme/core")

	// Verify
	require.NoError(t, err)
	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"rm", "--global", "@acme/core"}, calls[0].Args)
}

func TestClient_RegenerateLockfile_ErrorCode(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	runner.Fail("install --package-lock-only", fmt.Errorf("exit status 1"))
	client := NewClient(runner)

	// Execute
	err := client.RegenerateLockfile(context.Background(), "/ws/core")

	// Verify
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLockRegenFailed))
}

func TestClient_Install_ErrorCode(t *testing.T) {
	// Setup
	runner := testutil.NewFakeRunner()
	runner.Fail("install", fmt.Errorf("exit status 1"))
	client := NewClient(runner)

	// Execute
	err := client.Install(context.Background(), "/ws/app")

	// Verify
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReinstallFailed))
}
