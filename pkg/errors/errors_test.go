// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test coded error construction, wrapping, and inspection helpers

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scopelink/scopelink/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrManifestNotFound, "no package manifest in directory")

	assert.Equal(t, errors.ErrManifestNotFound, err.Code)
	assert.Equal(t, "no package manifest in directory", err.Message)
	assert.NotNil(t, err.Details, "details map starts initialized")
	assert.Equal(t, "[MANIFEST_NOT_FOUND] no package manifest in directory", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConsumerOpFailed, "failed to link %s into %s", "@acme/a", "@acme/consumer")

	assert.Equal(t, "failed to link @acme/a into @acme/consumer", err.Message)
}

func TestWrap(t *testing.T) {
	t.Run("keeps the cause reachable", func(t *testing.T) {
		cause := stderrors.New("exit status 1")

		err := errors.Wrap(cause, errors.ErrCommandFailed, "npm invocation failed")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrCommandFailed, err.Code)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "[COMMAND_FAILED] npm invocation failed: exit status 1", err.Error())
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrCommandFailed, "npm invocation failed"))
	})

	t.Run("wrapf formats the message", func(t *testing.T) {
		cause := stderrors.New("permission denied")

		err := errors.Wrapf(cause, errors.ErrFileAccess, "cannot read %s", "package.json")

		require.NotNil(t, err)
		assert.Equal(t, "cannot read package.json", err.Message)
	})
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrSlotOccupied, "slot occupied").
		WithDetail("path", "/workspace/app/node_modules/@acme/core").
		WithDetail("dependency", "@acme/core")

	assert.Equal(t, "/workspace/app/node_modules/@acme/core", err.Details["path"])
	assert.Equal(t, "@acme/core", err.Details["dependency"])

	err.WithDetails(map[string]interface{}{"consumer": "@acme/app"})
	assert.Equal(t, "@acme/app", err.Details["consumer"])

	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	invalidA := errors.New(errors.ErrManifestInvalid, "bad name field")
	invalidB := errors.New(errors.ErrManifestInvalid, "bad version field")
	reinstall := errors.New(errors.ErrReinstallFailed, "npm install failed")

	t.Run("same code matches regardless of message", func(t *testing.T) {
		assert.True(t, invalidA.Is(invalidB))
		assert.True(t, stderrors.Is(invalidA, invalidB))
	})

	t.Run("different codes do not match", func(t *testing.T) {
		assert.False(t, invalidA.Is(reinstall))
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
		want bool
	}{
		{
			name: "matching code",
			err:  errors.New(errors.ErrRegistryUnavailable, "query failed"),
			code: errors.ErrRegistryUnavailable,
			want: true,
		},
		{
			name: "different code",
			err:  errors.New(errors.ErrRegistryUnavailable, "query failed"),
			code: errors.ErrInternal,
			want: false,
		},
		{
			name: "code found through wrapping",
			err:  errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code: errors.ErrFileAccess,
			want: true,
		},
		{
			name: "plain error has no code",
			err:  stderrors.New("standard error"),
			code: errors.ErrNotFound,
			want: false,
		},
		{
			name: "nil error has no code",
			err:  nil,
			code: errors.ErrNotFound,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	coded := errors.New(errors.ErrLockRegenFailed, "lockfile regeneration failed")

	assert.Equal(t, errors.ErrLockRegenFailed, errors.GetErrorCode(coded))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	// A realistic chain: an npm invocation fails, the runner wraps it,
	// and the registry layer wraps that again.
	rootCause := stderrors.New("root cause")
	cmdErr := errors.Wrap(rootCause, errors.ErrCommandFailed, "npm ls failed")
	registryErr := errors.Wrap(cmdErr, errors.ErrRegistryUnavailable, "cannot query global links")

	t.Run("outermost code wins for matching", func(t *testing.T) {
		assert.True(t, errors.IsErrorCode(registryErr, errors.ErrRegistryUnavailable))
	})

	t.Run("inner codes stay reachable", func(t *testing.T) {
		var linkErr *errors.LinkError
		require.True(t, stderrors.As(registryErr.Unwrap(), &linkErr))
		assert.True(t, errors.IsErrorCode(linkErr, errors.ErrCommandFailed))
	})

	t.Run("root cause survives the chain", func(t *testing.T) {
		assert.ErrorIs(t, registryErr, rootCause)
	})
}
