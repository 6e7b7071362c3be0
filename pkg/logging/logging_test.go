// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (log file sink)
// PURPOSE: Test verbosity mapping and the file sink location

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warns", 0, zerolog.WarnLevel},
		{"-v informs", 1, zerolog.InfoLevel},
		{"-vv debugs", 2, zerolog.DebugLevel},
		{"-vvv traces", 3, zerolog.TraceLevel},
		{"extra flags stay at trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			t.Setenv("SCOPELINK_STATE_DIR", t.TempDir())

			// Execute
			SetupLogger(tt.verbosity)

			// Verify
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetupLogger_WritesLogFile(t *testing.T) {
	// Setup
	stateDir := t.TempDir()
	t.Setenv("SCOPELINK_STATE_DIR", stateDir)

	// Execute
	SetupLogger(2)
	GetLogger("test").Debug().Msg("probe line")

	// Verify: the sink lives in the overridden state directory
	logPath := filepath.Join(stateDir, "scopelink.log")
	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSetupLogger_SurvivesUnwritableStateDir(t *testing.T) {
	// Setup: point the state dir somewhere that cannot be created
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0644))
	t.Setenv("SCOPELINK_STATE_DIR", filepath.Join(blocker, "state"))

	// Execute: must not panic, console logging keeps working
	SetupLogger(1)
	GetLogger("test").Info().Msg("still alive")
}
