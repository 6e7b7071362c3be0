// Package npm drives the workspace's package manager as a subprocess.
// Runner executes single invocations; Client wraps them in the typed
// operations the rest of scopelink needs. The binary is configurable
// (manager.bin), so "npm" here means whatever manager the workspace
// uses.
package npm

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
)

// commandTimeout bounds a single package manager invocation. Installs
// against a slow registry can legitimately take minutes.
const commandTimeout = 5 * time.Minute

// Runner executes one package manager invocation in a directory
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner runs the package manager binary as a subprocess. The
// working directory is set per invocation; scopelink itself never
// changes directory.
type ExecRunner struct {
	bin    string
	logger zerolog.Logger
}

// NewExecRunner creates a runner for the given package manager binary
func NewExecRunner(bin string) *ExecRunner {
	return &ExecRunner{
		bin:    bin,
		logger: logging.GetLogger("npm.runner"),
	}
}

// Run executes the binary with args in dir and returns its stdout
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", errors.Newf(errors.ErrFileAccess,
			"working directory does not exist: %s", dir)
	}

	logging.LogCommand(r.bin, args)

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = dir

	// Capture output
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.logger.Error().
			Err(err).
			Str("command", r.bin).
			Strs("args", args).
			Str("dir", dir).
			Str("stderr", stderr.String()).
			Msg("Command execution failed")

		return stdout.String(), errors.Wrapf(err, errors.ErrCommandFailed,
			"%s %s failed", r.bin, strings.Join(args, " ")).
			WithDetail("dir", dir).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}

	r.logger.Debug().
		Str("command", r.bin).
		Strs("args", args).
		Str("dir", dir).
		Msg("Command executed successfully")

	return stdout.String(), nil
}
