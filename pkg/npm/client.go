package npm

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
)

// Client exposes the package manager operations scopelink depends on
type Client struct {
	runner Runner
	logger zerolog.Logger
}

// NewClient creates a client on top of a runner
func NewClient(runner Runner) *Client {
	return &Client{
		runner: runner,
		logger: logging.GetLogger("npm.client"),
	}
}

// NewExecClient creates a client that shells out to the given binary
func NewExecClient(bin string) *Client {
	return NewClient(NewExecRunner(bin))
}

// RegisterGlobal registers the package in pkgDir in the global link
// registry (`npm link` run inside the package directory)
func (c *Client) RegisterGlobal(ctx context.Context, pkgDir string) error {
	if _, err := c.runner.Run(ctx, pkgDir, "link"); err != nil {
		return errors.Wrap(err, errors.ErrRegistrationFailed,
			"global link registration failed").
			WithDetail("dir", pkgDir)
	}

	c.logger.Debug().Str("dir", pkgDir).Msg("Registered package globally")
	return nil
}

// Deregister removes name's registration from the global link registry
// (`npm rm --global <name>`)
func (c *Client) Deregister(ctx context.Context, pkgDir, name string) error {
	if _, err := c.runner.Run(ctx, pkgDir, "rm", "--global", name); err != nil {
		return errors.Wrap(err, errors.ErrRegistrationFailed,
			"global link deregistration failed").
			WithDetail("package", name)
	}

	c.logger.Debug().Str("package", name).Msg("Deregistered package globally")
	return nil
}

// LinkIntoConsumer links the globally registered package name into the
// consumer's dependency tree (`npm link <name>` run inside the
// consumer directory)
func (c *Client) LinkIntoConsumer(ctx context.Context, consumerDir, name string) error {
	if _, err := c.runner.Run(ctx, consumerDir, "link", name); err != nil {
		return errors.Wrap(err, errors.ErrConsumerOpFailed,
			"consumer link failed").
			WithDetail("consumer", consumerDir).
			WithDetail("package", name)
	}

	c.logger.Debug().
		Str("consumer", consumerDir).
		Str("package", name).
		Msg("Linked package into consumer")
	return nil
}

// GlobalLinkDirs queries the global link registry and returns one
// absolute directory per registered entry
// (`npm ls --global --parseable --depth=0`)
func (c *Client) GlobalLinkDirs(ctx context.Context, dir string) ([]string, error) {
	out, err := c.runner.Run(ctx, dir, "ls", "--global", "--parseable", "--depth=0")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryUnavailable,
			"global link registry query failed")
	}

	var dirs []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		dirs = append(dirs, line)
	}
	return dirs, nil
}

// RegenerateLockfile refreshes the lockfile without touching installed
// modules (`npm install --package-lock-only`)
func (c *Client) RegenerateLockfile(ctx context.Context, dir string) error {
	if _, err := c.runner.Run(ctx, dir, "install", "--package-lock-only"); err != nil {
		return errors.Wrap(err, errors.ErrLockRegenFailed,
			"lockfile regeneration failed").
			WithDetail("dir", dir)
	}

	c.logger.Debug().Str("dir", dir).Msg("Regenerated lockfile")
	return nil
}

// Install reinstalls dependencies from the registry (`npm install`)
func (c *Client) Install(ctx context.Context, dir string) error {
	if _, err := c.runner.Run(ctx, dir, "install"); err != nil {
		return errors.Wrap(err, errors.ErrReinstallFailed,
			"dependency reinstall failed").
			WithDetail("dir", dir)
	}

	c.logger.Debug().Str("dir", dir).Msg("Reinstalled dependencies")
	return nil
}
