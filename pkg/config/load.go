package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/paths"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// SCOPELINK_MANAGER_BIN=pnpm
const EnvPrefix = "SCOPELINK_"

// Load builds the effective configuration for a workspace directory.
// Layers override in order: embedded defaults, user config, workspace
// config (.scopelink.toml, falling back to .scopelink.yaml), then
// SCOPELINK_* environment variables.
func Load(workspaceDir string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&embeddedProvider{raw: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default config")
	}

	// 2. Load user config if it exists
	userConfigPath := paths.New().UserConfigPath()
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load user config").
				WithDetail("path", userConfigPath)
		}
		logger.Debug().Str("path", userConfigPath).Msg("Loaded user config")
	}

	// 3. Load workspace config if it exists; TOML wins over YAML
	workspaceFiles := []struct {
		name   string
		parser koanf.Parser
	}{
		{paths.WorkspaceConfigTOML, toml.Parser()},
		{paths.WorkspaceConfigYAML, yaml.Parser()},
	}
	for _, wf := range workspaceFiles {
		path := filepath.Join(workspaceDir, wf.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), wf.parser); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load workspace config").
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded workspace config")
		break
	}

	// 4. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 5. Unmarshal
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}
	cfg.Dir = workspaceDir

	if len(cfg.Workspace.Roots) == 0 {
		cfg.Workspace.Roots = []string{"."}
	}
	if cfg.Manager.Bin == "" {
		return nil, errors.New(errors.ErrConfigParse, "manager.bin must not be empty")
	}

	return &cfg, nil
}
