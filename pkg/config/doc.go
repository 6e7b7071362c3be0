// Package config handles configuration management for scopelink.
// Configuration is layered: embedded defaults, then the user config,
// then the workspace config, then SCOPELINK_* environment variables.
package config
