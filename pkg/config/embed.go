package config

import (
	_ "embed"
	"errors"
)

// defaultConfig is the annotated built-in defaults file. The config
// help topic prints it verbatim, so every key in it stays commented.
//
//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultConfigTOML returns the built-in defaults file as written.
func DefaultConfigTOML() string {
	return string(defaultConfig)
}

// embeddedProvider hands the embedded defaults to koanf. Only
// ReadBytes matters; the parser path never calls Read.
type embeddedProvider struct{ raw []byte }

func (p *embeddedProvider) ReadBytes() ([]byte, error) { return p.raw, nil }

func (p *embeddedProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("embedded provider is bytes only")
}
