package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are rendered.
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText by probing the
	// output stream.
	FormatAuto Format = iota
	// FormatTerminal is styled output for interactive use.
	FormatTerminal
	// FormatText is unstyled output for pipes and logs.
	FormatText
	// FormatJSON is machine-readable JSON.
	FormatJSON
	// FormatYAML is machine-readable YAML.
	FormatYAML
)

var formatNames = [...]string{"auto", "term", "text", "json", "yaml"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat maps a --format flag value to a Format. Common aliases
// are accepted, and the empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat resolves FormatAuto for the given stream. Anything that
// is not an interactive terminal, or any terminal where NO_COLOR is
// set, gets plain text. A terminal whose profile reports no color
// support gets plain text as well.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
