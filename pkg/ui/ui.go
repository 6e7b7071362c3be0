// Package ui picks and constructs the output renderer for a command
// invocation. Terminal output is styled, text is plain, and the JSON
// and YAML renderers serve scripting.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/scopelink/scopelink/pkg/ui/json"
	"github.com/scopelink/scopelink/pkg/ui/terminal"
	"github.com/scopelink/scopelink/pkg/ui/text"
	"github.com/scopelink/scopelink/pkg/ui/yaml"
)

// Renderer is what every output format implements. Commands hand it
// display documents and never do their own formatting.
type Renderer interface {
	// RenderResult renders a command's display document.
	RenderResult(result interface{}) error

	// RenderError renders a failure, including any attached details.
	RenderError(err error) error

	// RenderMessage renders a one-line informational message.
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for the given format. Auto
// resolves through terminal detection when the writer is a file, and
// falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
