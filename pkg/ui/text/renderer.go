// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"sort"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/ui/display"
)

// Renderer writes the shared document model without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	doc := display.FromResult(result)

	headline := doc.Message
	if doc.DryRun {
		headline += " (dry run)"
	}
	if _, err := fmt.Fprintln(r.output, headline); err != nil {
		return err
	}

	for _, section := range doc.Sections {
		if _, err := fmt.Fprintf(r.output, "\n%s:\n", section.Title); err != nil {
			return err
		}
		for _, row := range section.Rows {
			detail := row.Detail
			if detail != "" {
				detail += " "
			}
			if _, err := fmt.Fprintf(r.output, "    %-24s %s[%s]\n", row.Label, detail, row.Status); err != nil {
				return err
			}
		}
	}

	for _, note := range doc.Notes {
		if _, err := fmt.Fprintf(r.output, "\nwarning: %s\n", note); err != nil {
			return err
		}
	}

	return nil
}

// RenderError renders an error as plain text, details included
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.output, "Error: %v\n", err); werr != nil {
		return werr
	}

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, werr := fmt.Fprintf(r.output, "    %s: %v\n", key, details[key]); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
