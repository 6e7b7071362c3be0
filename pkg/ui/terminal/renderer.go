// Package terminal provides rich terminal output with colors and
// styling
package terminal

import (
	"fmt"
	"io"
	"sort"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/style"
	"github.com/scopelink/scopelink/pkg/ui/display"
)

// Renderer styles the shared document model with lipgloss
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	doc := display.FromResult(result)

	indicator := style.SuccessIndicator
	if !doc.Success {
		indicator = style.ErrorIndicator
	}
	headline := fmt.Sprintf("%s %s", indicator, style.SubtitleStyle.Render(doc.Message))
	if doc.DryRun {
		headline += " " + style.MutedStyle.Render("(dry run)")
	}
	if _, err := fmt.Fprintln(r.output, headline); err != nil {
		return err
	}

	for _, section := range doc.Sections {
		if _, err := fmt.Fprintf(r.output, "\n%s\n", style.SubtitleStyle.Render(section.Title)); err != nil {
			return err
		}
		for _, row := range section.Rows {
			line := fmt.Sprintf("%s %s", rowIndicator(row.Status), style.NormalStyle.Render(row.Label))
			if row.Detail != "" {
				line += " " + style.PathStyle.Render(row.Detail)
			}
			if _, err := fmt.Fprintln(r.output, style.ListItemStyle.Render(line)); err != nil {
				return err
			}
		}
	}

	for _, note := range doc.Notes {
		if _, err := fmt.Fprintf(r.output, "\n%s %s\n", style.WarningIndicator, style.WarningStyle.Render(note)); err != nil {
			return err
		}
	}

	return nil
}

// RenderError renders an error with its code and details
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.output, "%s %s\n", style.ErrorIndicator, style.ErrorStyle.Render(err.Error())); werr != nil {
		return werr
	}

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		line := style.MutedStyle.Render(fmt.Sprintf("%s: %v", key, details[key]))
		if _, werr := fmt.Fprintln(r.output, style.ListItemStyle.Render(line)); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple informational message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", style.InfoIndicator, style.NormalStyle.Render(msg))
	return err
}

func rowIndicator(status display.Status) string {
	switch status {
	case display.StatusWarning:
		return style.WarningIndicator
	case display.StatusConflict:
		return style.ConflictIndicator
	case display.StatusInfo:
		return style.InfoIndicator
	case display.StatusMuted:
		return style.PendingIndicator
	case display.StatusInternal:
		return style.LinkIndicator
	case display.StatusExternal:
		return style.ExternalLinkStyle.Render("↗")
	default:
		return style.SuccessIndicator
	}
}
