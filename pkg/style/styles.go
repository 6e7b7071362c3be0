// Package style defines scopelink's terminal styling: an adaptive
// color palette and the named lipgloss styles the terminal renderer
// composes its output from.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

func fg(c lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Base styles
var (
	SubtitleStyle = fg(HeadingColor).Bold(true)
	NormalStyle   = fg(TextColor)
	MutedStyle    = fg(MutedColor)
	SuccessStyle  = fg(SuccessColor).Bold(true)
	ErrorStyle    = fg(ErrorColor).Bold(true)
	WarningStyle  = fg(WarningColor).Bold(true)
	InfoStyle     = fg(InfoColor)
	ListItemStyle = lipgloss.NewStyle().PaddingLeft(2)
	PathStyle     = fg(SecondaryColor).Italic(true)
)

// Link state styles
var (
	InternalLinkStyle = fg(InternalLinkColor).Bold(true)
	ExternalLinkStyle = fg(ExternalLinkColor).Bold(true)
	ConflictStyle     = fg(ConflictColor).Bold(true)
)

// Row indicators, rendered once at startup
var (
	SuccessIndicator  = SuccessStyle.Render("✓")
	ErrorIndicator    = ErrorStyle.Render("✗")
	WarningIndicator  = WarningStyle.Render("!")
	ConflictIndicator = ConflictStyle.Render("≠")
	InfoIndicator     = InfoStyle.Render("•")
	PendingIndicator  = MutedStyle.Render("○")
	LinkIndicator     = InternalLinkStyle.Render("→")
)
