package style

import (
	"github.com/charmbracelet/lipgloss"
)

// The scopelink palette. Adaptive pairs keep output readable on light
// and dark terminals.
var (
	// Status colors
	SuccessColor = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#58A6FF"}

	// Text colors
	HeadingColor   = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E6EDF3"}
	TextColor      = lipgloss.AdaptiveColor{Light: "#424A53", Dark: "#D0D7DE"}
	MutedColor     = lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"}
	SecondaryColor = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#9DA7B1"}
)

// Link state colors
var (
	InternalLinkColor = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#2DD4BF"}
	ExternalLinkColor = lipgloss.AdaptiveColor{Light: "#6639BA", Dark: "#BC8CFF"}
	ConflictColor     = lipgloss.AdaptiveColor{Light: "#BC4C00", Dark: "#F0883E"}
)
