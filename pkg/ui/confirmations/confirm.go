// Package confirmations prompts the operator before destructive
// operations.
package confirmations

import "github.com/pterm/pterm"

// Confirmer asks the operator to approve a destructive operation.
type Confirmer interface {
	// Confirm presents the message and reports whether the operator
	// approved. Declining is not an error.
	Confirm(message string) (bool, error)
}

// Console prompts on the terminal, defaulting to no.
type Console struct{}

// NewConsole creates a terminal-backed Confirmer.
func NewConsole() *Console {
	return &Console{}
}

// Confirm implements Confirmer.
func (c *Console) Confirm(message string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(message)
}
