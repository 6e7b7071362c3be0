package types

// LinkArgument is the parsed form of a user-supplied link/unlink
// target: either a whole scope ("@acme") or one exact package
// ("@acme/widgets").
type LinkArgument struct {
	// Scope is the @-prefixed namespace the operation applies to
	Scope string

	// ExactName is set when the argument named one specific package;
	// empty for a scope-only argument
	ExactName string
}

// IsExact reports whether the argument targets a single package rather
// than every package in the scope
func (a LinkArgument) IsExact() bool {
	return a.ExactName != ""
}

// Matches reports whether the given package name falls under this
// argument: the exact package for exact arguments, any package in the
// scope otherwise
func (a LinkArgument) Matches(packageName string) bool {
	if a.IsExact() {
		return packageName == a.ExactName
	}
	return ScopeOf(packageName) == a.Scope
}
