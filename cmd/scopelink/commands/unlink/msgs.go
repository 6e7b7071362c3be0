package unlink

// Message constants
const (
	MsgShort = "Restore registry-installed dependencies"
	MsgLong  = `Unlink is the reverse of link: it removes development symlinks so
dependencies resolve to their registry versions again.

With no argument, unlink runs in smart mode on the current directory's
package: links matching the configured unlink patterns are removed and
the package's global registration is dropped. Same-scope links are
left in place unless --clean is given, which removes the whole
dependency tree and lockfile and reinstalls from the registry.

With a @scope or @scope/name argument, unlink detaches every matching
workspace package from its direct consumers.

With the literal argument 'status', unlink prints the link report
instead.`

	MsgExample = `  # Unlink the current package
  scopelink unlink

  # Fully restore registry versions (prompts before removing)
  scopelink unlink --clean
  scopelink unlink --clean --force

  # Detach every @acme package from its consumers
  scopelink unlink @acme`

	// Flag descriptions
	MsgFlagPattern = "Extra dependency name or scope to unlink (repeatable)"
	MsgFlagClean   = "Remove the dependency tree and lockfile, then reinstall from the registry"
)
