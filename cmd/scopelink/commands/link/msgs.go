package link

// Message constants
const (
	MsgShort = "Link workspace packages for local development"
	MsgLong  = `Link wires local package checkouts into dependency trees so changes
are picked up without publishing.

With no argument, link runs in smart mode on the current directory's
package: it registers the package in the manager's global link
registry, then symlinks every same-scope dependency (plus configured
patterns) from its local source.

With a @scope or @scope/name argument, link runs in explicit mode over
the workspace: every matching package is registered globally and linked
into each package that directly depends on it.

With the literal argument 'status', link prints the link report
instead. See 'scopelink help linking' for the full resolution rules.`

	MsgExample = `  # Link the current package's siblings in
  scopelink link

  # Link every @acme package into its consumers
  scopelink link @acme

  # Link one package, previewing the work first
  scopelink link @acme/core --dry-run
  scopelink link @acme/core

  # Also link an unscoped dependency from a local checkout
  scopelink link --pattern left-pad

  # Resolve @acme packages from a directory instead of the registry
  scopelink link --scope-root @acme=../acme-libs`

	// Flag descriptions
	MsgFlagPattern   = "Extra dependency name or scope to link (repeatable)"
	MsgFlagScopeRoot = "Directory hosting a scope's packages, as @scope=dir (repeatable)"
)
