package scopelink

// Message constants
const (
	MsgRootShort = "Link workspace packages with symlinks during development"

	MsgRootLong = `scopelink wires locally checked-out packages into each other's
dependency trees with symlinks, so changes flow between packages
without publishing. It discovers the packages under your workspace
roots, links same-scope dependencies in place, and restores the
registry-installed versions when you are done.

Run 'scopelink link' inside a package to start working against local
checkouts, 'scopelink status' to see what is currently linked, and
'scopelink unlink' to put everything back.

See 'scopelink help topics' for guides on linking and patterns.`

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Show what would happen without making changes"
	MsgFlagForce   = "Skip confirmation prompts"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml"
	MsgFlagRoot    = "Workspace root to scan, repeatable (overrides config)"
)
