package status

// Message constants
const (
	MsgShort = "Show which dependencies are symlinked"
	MsgLong  = `Status scans the workspace and reports every package carrying at
least one symlinked dependency, where each link points, and whether
the target lives inside the workspace or outside it.

Status never mutates anything and never runs the package manager.`

	MsgExample = `  # Report links across the workspace
  scopelink status

  # Machine-readable report
  scopelink status --format json

  # Scan a different workspace
  scopelink status --root ../other-workspace`
)
