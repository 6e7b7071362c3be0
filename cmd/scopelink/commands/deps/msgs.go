package deps

// Message constants
const (
	MsgShort = "Report dependency versions across the workspace"
	MsgLong  = `Deps aggregates every dependency declaration in the workspace into
one report: which packages declare each dependency, with which version
pattern, and whether the declared patterns agree.

Two declarations conflict when their patterns resolve to different
version ranges. Equivalent spellings (~5.4, 5.4.x, 5.4) do not
conflict. --align rewrites the dissenting manifests to the pattern
with the highest lower bound.`

	MsgExample = `  # Full dependency report
  scopelink deps

  # Only the disagreements
  scopelink deps --conflicts

  # Preview, then settle lodash on one version pattern
  scopelink deps --align lodash --dry-run
  scopelink deps --align lodash`

	// Flag descriptions
	MsgFlagConflicts = "Only list dependencies whose declared patterns disagree"
	MsgFlagAlign     = "Rewrite dissenting declarations of a dependency to the highest pattern"
)
