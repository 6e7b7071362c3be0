package internal

import (
	"fmt"
	"strings"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/types"
	"github.com/scopelink/scopelink/pkg/workspace"
)

// Target pairs one matched source package with its direct consumers.
// Consumers are one hop only; a consumer's own dependents are never
// included.
type Target struct {
	Package   types.Package
	Consumers []types.Package
}

// Selection is the outcome of resolving an explicit-mode argument
// against the workspace.
type Selection struct {
	Argument types.LinkArgument
	Packages []types.Package
	Targets  []Target
}

// SelectTargets parses an explicit-mode argument, discovers the
// workspace under env.Roots, and pairs every matching package with its
// direct consumers. Both link and unlink route their explicit modes
// through here; only the per-consumer failure policy differs between
// them.
func SelectTargets(env *Env, rawArg string) (*Selection, error) {
	arg, err := workspace.ParseLinkArgument(rawArg)
	if err != nil {
		return nil, err
	}

	pkgs, err := workspace.Discover(env.FS, env.Roots, env.Config.Workspace.Ignore)
	if err != nil {
		return nil, err
	}

	matches := workspace.MatchArgument(pkgs, arg)
	if len(matches) == 0 {
		msg := "no workspace packages in scope %s"
		if arg.IsExact() {
			msg = "no workspace package named %s"
		}
		return nil, errors.Newf(errors.ErrNotFound, msg, rawArg).
			WithDetail("argument", rawArg).
			WithDetail("roots", strings.Join(env.Roots, ", "))
	}

	targets := make([]Target, 0, len(matches))
	for i := range matches {
		targets = append(targets, Target{
			Package:   matches[i],
			Consumers: workspace.FindConsumers(pkgs, &matches[i]),
		})
	}

	return &Selection{Argument: arg, Packages: pkgs, Targets: targets}, nil
}

// SuccessSummary formats the terminal summary line for explicit-mode
// operations, e.g. "Successfully linked 2 package(s): @acme/a, @acme/b".
func SuccessSummary(verb string, names []string) string {
	return fmt.Sprintf("Successfully %s %d package(s): %s", verb, len(names), strings.Join(names, ", "))
}

// PlannedSummary is the dry-run counterpart of SuccessSummary.
func PlannedSummary(verb string, names []string) string {
	return fmt.Sprintf("Would %s %d package(s): %s", verb, len(names), strings.Join(names, ", "))
}
