package workspace

import (
	"strings"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/types"
)

// ParseLinkArgument parses an explicit-mode target: a scope ("@acme")
// selecting every package in that scope, or a full scoped name
// ("@acme/widgets") selecting exactly one. Anything not starting with
// "@" is rejected; bare package names are ambiguous between scope
// shorthand and file arguments and were never valid here.
func ParseLinkArgument(arg string) (types.LinkArgument, error) {
	if !strings.HasPrefix(arg, "@") {
		return types.LinkArgument{}, errors.New(errors.ErrArgumentInvalid,
			"link argument must be @scope or @scope/name").
			WithDetail("argument", arg)
	}
	if len(arg) == 1 {
		return types.LinkArgument{}, errors.New(errors.ErrArgumentInvalid,
			"scope name is empty").
			WithDetail("argument", arg)
	}

	slash := strings.Index(arg, "/")
	if slash == -1 {
		return types.LinkArgument{Scope: arg}, nil
	}

	scope, name := arg[:slash], arg[slash+1:]
	if len(scope) == 1 || name == "" || strings.Contains(name, "/") {
		return types.LinkArgument{}, errors.New(errors.ErrArgumentInvalid,
			"invalid package name").
			WithDetail("argument", arg)
	}

	return types.LinkArgument{Scope: scope, ExactName: arg}, nil
}

// MatchArgument filters packages down to the ones the argument selects
func MatchArgument(pkgs []types.Package, arg types.LinkArgument) []types.Package {
	var matched []types.Package
	for _, pkg := range pkgs {
		if arg.Matches(pkg.Name) {
			matched = append(matched, pkg)
		}
	}
	return matched
}
