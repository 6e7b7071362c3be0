package deps

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Pattern is one parsed version specifier. Non-semver specifiers
// (file:, link:, workspace:, git URLs, dist-tags) pass through with
// Semver false and are only ever compared verbatim.
type Pattern struct {
	// Raw is the specifier as written in the manifest.
	Raw string

	// Normalized is the canonical constraint equivalent patterns
	// share: "~1.2" and "1.2.x" both normalize to ">=1.2.0 <1.3.0".
	// For passthrough specifiers it equals Raw.
	Normalized string

	// Semver reports whether the specifier parsed as a version range.
	Semver bool

	floor *semver.Version
}

// Floor returns the lowest version the pattern admits. ok is false
// for patterns with no computable floor: passthrough specifiers,
// compound ranges, and pure upper bounds.
func (p Pattern) Floor() (*semver.Version, bool) {
	return p.floor, p.floor != nil
}

// ParsePattern normalizes one version specifier.
func ParsePattern(spec string) Pattern {
	raw := strings.TrimSpace(spec)
	p := Pattern{Raw: raw, Normalized: raw}

	// Protocol specifiers and repository shorthands are not ranges.
	if raw == "" || strings.ContainsAny(raw, ":/") {
		return p
	}
	if raw == "*" || raw == "x" || raw == "X" {
		p.Semver = true
		p.Normalized = ">=0.0.0"
		p.floor = semver.New(0, 0, 0, "", "")
		return p
	}
	if _, err := semver.NewConstraint(raw); err != nil {
		// Dist-tags like "latest" fall through here.
		return p
	}
	p.Semver = true

	// Compound ranges are already explicit; compare them as written.
	if strings.ContainsAny(raw, " |,") {
		return p
	}

	op, body := splitOperator(raw)
	floor, specified, ok := coerceVersion(body)
	if !ok {
		return p
	}

	switch op {
	case "^":
		p.floor = floor
		p.Normalized = fmt.Sprintf(">=%s <%s", floor, caretCeiling(floor))
	case "~":
		p.floor = floor
		p.Normalized = fmt.Sprintf(">=%s <%s", floor, tildeCeiling(floor, specified))
	case ">=", ">":
		p.floor = floor
		p.Normalized = op + floor.String()
	case "<", "<=":
		p.Normalized = op + floor.String()
	default:
		p.floor = floor
		if specified < 3 {
			p.Normalized = fmt.Sprintf(">=%s <%s", floor, xRangeCeiling(floor, specified))
		} else {
			p.Normalized = "=" + floor.String()
		}
	}
	return p
}

func splitOperator(raw string) (op, body string) {
	for _, prefix := range []string{">=", "<=", ">", "<", "^", "~", "="} {
		if strings.HasPrefix(raw, prefix) {
			return prefix, strings.TrimSpace(strings.TrimPrefix(raw, prefix))
		}
	}
	return "", raw
}

// coerceVersion fills missing and wildcard components with zero.
// specified counts the components given before the first wildcard, so
// "1.2.x" and "1.2" both come back as (1.2.0, 2).
func coerceVersion(body string) (floor *semver.Version, specified int, ok bool) {
	core := body
	suffix := ""
	if i := strings.IndexAny(body, "-+"); i >= 0 {
		core, suffix = body[:i], body[i:]
	}

	segs := strings.Split(core, ".")
	if len(segs) > 3 {
		return nil, 0, false
	}
	filled := []string{"0", "0", "0"}
	for i, seg := range segs {
		if seg == "x" || seg == "X" || seg == "*" {
			break
		}
		filled[i] = seg
		specified = i + 1
	}

	if specified == 3 {
		v, err := semver.NewVersion(core + suffix)
		if err != nil {
			return nil, 0, false
		}
		return v, specified, true
	}
	v, err := semver.NewVersion(strings.Join(filled, "."))
	if err != nil {
		return nil, 0, false
	}
	return v, specified, true
}

// caretCeiling widens to the next non-zero component: ^1.2.3 admits
// up to 2.0.0, ^0.2.3 up to 0.3.0, ^0.0.3 up to 0.0.4.
func caretCeiling(floor *semver.Version) string {
	switch {
	case floor.Major() > 0:
		v := floor.IncMajor()
		return v.String()
	case floor.Minor() > 0:
		v := floor.IncMinor()
		return v.String()
	default:
		v := floor.IncPatch()
		return v.String()
	}
}

// tildeCeiling widens to the next minor when a minor was given, the
// next major otherwise: ~1.2.3 and ~1.2 admit up to 1.3.0, ~1 up to
// 2.0.0.
func tildeCeiling(floor *semver.Version, specified int) string {
	if specified >= 2 {
		v := floor.IncMinor()
		return v.String()
	}
	v := floor.IncMajor()
	return v.String()
}

// xRangeCeiling widens the first unspecified component: 1.2 admits up
// to 1.3.0, 1 up to 2.0.0.
func xRangeCeiling(floor *semver.Version, specified int) string {
	if specified >= 2 {
		v := floor.IncMinor()
		return v.String()
	}
	v := floor.IncMajor()
	return v.String()
}
