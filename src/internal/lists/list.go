package lists

import (
	"fmt"
	"strings"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/utils"
)

// List identifies one of the domain lists.
type List int

const (
	Allow List = iota + 1
	Deny
	Pattern
)

// All lists in display order.
var All = []List{Allow, Deny, Pattern}

// String returns the list name used in files, URLs and metrics.
func (l List) String() string {
	switch l {
	case Allow:
		return "whitelist"
	case Deny:
		return "blacklist"
	case Pattern:
		return "regexlist"
	default:
		return fmt.Sprintf("list(%d)", int(l))
	}
}

// ParseList parses a list name. Both the file-style names (whitelist,
// blacklist, regexlist) and the short names (allow, deny, pattern, regex)
// are accepted.
func ParseList(name string) (List, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "whitelist", "white", "allow":
		return Allow, nil
	case "blacklist", "black", "deny":
		return Deny, nil
	case "regexlist", "regex", "pattern":
		return Pattern, nil
	default:
		return 0, errors.NewValidationError(fmt.Sprintf("unknown list %q", name), nil)
	}
}

type reaction int

const (
	reactGravityReload reaction = iota + 1
	reactRecompileRegex
)

// policy is the per-list behaviour: what it accepts, which list it excludes
// and how the resolver is told about a change.
type policy struct {
	accepts  func(domain string) bool
	opposite List
	reaction reaction
}

var policies = map[List]policy{
	Allow: {
		accepts:  utils.IsHostname,
		opposite: Deny,
		reaction: reactGravityReload,
	},
	Deny: {
		accepts:  utils.IsHostname,
		opposite: Allow,
		reaction: reactGravityReload,
	},
	Pattern: {
		accepts:  isStorablePattern,
		reaction: reactRecompileRegex,
	},
}

// isStorablePattern reports whether pattern survives a write to a
// line-oriented list file unchanged.
func isStorablePattern(pattern string) bool {
	return pattern != "" &&
		!strings.ContainsAny(pattern, "\r\n") &&
		!strings.HasPrefix(pattern, "#") &&
		strings.TrimSpace(pattern) == pattern
}

func policyFor(l List) (policy, error) {
	p, ok := policies[l]
	if !ok {
		return policy{}, errors.NewUnknownError(fmt.Sprintf("unsupported %s", l), nil)
	}
	return p, nil
}

// Accepts reports whether domain is syntactically valid for the list.
func (l List) Accepts(domain string) bool {
	p, err := policyFor(l)
	return err == nil && p.accepts(domain)
}

// Opposite returns the list that is mutually exclusive with l, if any.
func (l List) Opposite() (List, bool) {
	p, err := policyFor(l)
	if err != nil || p.opposite == 0 {
		return 0, false
	}
	return p.opposite, true
}
