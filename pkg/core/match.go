package core

import (
	"fmt"
	"strings"
)

// EmptyQueryPolicy decides what an empty search query matches.
type EmptyQueryPolicy int

const (
	// EmptyQueryNone makes an empty query return no hits.
	EmptyQueryNone EmptyQueryPolicy = iota
	// EmptyQueryAll makes an empty query match every record, since the empty
	// string is a substring of everything.
	EmptyQueryAll
)

// String implements fmt.Stringer.
func (p EmptyQueryPolicy) String() string {
	switch p {
	case EmptyQueryNone:
		return "none"
	case EmptyQueryAll:
		return "all"
	default:
		return fmt.Sprintf("EmptyQueryPolicy(%d)", int(p))
	}
}

// ParseEmptyQueryPolicy maps "none"/"all" (case-insensitive) to a policy.
func ParseEmptyQueryPolicy(s string) (EmptyQueryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return EmptyQueryNone, nil
	case "all":
		return EmptyQueryAll, nil
	default:
		return EmptyQueryNone, fmt.Errorf("invalid empty query policy %q (want none or all)", s)
	}
}

// Matcher performs case-insensitive substring matching for one query.
// The query is lowered once; each candidate value is lowered on Match.
type Matcher struct {
	needle string
	empty  bool
	policy EmptyQueryPolicy
}

// NewMatcher prepares a matcher for query.
func NewMatcher(query string, policy EmptyQueryPolicy) Matcher {
	return Matcher{
		needle: strings.ToLower(query),
		empty:  query == "",
		policy: policy,
	}
}

// Disabled reports whether the matcher can never match (empty query under
// EmptyQueryNone). Searches use it to skip the scan entirely.
func (m Matcher) Disabled() bool {
	return m.empty && m.policy == EmptyQueryNone
}

// Match reports whether value contains the query, ignoring case.
// Empty values never match, whatever the policy.
func (m Matcher) Match(value string) bool {
	if value == "" {
		return false
	}
	if m.empty {
		return m.policy == EmptyQueryAll
	}
	return strings.Contains(strings.ToLower(value), m.needle)
}
