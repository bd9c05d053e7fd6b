package property

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Policy decides whether a property carries credential-like data. Sensitive
// properties are usable in memory but are dropped before anything is
// persisted.
type Policy interface {
	IsSensitive(id, value string) bool
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(id, value string) bool

// IsSensitive implements Policy.
func (f PolicyFunc) IsSensitive(id, value string) bool { return f(id, value) }

// SensitiveKeys are the exact ids known to hold credentials.
var SensitiveKeys = []string{
	"sonar.login",
	"sonar.password",
	"sonar.token",
	"sonar.jdbc.username",
	"sonar.jdbc.password",
}

// SensitivePatterns are glob patterns matched against lower-cased ids.
var SensitivePatterns = []string{
	"*password*",
	"*passwd*",
	"*secret*",
	"*token*",
	"*credential*",
}

// DefaultPolicy is the policy used by Save and by the config generator unless
// a caller supplies another one.
var DefaultPolicy Policy = Patterns(SensitiveKeys, SensitivePatterns)

// IsSensitive reports whether a property matches DefaultPolicy.
func IsSensitive(id, value string) bool {
	return DefaultPolicy.IsSensitive(id, value)
}

// Patterns builds a policy from exact keys and glob patterns. Ids are
// compared case-insensitively. A value is also treated as sensitive when it
// embeds "<key>=", which happens when a raw /d: argument is captured as a
// value.
func Patterns(keys, globs []string) Policy {
	lowered := make([]string, len(keys))
	for i, k := range keys {
		lowered[i] = strings.ToLower(k)
	}
	return &patternPolicy{keys: lowered, globs: globs}
}

type patternPolicy struct {
	keys  []string
	globs []string
}

func (p *patternPolicy) IsSensitive(id, value string) bool {
	lid := strings.ToLower(id)
	for _, k := range p.keys {
		if lid == k {
			return true
		}
	}
	for _, g := range p.globs {
		// Malformed patterns never match; doublestar reports them via err.
		if ok, err := doublestar.Match(g, lid); err == nil && ok {
			return true
		}
	}
	lval := strings.ToLower(value)
	for _, k := range p.keys {
		if strings.Contains(lval, k+"=") {
			return true
		}
	}
	return false
}

// Filter returns the entries of l that policy does not flag. A nil policy
// means DefaultPolicy.
func Filter(l List, policy Policy) List {
	if policy == nil {
		policy = DefaultPolicy
	}
	out := make(List, 0, len(l))
	for _, p := range l {
		if policy.IsSensitive(p.ID, p.Value) {
			continue
		}
		out = append(out, p)
	}
	return out
}
