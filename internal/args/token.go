package args

import (
	"fmt"
	"strings"
)

// Verbs select the analysis phase.
const (
	BeginVerb = "begin"
	EndVerb   = "end"
)

// Argument prefixes.
const (
	PropertyPrefix     = "/d:"
	SettingsFilePrefix = "/s:"
	ProjectKeyPrefix   = "/key:"
	ProjectNamePrefix  = "/name:"
	VersionPrefix      = "/version:"
)

type tokenKind int

const (
	passthroughToken tokenKind = iota
	verbToken
	propertyToken
	settingsFileToken
	identityToken
)

// token is the classified form of one raw argument.
type token struct {
	kind tokenKind
	raw  string

	// verbToken: the verb. passthroughToken: the verb it resembles, if any.
	verb string

	// propertyToken and identityToken. For identity tokens key is the prefix.
	key   string
	value string

	// propertyToken only: non-empty when the argument is malformed.
	problem string

	// settingsFileToken only.
	path string
}

func classifyAll(raw []string) []token {
	tokens := make([]token, len(raw))
	for i, r := range raw {
		tokens[i] = classify(r)
	}
	return tokens
}

func classify(raw string) token {
	switch {
	case raw == BeginVerb || raw == EndVerb:
		return token{kind: verbToken, raw: raw, verb: raw}
	case strings.HasPrefix(raw, PropertyPrefix):
		key, value, problem := parseProperty(strings.TrimPrefix(raw, PropertyPrefix))
		return token{kind: propertyToken, raw: raw, key: key, value: value, problem: problem}
	case strings.HasPrefix(raw, SettingsFilePrefix):
		path := strings.TrimLeft(strings.TrimPrefix(raw, SettingsFilePrefix), " \t")
		return token{kind: settingsFileToken, raw: raw, path: path}
	}

	for _, prefix := range []string{ProjectKeyPrefix, ProjectNamePrefix, VersionPrefix} {
		if strings.HasPrefix(raw, prefix) {
			return token{kind: identityToken, raw: raw, key: prefix, value: strings.TrimPrefix(raw, prefix)}
		}
	}

	return token{kind: passthroughToken, raw: raw, verb: resembledVerb(raw)}
}

// maxVerbSuffix is how many characters may follow a verb in a token that
// still resembles it.
const maxVerbSuffix = 3

// resembledVerb returns the verb that raw looks like without being it: the
// verb in any letter case followed by at most maxVerbSuffix characters, e.g.
// "BEGIN" or "endX". Longer words such as "beginning" or "endpoint=x" are
// ordinary arguments.
func resembledVerb(raw string) string {
	lower := strings.ToLower(raw)
	for _, verb := range []string{BeginVerb, EndVerb} {
		if strings.HasPrefix(lower, verb) && len(lower)-len(verb) <= maxVerbSuffix {
			return verb
		}
	}
	return ""
}

// parseProperty splits "key=value". problem is set when the argument is
// malformed; it names the offending key fragment.
func parseProperty(body string) (key, value, problem string) {
	idx := strings.Index(body, "=")
	if idx < 0 {
		return body, "", fmt.Sprintf("The analysis property %q is missing '='. Expected %skey=value.", body, PropertyPrefix)
	}
	key, value = body[:idx], body[idx+1:]

	switch {
	case strings.TrimSpace(key) == "":
		problem = fmt.Sprintf("The analysis property %q has an empty key. Expected %skey=value.", body, PropertyPrefix)
	case key != strings.TrimSpace(key):
		problem = fmt.Sprintf("The format of the analysis property %q is invalid: the key must not start or end with spaces.", key)
	case value != strings.TrimLeft(value, " \t"):
		problem = fmt.Sprintf("The format of the analysis property %q is invalid: there must be no space after '='.", key)
	}
	return key, value, problem
}
