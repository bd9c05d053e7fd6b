// Package property holds ordered analysis properties, the sensitivity policy
// applied before they are persisted, and the file formats they persist to.
package property

// Well-known property ids the bootstrapper interprets.
const (
	HostURL        = "sonar.host.url"
	Verbose        = "sonar.verbose"
	LogLevel       = "sonar.log.level"
	ProjectKey     = "sonar.projectKey"
	ProjectName    = "sonar.projectName"
	ProjectVersion = "sonar.projectVersion"
)

// Property is a single analysis setting.
type Property struct {
	ID    string `yaml:"id"`
	Value string `yaml:"value"`
}

// List is an ordered sequence of properties. Order is significant: entries
// are never deduplicated, and lookups return the last matching entry so that
// callers override by appending.
type List []Property

// Add appends a property.
func (l *List) Add(id, value string) {
	*l = append(*l, Property{ID: id, Value: value})
}

// Get returns the value of the last property with the given id.
func (l List) Get(id string) (string, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].ID == id {
			return l[i].Value, true
		}
	}
	return "", false
}

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Concat returns a new list holding the entries of all lists in order.
func Concat(lists ...List) List {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make(List, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
