package pattern

// Property sources, lowest precedence first.
const (
	SourceServer      = "server"
	SourceFile        = "file"
	SourceCommandLine = "command line"
)

// RedactedValue replaces the value of a sensitive property.
const RedactedValue = "******"

// PropertyTable lists analysis properties with where each came from.
type PropertyTable struct {
	Label string
	Rows  []PropertyRow
}

// PropertyRow is a single property. Sensitive rows carry RedactedValue.
type PropertyRow struct {
	ID        string `json:"id"`
	Value     string `json:"value"`
	Source    string `json:"source"`
	Sensitive bool   `json:"sensitive,omitempty"`
}

func (t *PropertyTable) Type() PatternType { return PatternTypePropertyTable }
