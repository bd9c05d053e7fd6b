package pattern

// SummaryKind identifies what a summary describes.
type SummaryKind string

const SummaryKindRun SummaryKind = "run"

// Metric kinds control coloring.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindWarning = "warning"
	KindInfo    = "info"
)

// Summary represents high-level facts about a run.
type Summary struct {
	Label   string
	Kind    SummaryKind
	Metrics []SummaryItem
}

// SummaryItem is a single fact in a summary.
type SummaryItem struct {
	Label string // e.g. "Server", "Phase", "Warnings"
	Value string // formatted value
	Kind  string // success, error, warning, info
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
