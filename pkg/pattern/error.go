package pattern

// Error reports a failed run. Messages are the errors logged during the run.
type Error struct {
	Source   string
	Messages []string
}

func (e *Error) Type() PatternType { return PatternTypeError }
