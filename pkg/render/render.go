// Package render provides output renderers for sqboot's run summary patterns.
package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/sqboot/pkg/pattern"
)

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// Output modes.
const (
	ModeTerminal = "terminal"
	ModeLLM      = "llm"
	ModeJSON     = "json"
)

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// truncate shortens s to the given display width, marking the cut.
func truncate(s string, width int) string {
	if width <= 3 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// labelWidth is the widest metric label, in display cells.
func labelWidth(items []pattern.SummaryItem) int {
	w := 0
	for _, m := range items {
		if n := runewidth.StringWidth(m.Label); n > w {
			w = n
		}
	}
	return w
}

// idWidth is the widest property id, capped at limit.
func idWidth(rows []pattern.PropertyRow, limit int) int {
	w := 0
	for _, r := range rows {
		if n := runewidth.StringWidth(r.ID); n > w {
			w = n
		}
	}
	if w > limit {
		w = limit
	}
	return w
}
