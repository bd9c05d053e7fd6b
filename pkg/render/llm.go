package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/sqboot/pkg/pattern"
)

// LLM renders patterns as terse plain text for logs and AI consumption.
// Zero ANSI codes, SCOPE line first, aligned columns.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text, in pattern order.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.PropertyTable:
			l.renderPropertyTable(&sb, v)
		case *pattern.Error:
			l.renderError(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("SCOPE: " + s.Label + "\n")
	w := labelWidth(s.Metrics)
	for _, m := range s.Metrics {
		sb.WriteString("  " + llmLevel(m.Kind) + padRight(m.Label, w) + "  " + m.Value + "\n")
	}
}

func (l *LLM) renderPropertyTable(sb *strings.Builder, t *pattern.PropertyTable) {
	if len(t.Rows) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n## %s (%d)\n", t.Label, len(t.Rows)))
	w := idWidth(t.Rows, 60)
	for _, r := range t.Rows {
		sb.WriteString("  " + padRight(truncate(r.ID, w), w) + "  " + r.Value + "  [" + r.Source + "]\n")
	}
}

func (l *LLM) renderError(sb *strings.Builder, e *pattern.Error) {
	sb.WriteString(fmt.Sprintf("\n## %s failed (%d err)\n", e.Source, len(e.Messages)))
	for _, m := range e.Messages {
		lines := strings.Split(m, "\n")
		sb.WriteString("  ERR " + lines[0] + "\n")
		for _, line := range lines[1:] {
			sb.WriteString("    " + line + "\n")
		}
	}
}

func llmLevel(kind string) string {
	switch kind {
	case pattern.KindError:
		return "ERR "
	case pattern.KindWarning:
		return "WARN "
	default:
		return ""
	}
}
