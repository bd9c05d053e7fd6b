package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/sqboot/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.PropertyTable:
		return t.renderPropertyTable(v)
	case *pattern.Error:
		return t.renderError(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Bold.Render(s.Label))
		sb.WriteString("\n")
	}
	w := labelWidth(s.Metrics)
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(style.Render(icon + " " + padRight(m.Label, w)))
		sb.WriteString("  ")
		sb.WriteString(truncate(m.Value, t.width-w-6))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderPropertyTable(pt *pattern.PropertyTable) string {
	if len(pt.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(fmt.Sprintf("%s (%d)", pt.Label, len(pt.Rows))))
	sb.WriteString("\n")

	w := idWidth(pt.Rows, 50)
	for _, r := range pt.Rows {
		sb.WriteString("  ")
		sb.WriteString(t.theme.PropertyID.Render(padRight(truncate(r.ID, w), w)))
		sb.WriteString("  ")
		room := t.width - w - runewidth.StringWidth(r.Source) - 7
		if r.Sensitive {
			sb.WriteString(t.theme.Redacted.Render(t.theme.Icons.Redacted + " " + r.Value))
		} else {
			sb.WriteString(truncate(r.Value, room))
		}
		sb.WriteString(" ")
		sb.WriteString(t.theme.Source(r.Source))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderError(e *pattern.Error) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Error.Render(fmt.Sprintf("%s %s failed", t.theme.Icons.Fail, e.Source)))
	sb.WriteString("\n")
	for _, m := range e.Messages {
		for i, line := range strings.Split(m, "\n") {
			if i == 0 {
				sb.WriteString("  " + t.theme.Icons.Bullet + " " + line + "\n")
				continue
			}
			sb.WriteString(t.theme.Muted.Render("    "+line) + "\n")
		}
	}
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case pattern.KindSuccess:
		return t.theme.Icons.Pass, t.theme.Success
	case pattern.KindError:
		return t.theme.Icons.Fail, t.theme.Error
	case pattern.KindWarning:
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}
