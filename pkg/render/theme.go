package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/sqboot/pkg/pattern"
)

// Theme names accepted by ThemeByName.
const (
	ThemeDefault = "default"
	ThemeSonar   = "sonar"
	ThemeMono    = "mono"
)

// Theme styles the run summary, the property table and the console
// logger's level labels.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style

	// PropertyID styles property ids; Redacted styles the mask shown for
	// sensitive values.
	PropertyID lipgloss.Style
	Redacted   lipgloss.Style

	// Sources colors the provenance tag of each property row, keyed by the
	// pattern.Source* constants.
	Sources map[string]lipgloss.Style

	Icons ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass     string
	Fail     string
	Warn     string
	Info     string
	Debug    string
	Bullet   string
	Redacted string
}

// palette holds the 256-color codes a theme is built from. Empty codes
// render unstyled.
type palette struct {
	primary, success, warning, errorC, muted string
	server, file, commandLine                string
	bold                                     bool
}

func (p palette) style(code string) lipgloss.Style {
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func newTheme(name string, p palette, icons ThemeIcons) Theme {
	return Theme{
		Name:       name,
		Primary:    p.style(p.primary),
		Success:    p.style(p.success),
		Warning:    p.style(p.warning),
		Error:      p.style(p.errorC),
		Muted:      p.style(p.muted),
		Bold:       lipgloss.NewStyle().Bold(p.bold),
		PropertyID: p.style(p.primary),
		Redacted:   p.style(p.warning),
		Sources: map[string]lipgloss.Style{
			pattern.SourceServer:      p.style(p.server),
			pattern.SourceFile:        p.style(p.file),
			pattern.SourceCommandLine: p.style(p.commandLine),
		},
		Icons: icons,
	}
}

var unicodeIcons = ThemeIcons{
	Pass:     "✓",
	Fail:     "✗",
	Warn:     "⚠",
	Info:     "●",
	Debug:    "○",
	Bullet:   "·",
	Redacted: "⊘",
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return newTheme(ThemeDefault, palette{
		primary:     "39",  // blue
		success:     "34",  // green
		warning:     "214", // orange
		errorC:      "196", // red
		muted:       "242", // gray
		server:      "141", // violet
		file:        "37",  // teal
		commandLine: "39",
		bold:        true,
	}, unicodeIcons)
}

// SonarTheme returns a subdued theme in SonarQube's blues.
func SonarTheme() Theme {
	icons := unicodeIcons
	icons.Warn = "!"
	icons.Info = "·"
	return newTheme(ThemeSonar, palette{
		primary:     "74",  // sonar blue
		success:     "71",  // quality gate green
		warning:     "179", // muted gold
		errorC:      "167", // muted red
		muted:       "245",
		server:      "110",
		file:        "109",
		commandLine: "74",
		bold:        true,
	}, icons)
}

// MonoTheme returns a theme with no colors and ASCII icons, for logs and
// NO_COLOR terminals.
func MonoTheme() Theme {
	return newTheme(ThemeMono, palette{}, ThemeIcons{
		Pass:     "+",
		Fail:     "x",
		Warn:     "!",
		Info:     "*",
		Debug:    "-",
		Bullet:   "-",
		Redacted: "#",
	})
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case ThemeSonar:
		return SonarTheme()
	case ThemeMono:
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// Source styles a property source tag. Unknown sources are muted.
func (t Theme) Source(source string) string {
	style, ok := t.Sources[source]
	if !ok {
		style = t.Muted
	}
	return style.Render(source)
}

// Level renders a console level label padded to five columns. level is a
// zerolog level name.
func (t Theme) Level(level string) string {
	switch level {
	case "debug":
		return t.Muted.Render(t.Icons.Debug + " DEBUG")
	case "info":
		return t.Primary.Render(t.Icons.Info + " INFO ")
	case "warn":
		return t.Warning.Render(t.Icons.Warn + " WARN ")
	case "error":
		return t.Error.Render(t.Icons.Fail + " ERROR")
	default:
		return fmt.Sprintf("%-7s", level)
	}
}
