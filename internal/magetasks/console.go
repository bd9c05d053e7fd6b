package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkoosis/sqboot/pkg/render"
)

// Out receives task progress. Tests replace it.
var Out io.Writer = os.Stdout

var theme = consoleTheme()

func consoleTheme() render.Theme {
	if os.Getenv("NO_COLOR") != "" {
		return render.MonoTheme()
	}
	return render.DefaultTheme()
}

// PrintH1Header prints a top-level header between rules.
func PrintH1Header(title string) {
	const width = 80
	rule := strings.Repeat("=", width)
	padding := max((width-len(title))/2, 0)
	fmt.Fprintf(Out, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", padding), theme.Bold.Render(title), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Out, "\n%s\n\n", theme.Bold.Render("=== "+title+" ==="))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintln(Out, theme.Success.Render(theme.Icons.Pass+" "+msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintln(Out, theme.Warning.Render(theme.Icons.Warn+" "+msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintln(Out, theme.Error.Render(theme.Icons.Fail+" "+msg))
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Fprintln(Out, theme.Primary.Render(theme.Icons.Info+" "+msg))
}
