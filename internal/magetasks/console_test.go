package magetasks

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/sqboot/pkg/render"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldTheme := Out, theme
	Out, theme = &buf, render.MonoTheme()
	t.Cleanup(func() { Out, theme = oldOut, oldTheme })
	return &buf
}

func TestPrintHeaders(t *testing.T) {
	buf := captureOut(t)

	PrintH1Header("Test Title")
	PrintH2Header("Section")

	out := buf.String()
	assert.Contains(t, out, "Test Title")
	assert.Contains(t, out, "=====")
	assert.Contains(t, out, "=== Section ===")
}

func TestPrintMessages(t *testing.T) {
	buf := captureOut(t)

	PrintSuccess("built")
	PrintWarning("careful")
	PrintError("broken")
	PrintInfo("note")

	assert.Equal(t, "+ built\n! careful\nx broken\n* note\n", buf.String())
}
