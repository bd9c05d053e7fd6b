package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/sqboot/pkg/pattern"
)

func TestLLM_RenderSummaryAndTable(t *testing.T) {
	out := NewLLM().Render(samplePatterns())

	assert.True(t, strings.HasPrefix(out, "SCOPE: Pre-Processing: ok\n"), "got:\n%s", out)
	assert.Contains(t, out, "  Server    http://localhost:9000\n")
	assert.Contains(t, out, "  WARN Warnings  1\n")
	assert.Contains(t, out, "## Effective properties (2)")
	assert.Contains(t, out, "  sonar.host.url  http://localhost:9000  [command line]\n")
	assert.Contains(t, out, "  sonar.login     ******  [file]\n")
	assert.NotContains(t, out, "\033[")
}

func TestLLM_RenderError(t *testing.T) {
	out := NewLLM().Render([]pattern.Pattern{
		&pattern.Summary{Label: "Post-Processing: failed"},
		&pattern.Error{Source: "argument processing", Messages: []string{"first", "second\ndetail"}},
	})

	assert.Contains(t, out, "## argument processing failed (2 err)")
	assert.Contains(t, out, "  ERR first\n")
	assert.Contains(t, out, "  ERR second\n    detail\n")
}

func TestLLM_AlignsWideRunes(t *testing.T) {
	out := NewLLM().Render([]pattern.Pattern{
		&pattern.PropertyTable{Label: "p", Rows: []pattern.PropertyRow{
			{ID: "名前", Value: "a", Source: pattern.SourceFile},
			{ID: "name", Value: "b", Source: pattern.SourceFile},
		}},
	})

	assert.Contains(t, out, "  名前  a  [file]\n")
	assert.Contains(t, out, "  name  b  [file]\n")
}
