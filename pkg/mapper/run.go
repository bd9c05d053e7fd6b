// Package mapper converts bootstrapper run results into visualization patterns.
package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/sqboot/pkg/pattern"
	"github.com/dkoosis/sqboot/pkg/property"
)

var titler = cases.Title(language.English)

// Run is everything known about one bootstrapper invocation.
type Run struct {
	Phase          string // "pre-processing", "post-processing", or empty if undecided
	HostURL        string
	ProjectKey     string
	ProjectName    string
	ProjectVersion string
	Verbosity      string
	ChildArgs      int
	SettingsFile   string
	ConfigPath     string

	// Property layers, lowest precedence first.
	Server      property.List
	File        property.List
	CommandLine property.List

	// Policy decides which values are redacted. Nil means property.DefaultPolicy.
	Policy property.Policy

	Warnings    int
	Errors      []string
	FailedStage string
}

// Failed reports whether the run ended in an error.
func (r Run) Failed() bool {
	return r.FailedStage != "" || len(r.Errors) > 0
}

// FromRun converts a run into a summary, a property table and, when the run
// failed, an error pattern.
func FromRun(r Run) []pattern.Pattern {
	patterns := []pattern.Pattern{runSummary(r)}

	if t := propertyTable(r); len(t.Rows) > 0 {
		patterns = append(patterns, t)
	}

	if r.Failed() {
		stage := r.FailedStage
		if stage == "" {
			stage = "run"
		}
		patterns = append(patterns, &pattern.Error{Source: stage, Messages: r.Errors})
	}
	return patterns
}

func runSummary(r Run) *pattern.Summary {
	phase := "Run"
	if r.Phase != "" {
		phase = titler.String(r.Phase)
	}
	status := "ok"
	if r.Failed() {
		status = "failed"
	}

	var metrics []pattern.SummaryItem
	add := func(label, value, kind string) {
		if value != "" {
			metrics = append(metrics, pattern.SummaryItem{Label: label, Value: value, Kind: kind})
		}
	}

	add("Server", r.HostURL, pattern.KindInfo)
	add("Project", project(r), pattern.KindInfo)
	add("Verbosity", r.Verbosity, pattern.KindInfo)
	if r.Phase != "" {
		add("Child args", strconv.Itoa(r.ChildArgs), pattern.KindInfo)
	}
	add("Settings file", r.SettingsFile, pattern.KindInfo)
	add("Analysis config", r.ConfigPath, pattern.KindSuccess)

	warnKind := pattern.KindSuccess
	if r.Warnings > 0 {
		warnKind = pattern.KindWarning
	}
	add("Warnings", strconv.Itoa(r.Warnings), warnKind)
	if len(r.Errors) > 0 {
		add("Errors", strconv.Itoa(len(r.Errors)), pattern.KindError)
	}

	return &pattern.Summary{
		Label:   fmt.Sprintf("%s: %s", phase, status),
		Kind:    pattern.SummaryKindRun,
		Metrics: metrics,
	}
}

func project(r Run) string {
	if r.ProjectKey == "" && r.ProjectName == "" {
		return ""
	}
	parts := []string{r.ProjectKey}
	if r.ProjectName != "" && r.ProjectName != r.ProjectKey {
		parts = append(parts, "("+r.ProjectName+")")
	}
	if r.ProjectVersion != "" {
		parts = append(parts, r.ProjectVersion)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func propertyTable(r Run) *pattern.PropertyTable {
	policy := r.Policy
	if policy == nil {
		policy = property.DefaultPolicy
	}

	t := &pattern.PropertyTable{Label: "Properties"}
	layers := []struct {
		source string
		list   property.List
	}{
		{pattern.SourceServer, r.Server},
		{pattern.SourceFile, r.File},
		{pattern.SourceCommandLine, r.CommandLine},
	}
	for _, layer := range layers {
		for _, p := range layer.list {
			row := pattern.PropertyRow{ID: p.ID, Value: p.Value, Source: layer.source}
			if policy.IsSensitive(p.ID, p.Value) {
				row.Value = pattern.RedactedValue
				row.Sensitive = true
			}
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}
