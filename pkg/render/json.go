package render

import (
	"encoding/json"

	"github.com/dkoosis/sqboot/pkg/pattern"
)

// JSONSchemaVersion is bumped when the report layout changes incompatibly.
const JSONSchemaVersion = 1

// JSON renders the run as a single report object for automation. Summary
// metrics, property rows and errors each get their own key.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonReport struct {
	Tool       string                `json:"tool"`
	Schema     int                   `json:"schema"`
	OK         bool                  `json:"ok"`
	Summary    *jsonSummary          `json:"summary,omitempty"`
	Properties []pattern.PropertyRow `json:"properties"`
	Errors     []jsonError           `json:"errors,omitempty"`
}

type jsonSummary struct {
	Label   string       `json:"label"`
	Kind    string       `json:"kind"`
	Metrics []jsonMetric `json:"metrics"`
}

type jsonMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

type jsonError struct {
	Stage    string   `json:"stage"`
	Messages []string `json:"messages"`
}

// Render formats the patterns as one JSON report. Later summaries replace
// earlier ones; property tables are concatenated.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	out := jsonReport{
		Tool:       "sqboot",
		Schema:     JSONSchemaVersion,
		OK:         true,
		Properties: []pattern.PropertyRow{},
	}

	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			s := &jsonSummary{Label: v.Label, Kind: string(v.Kind), Metrics: make([]jsonMetric, 0, len(v.Metrics))}
			for _, m := range v.Metrics {
				s.Metrics = append(s.Metrics, jsonMetric(m))
				if m.Kind == pattern.KindError {
					out.OK = false
				}
			}
			out.Summary = s
		case *pattern.PropertyTable:
			out.Properties = append(out.Properties, v.Rows...)
		case *pattern.Error:
			out.OK = false
			out.Errors = append(out.Errors, jsonError{Stage: v.Source, Messages: v.Messages})
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
