package verbosity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/sqboot/internal/logging"
	"github.com/dkoosis/sqboot/pkg/property"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		props        property.List
		want         logging.Verbosity
		wantWarnings int
	}{
		{"no properties", nil, logging.Info, 0},
		{"verbose true", property.List{{ID: property.Verbose, Value: "true"}}, logging.Debug, 0},
		{"verbose TRUE ignores case", property.List{{ID: property.Verbose, Value: "TRUE"}}, logging.Debug, 0},
		{"verbose false", property.List{{ID: property.Verbose, Value: "False"}}, logging.Info, 0},
		{"log level debug", property.List{{ID: property.LogLevel, Value: "INFO|DEBUG"}}, logging.Debug, 0},
		{"log level lower-case debug", property.List{{ID: property.LogLevel, Value: "debug"}}, logging.Debug, 0},
		{"log level info", property.List{{ID: property.LogLevel, Value: "INFO"}}, logging.Info, 0},
		{
			"verbose false wins over log level",
			property.List{{ID: property.LogLevel, Value: "DEBUG"}, {ID: property.Verbose, Value: "false"}},
			logging.Info, 0,
		},
		{
			"verbose true wins over log level",
			property.List{{ID: property.LogLevel, Value: "INFO"}, {ID: property.Verbose, Value: "true"}},
			logging.Debug, 0,
		},
		{"non-boolean verbose warns", property.List{{ID: property.Verbose, Value: "yes"}}, logging.Info, 1},
		{
			"non-boolean verbose falls through to log level",
			property.List{{ID: property.Verbose, Value: "1"}, {ID: property.LogLevel, Value: "DEBUG"}},
			logging.Debug, 1,
		},
		{
			"last verbose entry decides",
			property.List{{ID: property.Verbose, Value: "true"}, {ID: property.Verbose, Value: "false"}},
			logging.Info, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := logging.NewRecorder()

			got := Resolve(tt.props, rec)

			assert.Equal(t, tt.want, got)
			assert.Len(t, rec.Warnings, tt.wantWarnings)
			assert.Empty(t, rec.Errors)
		})
	}
}

func TestResolve_WarningNamesValue(t *testing.T) {
	rec := logging.NewRecorder()
	Resolve(property.List{{ID: property.Verbose, Value: "yes"}}, rec)

	if assert.Len(t, rec.Warnings, 1) {
		assert.Contains(t, rec.Warnings[0], "yes")
	}
}
