// Package verbosity derives the effective log verbosity from resolved
// analysis properties.
package verbosity

import (
	"strings"

	"github.com/dkoosis/sqboot/internal/logging"
	"github.com/dkoosis/sqboot/pkg/property"
)

// Default is the verbosity used when no property decides otherwise.
const Default = logging.Info

// Resolve applies, in order: an explicit boolean sonar.verbose, a
// sonar.log.level containing DEBUG, then Default. A non-boolean sonar.verbose
// is reported as a warning and ignored.
func Resolve(props property.List, logger logging.Logger) logging.Verbosity {
	if v, ok := props.Get(property.Verbose); ok {
		switch {
		case strings.EqualFold(v, "true"):
			logger.Debugf("%s=%s selects debug verbosity", property.Verbose, v)
			return logging.Debug
		case strings.EqualFold(v, "false"):
			return logging.Info
		default:
			logger.Warnf("Expecting the %s property to be 'true' or 'false', got %q. The setting will be ignored.", property.Verbose, v)
		}
	}

	if v, ok := props.Get(property.LogLevel); ok && strings.Contains(strings.ToUpper(v), "DEBUG") {
		logger.Debugf("%s=%s selects debug verbosity", property.LogLevel, v)
		return logging.Debug
	}

	return Default
}
