package args

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/dkoosis/sqboot/internal/logging"
	"github.com/dkoosis/sqboot/internal/verbosity"
	"github.com/dkoosis/sqboot/pkg/property"
)

// URLRequiredMessage is logged when no source supplies sonar.host.url.
const URLRequiredMessage = "A SonarQube server URL must be supplied, either with /d:" + property.HostURL + "=<url> or in the analysis settings file."

// Option configures TryProcess.
type Option func(*options)

type options struct {
	defaultPropertiesFile string
}

// WithDefaultPropertiesFile names a settings file to load when no /s:
// argument is given. A missing default file is not an error.
func WithDefaultPropertiesFile(path string) Option {
	return func(o *options) { o.defaultPropertiesFile = path }
}

// TryProcess validates tokens and builds Settings. Problems are reported
// through logger; on any error it returns (nil, false). Warnings never cause
// failure.
func TryProcess(tokens []string, logger logging.Logger, opts ...Option) (*Settings, bool) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	classified := classifyAll(tokens)

	phase, phaseOK := resolvePhase(classified, logger)
	local, localOK := collectLocalProperties(classified, logger)
	file, path, fileOK := loadSettingsFile(classified, o, logger)
	if !phaseOK || !localOK || !fileOK {
		return nil, false
	}

	merged := property.Concat(file, local)

	url, _ := merged.Get(property.HostURL)
	if url == "" {
		logger.Errorf("%s", URLRequiredMessage)
		return nil, false
	}

	s := &Settings{
		url:            url,
		phase:          phase,
		childArgs:      childArgs(classified),
		verbosity:      verbosity.Resolve(merged, logger),
		local:          local,
		file:           file,
		propertiesFile: path,
	}
	s.projectKey = identity(classified, ProjectKeyPrefix, merged, property.ProjectKey)
	s.projectName = identity(classified, ProjectNamePrefix, merged, property.ProjectName)
	s.projectVersion = identity(classified, VersionPrefix, merged, property.ProjectVersion)

	logger.Debugf("phase: %s, url: %s, verbosity: %s", s.phase, s.url, s.verbosity)
	return s, true
}

// resolvePhase enforces at most one verb. With no verb the phase defaults to
// PostProcessing and a warning is logged.
func resolvePhase(tokens []token, logger logging.Logger) (Phase, bool) {
	var begins, ends int
	var lookalikes []string
	for _, t := range tokens {
		switch {
		case t.kind == verbToken && t.verb == BeginVerb:
			begins++
		case t.kind == verbToken && t.verb == EndVerb:
			ends++
		case t.kind == passthroughToken && t.verb != "":
			lookalikes = append(lookalikes, t.raw)
		}
	}

	switch {
	case begins > 0 && ends > 0:
		logger.Errorf("Only one of the verbs %q and %q may be specified.", BeginVerb, EndVerb)
		return 0, false
	case begins > 1:
		logger.Errorf("The verb %q was specified more than once. It may only be specified once.", BeginVerb)
		return 0, false
	case ends > 1:
		logger.Errorf("The verb %q was specified more than once. It may only be specified once.", EndVerb)
		return 0, false
	case begins == 1:
		logLookalikes(lookalikes, logger)
		return PreProcessing, true
	case ends == 1:
		logLookalikes(lookalikes, logger)
		return PostProcessing, true
	}

	msg := "No analysis phase verb was specified: expecting \"" + BeginVerb + "\" or \"" + EndVerb + "\". Defaulting to the " + PostProcessing.String() + " phase."
	if len(lookalikes) > 0 {
		msg += " These arguments resemble a verb but do not match exactly and were passed through: " + strings.Join(lookalikes, ", ") + "."
	}
	logger.Warnf("%s", msg)
	return PostProcessing, true
}

func logLookalikes(lookalikes []string, logger logging.Logger) {
	for _, raw := range lookalikes {
		logger.Debugf("argument %q resembles a verb and was passed through", raw)
	}
}

// collectLocalProperties gathers /d: properties in order, reporting every
// malformed one before failing.
func collectLocalProperties(tokens []token, logger logging.Logger) (property.List, bool) {
	ok := true
	local := property.List{}
	for _, t := range tokens {
		if t.kind != propertyToken {
			continue
		}
		if t.problem != "" {
			logger.Errorf("%s", t.problem)
			ok = false
			continue
		}
		local.Add(t.key, t.value)
	}
	return local, ok
}

// loadSettingsFile loads the /s: file, or the default file when there is no
// /s: argument. It returns the loaded properties and the path they came from.
func loadSettingsFile(tokens []token, o options, logger logging.Logger) (property.List, string, bool) {
	var flags []token
	for _, t := range tokens {
		if t.kind == settingsFileToken {
			flags = append(flags, t)
		}
	}

	switch {
	case len(flags) > 1:
		logger.Errorf("The analysis settings file may only be specified once with %s.", SettingsFilePrefix)
		return nil, "", false
	case len(flags) == 1:
		path := flags[0].path
		if path == "" {
			logger.Errorf("The %s argument must be followed by the path of an analysis settings file.", SettingsFilePrefix)
			return nil, "", false
		}
		return load(path, logger)
	case o.defaultPropertiesFile != "":
		if _, err := os.Stat(o.defaultPropertiesFile); errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("default properties file %s not found", o.defaultPropertiesFile)
			return property.List{}, "", true
		}
		return load(o.defaultPropertiesFile, logger)
	}
	return property.List{}, "", true
}

func load(path string, logger logging.Logger) (property.List, string, bool) {
	props, err := property.Load(path)
	if err != nil {
		logger.Errorf("Unable to read the analysis settings file: %v", err)
		return nil, "", false
	}
	logger.Debugf("loaded %d properties from %s", len(props), path)
	return props, path, true
}

func childArgs(tokens []token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.kind == verbToken || t.kind == settingsFileToken {
			continue
		}
		out = append(out, t.raw)
	}
	return out
}

// identity returns the last value given with prefix, falling back to the
// property id in merged.
func identity(tokens []token, prefix string, merged property.List, id string) string {
	value := ""
	for _, t := range tokens {
		if t.kind == identityToken && t.key == prefix && t.value != "" {
			value = t.value
		}
	}
	if value != "" {
		return value
	}
	v, _ := merged.Get(id)
	return v
}
