package analysisconfig

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dkoosis/sqboot/internal/args"
	"github.com/dkoosis/sqboot/internal/buildenv"
	"github.com/dkoosis/sqboot/internal/logging"
	"github.com/dkoosis/sqboot/pkg/property"
)

// ErrMissingArgument reports a required collaborator that was not supplied.
// It signals a caller defect.
var ErrMissingArgument = errors.New("analysisconfig: required argument is nil")

// Option configures Generate.
type Option func(*options)

type options struct {
	policy property.Policy
}

// WithPolicy replaces the sensitivity policy used to filter properties.
func WithPolicy(p property.Policy) Option {
	return func(o *options) { o.policy = p }
}

// Generate combines processed arguments, build environment settings and
// server properties into a Config, saves it to env.AnalysisConfigPath() and
// returns it. Sensitive properties never reach the document.
func Generate(settings *args.Settings, env *buildenv.Settings, serverProps map[string]string, logger logging.Logger, opts ...Option) (*Config, error) {
	switch {
	case settings == nil:
		return nil, fmt.Errorf("%w: settings", ErrMissingArgument)
	case env == nil:
		return nil, fmt.Errorf("%w: build environment settings", ErrMissingArgument)
	case serverProps == nil:
		return nil, fmt.Errorf("%w: server properties", ErrMissingArgument)
	case logger == nil:
		return nil, fmt.Errorf("%w: logger", ErrMissingArgument)
	}

	o := options{policy: property.DefaultPolicy}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Config{
		ProjectKey:     settings.ProjectKey(),
		ProjectName:    settings.ProjectName(),
		ProjectVersion: settings.ProjectVersion(),
		HostURL:        settings.URL(),

		BuildURI:  env.BuildURI,
		TfsURI:    env.TfsURI,
		ConfigDir: env.ConfigDir,
		OutputDir: env.OutputDir,
		BinDir:    env.BinDir,

		SettingsFilePath: settings.PropertiesFile(),
	}

	keys := make([]string, 0, len(serverProps))
	for k := range serverProps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	server := make(property.List, 0, len(keys))
	for _, k := range keys {
		server.Add(k, serverProps[k])
	}

	c.ServerSettings = filter(server, o.policy, "server", logger)
	c.LocalSettings = filter(settings.LocalProperties(), o.policy, "local", logger)

	path := env.AnalysisConfigPath()
	logger.Infof("Saving the analysis config to %s", path)
	if err := c.Save(path); err != nil {
		return nil, err
	}
	return c, nil
}

func filter(l property.List, policy property.Policy, source string, logger logging.Logger) property.List {
	kept := property.Filter(l, policy)
	if dropped := len(l) - len(kept); dropped > 0 {
		logger.Debugf("excluded %d sensitive %s setting(s) from the analysis config", dropped, source)
	}
	return kept
}
