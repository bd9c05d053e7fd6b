package args

import (
	"github.com/dkoosis/sqboot/internal/logging"
	"github.com/dkoosis/sqboot/pkg/property"
)

// Phase is the analysis phase a run performs.
type Phase int

const (
	// PreProcessing prepares the analysis before the build.
	PreProcessing Phase = iota
	// PostProcessing finalizes and uploads results after the build.
	PostProcessing
)

func (p Phase) String() string {
	if p == PreProcessing {
		return "pre-processing"
	}
	return "post-processing"
}

// Settings is the validated outcome of argument processing. It is never
// modified after TryProcess returns it; accessors hand out copies.
type Settings struct {
	url            string
	phase          Phase
	childArgs      []string
	verbosity      logging.Verbosity
	projectKey     string
	projectName    string
	projectVersion string
	local          property.List
	file           property.List
	propertiesFile string
}

// URL returns the SonarQube server URL.
func (s *Settings) URL() string { return s.url }

// Phase returns the selected analysis phase.
func (s *Settings) Phase() Phase { return s.phase }

// ChildArgs returns the arguments to forward to the next phase's process:
// the original tokens minus verbs and the settings file flag.
func (s *Settings) ChildArgs() []string {
	out := make([]string, len(s.childArgs))
	copy(out, s.childArgs)
	return out
}

// Verbosity returns the effective logging verbosity.
func (s *Settings) Verbosity() logging.Verbosity { return s.verbosity }

func (s *Settings) ProjectKey() string     { return s.projectKey }
func (s *Settings) ProjectName() string    { return s.projectName }
func (s *Settings) ProjectVersion() string { return s.projectVersion }

// LocalProperties returns the /d: properties in command-line order.
func (s *Settings) LocalProperties() property.List { return s.local.Clone() }

// FileProperties returns the properties loaded from the settings file.
func (s *Settings) FileProperties() property.List { return s.file.Clone() }

// Properties returns file properties followed by command-line properties,
// the order in which lookups resolve.
func (s *Settings) Properties() property.List { return property.Concat(s.file, s.local) }

// PropertiesFile returns the path of the settings file that was loaded, or
// "" when none was.
func (s *Settings) PropertiesFile() string { return s.propertiesFile }
