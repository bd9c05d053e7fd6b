// Package buildenv describes the build the bootstrapper runs inside: where
// the analysis directories live and which build and version-control URIs
// identify the run.
//
// # Environment variables
//
// Team Foundation build agents (TFS 2015 and later):
//
//   - TF_BUILD: "True" on a build agent
//   - BUILD_BUILDURI, SYSTEM_TEAMFOUNDATIONCOLLECTIONURI, AGENT_BUILDDIRECTORY
//
// Legacy XAML builds:
//
//   - TF_BUILD_BUILDURI, TF_BUILD_COLLECTIONURI, TF_BUILD_BUILDDIRECTORY
//
// Outside a team build the working directory is the build directory.
package buildenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvTFBuild             = "TF_BUILD"
	EnvBuildURI            = "BUILD_BUILDURI"
	EnvCollectionURI       = "SYSTEM_TEAMFOUNDATIONCOLLECTIONURI"
	EnvBuildDirectory      = "AGENT_BUILDDIRECTORY"
	EnvLegacyBuildURI      = "TF_BUILD_BUILDURI"
	EnvLegacyCollectionURI = "TF_BUILD_COLLECTIONURI"
	EnvLegacyBuildDir      = "TF_BUILD_BUILDDIRECTORY"
)

// Directory and file names under the build directory.
const (
	AnalysisRootDir        = ".sonarqube"
	ConfigDirName          = "conf"
	OutputDirName          = "out"
	BinDirName             = "bin"
	AnalysisConfigFileName = "SonarQubeAnalysisConfig.xml"
)

// Kind identifies the build environment that was detected.
type Kind string

const (
	KindTeamBuild   Kind = "team-build"
	KindLegacyBuild Kind = "legacy-team-build"
	KindLocal       Kind = "local"
)

// Settings locates the analysis directories for one build.
type Settings struct {
	Kind           Kind
	BuildURI       string
	TfsURI         string
	BuildDirectory string
	ConfigDir      string
	OutputDir      string
	BinDir         string
}

// AnalysisConfigPath is the fixed location of the analysis config document.
func (s *Settings) AnalysisConfigPath() string {
	return filepath.Join(s.ConfigDir, AnalysisConfigFileName)
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnvironment detects the build environment. workDir is used as the
// build directory outside a team build.
func FromEnvironment(lookup LookupFunc, workDir string) (*Settings, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	s := &Settings{Kind: KindLocal, BuildDirectory: workDir}
	switch {
	case isTrue(get(EnvTFBuild)):
		s.Kind = KindTeamBuild
		s.BuildURI = get(EnvBuildURI)
		s.TfsURI = get(EnvCollectionURI)
		s.BuildDirectory = get(EnvBuildDirectory)
	case get(EnvLegacyBuildURI) != "":
		s.Kind = KindLegacyBuild
		s.BuildURI = get(EnvLegacyBuildURI)
		s.TfsURI = get(EnvLegacyCollectionURI)
		s.BuildDirectory = get(EnvLegacyBuildDir)
	}

	if s.BuildDirectory == "" {
		return nil, fmt.Errorf("%s build: build directory is not set", s.Kind)
	}

	root := filepath.Join(s.BuildDirectory, AnalysisRootDir)
	s.ConfigDir = filepath.Join(root, ConfigDirName)
	s.OutputDir = filepath.Join(root, OutputDirName)
	s.BinDir = filepath.Join(root, BinDirName)
	return s, nil
}

// LoadDotEnv returns a lookup that consults the real environment first and
// then the variables in a .env file. A missing file yields os.LookupEnv.
func LoadDotEnv(path string) (LookupFunc, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.LookupEnv, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// MapLookup adapts a map to LookupFunc.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
