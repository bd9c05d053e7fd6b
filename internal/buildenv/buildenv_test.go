package buildenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantKind Kind
		wantURI  string
		wantTfs  string
		wantDir  string
	}{
		{
			name:     "local build uses working directory",
			env:      map[string]string{},
			wantKind: KindLocal,
			wantDir:  "/work",
		},
		{
			name: "team build",
			env: map[string]string{
				EnvTFBuild:        "True",
				EnvBuildURI:       "vstfs:///Build/Build/42",
				EnvCollectionURI:  "http://tfs:8080/tfs/Collection",
				EnvBuildDirectory: "/agent/_work/1",
			},
			wantKind: KindTeamBuild,
			wantURI:  "vstfs:///Build/Build/42",
			wantTfs:  "http://tfs:8080/tfs/Collection",
			wantDir:  "/agent/_work/1",
		},
		{
			name: "legacy build",
			env: map[string]string{
				EnvLegacyBuildURI:      "vstfs:///Build/Build/7",
				EnvLegacyCollectionURI: "http://legacy/tfs",
				EnvLegacyBuildDir:      "/legacy/build",
			},
			wantKind: KindLegacyBuild,
			wantURI:  "vstfs:///Build/Build/7",
			wantTfs:  "http://legacy/tfs",
			wantDir:  "/legacy/build",
		},
		{
			name:     "TF_BUILD false is a local build",
			env:      map[string]string{EnvTFBuild: "false"},
			wantKind: KindLocal,
			wantDir:  "/work",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromEnvironment(MapLookup(tt.env), "/work")
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, s.Kind)
			assert.Equal(t, tt.wantURI, s.BuildURI)
			assert.Equal(t, tt.wantTfs, s.TfsURI)
			assert.Equal(t, tt.wantDir, s.BuildDirectory)
			root := filepath.Join(tt.wantDir, AnalysisRootDir)
			assert.Equal(t, filepath.Join(root, "conf"), s.ConfigDir)
			assert.Equal(t, filepath.Join(root, "out"), s.OutputDir)
			assert.Equal(t, filepath.Join(root, "bin"), s.BinDir)
			assert.Equal(t, filepath.Join(root, "conf", AnalysisConfigFileName), s.AnalysisConfigPath())
		})
	}
}

func TestFromEnvironment_TeamBuildWithoutDirectory(t *testing.T) {
	_, err := FromEnvironment(MapLookup(map[string]string{EnvTFBuild: "true"}), "/work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(KindTeamBuild))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SQBOOT_TEST_ONLY_IN_FILE=file\nSQBOOT_TEST_BOTH=file\n"), 0o600))
	t.Setenv("SQBOOT_TEST_BOTH", "process")

	lookup, err := LoadDotEnv(path)
	require.NoError(t, err)

	v, ok := lookup("SQBOOT_TEST_ONLY_IN_FILE")
	assert.True(t, ok)
	assert.Equal(t, "file", v)

	v, _ = lookup("SQBOOT_TEST_BOTH")
	assert.Equal(t, "process", v, "the real environment wins over the file")

	_, ok = lookup("SQBOOT_TEST_UNSET")
	assert.False(t, ok)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	lookup, err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.NotNil(t, lookup)
}
