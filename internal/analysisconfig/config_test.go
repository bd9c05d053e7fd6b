package analysisconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/sqboot/pkg/property"
)

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)

	tests := map[string]string{
		"not xml":       "<AnalysisConfig",
		"wrong root":    "<Other/>",
		"bad property":  "<AnalysisConfig><LocalSettings><Property>x</Property></LocalSettings></AnalysisConfig>",
		"empty content": "",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.xml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MinimalDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<AnalysisConfig><SonarQubeHostUrl>http://h</SonarQubeHostUrl></AnalysisConfig>`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://h", c.HostURL)
	assert.Empty(t, c.ServerSettings)
	assert.Empty(t, c.LocalSettings)
}

func TestSaveLoad_PreservesLineBreaksAndTabs(t *testing.T) {
	want := &Config{
		ProjectKey:       "key",
		ProjectName:      "name\r\nsecond line",
		ProjectVersion:   "1.0\r",
		HostURL:          "http://h",
		BuildURI:         "vstfs:///build\tone",
		TfsURI:           "http://tfs\r\n",
		SettingsFilePath: "C:\\settings\n.xml",
		ServerSettings:   property.List{{ID: "server.crlf", Value: "a\r\nb"}},
		LocalSettings:    property.List{{ID: "local.cr", Value: "a\rb"}, {ID: "local.nl", Value: "\n"}},
	}
	path := filepath.Join(t.TempDir(), "config.xml")
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_RejectsCharactersXMLCannotHold(t *testing.T) {
	tests := map[string]*Config{
		"element":  {ProjectKey: "k", ProjectName: "x\x01y"},
		"setting":  {ProjectKey: "k", BuildURI: "uri\x00"},
		"property": {ProjectKey: "k", LocalSettings: property.List{{ID: "a", Value: "\x1b"}}},
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.xml")
			err := c.Save(path)
			require.ErrorIs(t, err, property.ErrInvalidXMLChar)

			_, statErr := os.Stat(path)
			assert.True(t, errors.Is(statErr, fs.ErrNotExist))
		})
	}
}
