// Package analysisconfig builds and persists the analysis config document
// that later build phases read.
package analysisconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"

	"github.com/dkoosis/sqboot/internal/fsutil"
	"github.com/dkoosis/sqboot/pkg/property"
)

const (
	xmlNamespace = "http://www.sonarsource.com/msbuild/integration/2015/1"

	rootTag           = "AnalysisConfig"
	configDirTag      = "SonarConfigDir"
	outputDirTag      = "SonarOutputDir"
	binDirTag         = "SonarBinDir"
	hostURLTag        = "SonarQubeHostUrl"
	projectKeyTag     = "SonarProjectKey"
	projectNameTag    = "SonarProjectName"
	projectVersionTag = "SonarProjectVersion"
	additionalTag     = "AdditionalConfig"
	settingTag        = "ConfigSetting"
	serverTag         = "ServerSettings"
	localTag          = "LocalSettings"

	buildURIID         = "BuildUri"
	tfsURIID           = "TfsUri"
	settingsFilePathID = "SettingsFilePath"

	filePermissions = 0o600
)

// Config is the analysis configuration handed to later phases.
type Config struct {
	ProjectKey     string
	ProjectName    string
	ProjectVersion string
	HostURL        string

	BuildURI  string
	TfsURI    string
	ConfigDir string
	OutputDir string
	BinDir    string

	ServerSettings property.List
	LocalSettings  property.List

	// SettingsFilePath points at the analysis settings file the run was
	// started with, or is empty. The file is referenced, not inlined.
	SettingsFilePath string
}

// Save writes the document to path, replacing any previous one atomically.
func (c *Config) Save(path string) error {
	data, err := c.encode()
	if err != nil {
		return fmt.Errorf("encode analysis config: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("write analysis config %s: %w", path, err)
	}
	return nil
}

// Load reads a document written by Save.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from build settings
	if err != nil {
		return nil, fmt.Errorf("read analysis config: %w", err)
	}
	c, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse analysis config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) encode() ([]byte, error) {
	doc := property.NewXMLDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement(rootTag)
	root.CreateAttr("xmlns", xmlNamespace)

	for _, f := range []struct{ tag, value string }{
		{configDirTag, c.ConfigDir},
		{outputDirTag, c.OutputDir},
		{binDirTag, c.BinDir},
		{hostURLTag, c.HostURL},
		{projectKeyTag, c.ProjectKey},
		{projectNameTag, c.ProjectName},
		{projectVersionTag, c.ProjectVersion},
	} {
		if err := property.CheckXMLText(f.value); err != nil {
			return nil, fmt.Errorf("%s: %w", f.tag, err)
		}
		root.CreateElement(f.tag).SetText(f.value)
	}

	additional := root.CreateElement(additionalTag)
	for _, s := range []struct{ id, value string }{
		{buildURIID, c.BuildURI},
		{tfsURIID, c.TfsURI},
		{settingsFilePathID, c.SettingsFilePath},
	} {
		if s.value == "" {
			continue
		}
		if err := property.CheckXMLText(s.value); err != nil {
			return nil, fmt.Errorf("%s %s: %w", settingTag, s.id, err)
		}
		el := additional.CreateElement(settingTag)
		el.CreateAttr("Id", s.id)
		el.CreateAttr("Value", s.value)
	}

	if err := property.AppendXML(root.CreateElement(serverTag), c.ServerSettings); err != nil {
		return nil, fmt.Errorf("%s: %w", serverTag, err)
	}
	if err := property.AppendXML(root.CreateElement(localTag), c.LocalSettings); err != nil {
		return nil, fmt.Errorf("%s: %w", localTag, err)
	}

	doc.Indent(2)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*Config, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("empty document")
	}
	if root.Tag != rootTag {
		return nil, fmt.Errorf("expected root element <%s>, got <%s>", rootTag, root.Tag)
	}

	text := func(tag string) string {
		if el := root.SelectElement(tag); el != nil {
			return el.Text()
		}
		return ""
	}
	c := &Config{
		ConfigDir:      text(configDirTag),
		OutputDir:      text(outputDirTag),
		BinDir:         text(binDirTag),
		HostURL:        text(hostURLTag),
		ProjectKey:     text(projectKeyTag),
		ProjectName:    text(projectNameTag),
		ProjectVersion: text(projectVersionTag),
	}

	if additional := root.SelectElement(additionalTag); additional != nil {
		for _, el := range additional.SelectElements(settingTag) {
			value := el.SelectAttrValue("Value", "")
			switch el.SelectAttrValue("Id", "") {
			case buildURIID:
				c.BuildURI = value
			case tfsURIID:
				c.TfsURI = value
			case settingsFilePathID:
				c.SettingsFilePath = value
			}
		}
	}

	var err error
	if c.ServerSettings, err = readList(root, serverTag); err != nil {
		return nil, err
	}
	if c.LocalSettings, err = readList(root, localTag); err != nil {
		return nil, err
	}
	return c, nil
}

func readList(root *etree.Element, tag string) (property.List, error) {
	el := root.SelectElement(tag)
	if el == nil {
		return property.List{}, nil
	}
	list, err := property.ReadXML(el)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	return list, nil
}
