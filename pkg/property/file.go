package property

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/sqboot/internal/fsutil"
)

// Format identifies a property file encoding.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// XML element and attribute names of the property file.
const (
	xmlRootTag      = "SonarQubeAnalysisProperties"
	xmlNamespace    = "http://www.sonarsource.com/msbuild/integration/2015/1"
	xmlPropertyTag  = "Property"
	xmlNameAttr     = "Name"
	filePermissions = 0o600
)

// FormatForPath picks the encoding from the file extension. Anything other
// than .yaml or .yml is XML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatXML
	}
}

// FileError reports a property file that could not be read, parsed or
// written.
type FileError struct {
	Path string
	Op   string // "load" or "save"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s property file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Load reads an ordered property list from path.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is user supplied by design
	if err != nil {
		return nil, &FileError{Path: path, Op: "load", Err: err}
	}

	var list List
	switch FormatForPath(path) {
	case FormatYAML:
		list, err = decodeYAML(data)
	default:
		list, err = decodeXML(data)
	}
	if err != nil {
		return nil, &FileError{Path: path, Op: "load", Err: err}
	}
	return list, nil
}

// Save writes l to path using DefaultPolicy.
func Save(l List, path string) error {
	return SaveWithPolicy(l, path, DefaultPolicy)
}

// SaveWithPolicy drops the entries policy flags and writes the rest to path,
// replacing any existing file. The write is atomic.
func SaveWithPolicy(l List, path string, policy Policy) error {
	filtered := Filter(l, policy)

	var (
		data []byte
		err  error
	)
	switch FormatForPath(path) {
	case FormatYAML:
		data, err = encodeYAML(filtered)
	default:
		data, err = encodeXML(filtered)
	}
	if err != nil {
		return &FileError{Path: path, Op: "save", Err: err}
	}
	if err := fsutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return &FileError{Path: path, Op: "save", Err: err}
	}
	return nil
}

// AppendXML writes l as <Property Name="..."> children of parent. It is
// shared with the analysis config document, which embeds property lists.
// Nothing is appended when an id or value cannot be stored in XML.
func AppendXML(parent *etree.Element, l List) error {
	for i, p := range l {
		if err := CheckXMLText(p.ID); err != nil {
			return fmt.Errorf("property %d id: %w", i, err)
		}
		if err := CheckXMLText(p.Value); err != nil {
			return fmt.Errorf("property %q value: %w", p.ID, err)
		}
	}
	for _, p := range l {
		el := parent.CreateElement(xmlPropertyTag)
		el.CreateAttr(xmlNameAttr, p.ID)
		el.SetText(p.Value)
	}
	return nil
}

// ErrInvalidXMLChar is returned for text XML 1.0 cannot represent: control
// characters other than tab, newline and carriage return, and invalid UTF-8.
var ErrInvalidXMLChar = errors.New("character not allowed in XML")

// CheckXMLText reports whether s survives an XML write and read unchanged.
func CheckXMLText(s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidXMLChar, i)
			}
		}
		if !xmlChar(r) {
			return fmt.Errorf("%w: %U at byte %d", ErrInvalidXMLChar, r, i)
		}
	}
	return nil
}

func xmlChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// NewXMLDocument returns a document whose writer escapes carriage returns
// and attribute whitespace as character references, so they read back as
// written instead of being normalized by the parser.
func NewXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	return doc
}

// ReadXML collects the <Property> children of parent in document order.
func ReadXML(parent *etree.Element) (List, error) {
	list := List{}
	for i, el := range parent.SelectElements(xmlPropertyTag) {
		id := el.SelectAttrValue(xmlNameAttr, "")
		if id == "" {
			return nil, fmt.Errorf("property %d: <%s> without %s attribute", i, xmlPropertyTag, xmlNameAttr)
		}
		list = append(list, Property{ID: id, Value: el.Text()})
	}
	return list, nil
}

func encodeXML(l List) ([]byte, error) {
	doc := NewXMLDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement(xmlRootTag)
	root.CreateAttr("xmlns", xmlNamespace)
	if err := AppendXML(root, l); err != nil {
		return nil, err
	}
	doc.Indent(2)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeXML(data []byte) (List, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("empty document")
	}
	if root.Tag != xmlRootTag {
		return nil, fmt.Errorf("expected root element <%s>, got <%s>", xmlRootTag, root.Tag)
	}
	return ReadXML(root)
}

// yamlDocument is the YAML property file layout.
type yamlDocument struct {
	Properties []Property `yaml:"properties"`
}

// encodeYAML builds the node tree by hand so values with line breaks are
// double-quoted; yaml.v3's block styles do not round-trip a lone "\n".
func encodeYAML(l List) ([]byte, error) {
	items := &yaml.Node{Kind: yaml.SequenceNode}
	for _, p := range l {
		items.Content = append(items.Content, &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				yamlKey("id"), yamlString(p.ID),
				yamlKey("value"), yamlString(p.Value),
			},
		})
	}
	doc := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{yamlKey("properties"), items},
	}
	return yaml.Marshal(doc)
}

func yamlKey(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

func yamlString(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.ContainsAny(s, "\r\n") {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

func decodeYAML(data []byte) (List, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	list := make(List, 0, len(doc.Properties))
	for i, p := range doc.Properties {
		if p.ID == "" {
			return nil, fmt.Errorf("property %d has an empty id", i)
		}
		list = append(list, p)
	}
	return list, nil
}
