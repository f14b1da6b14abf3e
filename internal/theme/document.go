// Package theme reads and rewrites the theme document: a YAML mapping whose
// "Sections" key holds named sections of [background, foreground] color pairs.
//
// The document is kept as a yaml.v3 node tree so that comments, key order,
// quoting and flow style survive a rewrite.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"themepal/internal/logger"

	"gopkg.in/yaml.v3"
)

// ErrMalformedTheme is returned when the theme document does not have the expected shape.
var ErrMalformedTheme = errors.New("malformed theme document")

// SectionsKey is the top-level key holding all sections.
const SectionsKey = "Sections"

// GUIDKey is the per-section identifier key; it never holds colors.
const GUIDKey = "GUID"

// Document is a parsed theme file.
type Document struct {
	path     string
	mode     os.FileMode
	root     yaml.Node
	original []byte
}

// Load reads and parses the theme document at path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open theme: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	doc.path = path
	doc.mode = info.Mode().Perm()
	logger.FileOperation("read", path, "bytes", len(data))
	return doc, nil
}

// Parse parses theme YAML held in memory. The result has no backing file.
func Parse(data []byte) (*Document, error) {
	doc := &Document{original: data, mode: 0o644}
	if err := yaml.Unmarshal(data, &doc.root); err != nil {
		return nil, err
	}
	if top := doc.top(); top != nil && top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrMalformedTheme)
	}
	if sections := doc.sectionsNode(); sections != nil && sections.Kind != yaml.MappingNode && !isNull(sections) {
		return nil, fmt.Errorf("%w: %s is not a mapping", ErrMalformedTheme, SectionsKey)
	}
	return doc, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Original returns the bytes the document was parsed from.
func (d *Document) Original() []byte {
	return d.original
}

// Bytes encodes the current document state.
func (d *Document) Bytes() ([]byte, error) {
	if d.top() == nil {
		return d.original, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&d.root); err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the current document state back to its file, keeping the file mode.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New("theme document has no backing file")
	}
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.path, data, d.mode); err != nil {
		return fmt.Errorf("failed to write theme %s: %w", d.path, err)
	}
	logger.FileOperation("write", d.path, "bytes", len(data))
	return nil
}

// top returns the top-level content node, or nil for an empty document.
func (d *Document) top() *yaml.Node {
	if d.root.Kind != yaml.DocumentNode || len(d.root.Content) == 0 {
		return nil
	}
	return d.root.Content[0]
}

func (d *Document) sectionsNode() *yaml.Node {
	top := d.top()
	if top == nil || top.Kind != yaml.MappingNode {
		return nil
	}
	return lookup(top, SectionsKey)
}

// lookup returns the value node for key in a mapping node, following aliases.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return resolve(mapping.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
