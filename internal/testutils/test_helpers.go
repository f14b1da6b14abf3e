// Package testutils provides fixture helpers shared by themepal tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture file locations relative to a project root.
const (
	PalettePath  = "docs/palette.md"
	ThemePath    = "Honeypunk.yaml"
	MappingsPath = "tools/mappings.yaml"
	RolesPath    = "tools/roles.yaml"
)

// TestDataGenerator provides common test data
type TestDataGenerator struct{}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{}
}

// Palette returns a palette table with three named colors.
func (g *TestDataGenerator) Palette() string {
	return `| Color Name | Hex | Theme Usage |
|---|---|---|
| Cyan Glow | #00D1FF | Accents |
| Void Black | #0A0A0A | Backgrounds |
| Ember | #FF5533 | Errors |
`
}

// Theme returns a theme with one remappable pair and one flag-coded pair.
func (g *TestDataGenerator) Theme() string {
	return `# theme
Sections:
  Tabs:
    GUID: "{guid}"
    Tab.Active: ["#000000", "#FF0000"]
    Tab.Flag: ["05x00000000", "#00d1ff"]
`
}

// Mappings returns a mappings document assigning Tab.Active to the accent role.
func (g *TestDataGenerator) Mappings() string {
	return "accent: [Tab.Active]\n"
}

// Roles returns a roles document coloring the accent role.
func (g *TestDataGenerator) Roles() string {
	return "accent: {fg: Cyan Glow, bg: Void Black}\n"
}

// ProjectFiles returns the full default project layout.
func (g *TestDataGenerator) ProjectFiles() map[string]string {
	return map[string]string{
		PalettePath:  g.Palette(),
		ThemePath:    g.Theme(),
		MappingsPath: g.Mappings(),
		RolesPath:    g.Roles(),
	}
}

// FileHelpers provides utilities for working with test files
type FileHelpers struct{}

// NewFileHelpers creates a new file helpers instance
func NewFileHelpers() *FileHelpers {
	return &FileHelpers{}
}

// CreateTempFile creates a temporary file with given content
func (f *FileHelpers) CreateTempFile(t *testing.T, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), filename)

	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err, "Should create temp file successfully")

	return filePath
}

// CreateTempDir creates a temporary directory structure
func (f *FileHelpers) CreateTempDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for filename, content := range files {
		f.WriteFile(t, tmpDir, filename, content)
	}
	return tmpDir
}

// WriteFile writes content to root/rel, creating parent directories.
func (f *FileHelpers) WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	filePath := filepath.Join(root, rel)

	err := os.MkdirAll(filepath.Dir(filePath), 0755)
	require.NoError(t, err, "Should create directory for %s", rel)

	err = os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err, "Should create file %s", rel)

	return filePath
}

// ReadFile returns the content of root/rel.
func (f *FileHelpers) ReadFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(t, err, "Should read file %s", rel)
	return string(data)
}

// AssertionHelpers provides common test assertions
type AssertionHelpers struct {
	t *testing.T
}

// NewAssertionHelpers creates a new assertion helpers instance
func NewAssertionHelpers(t *testing.T) *AssertionHelpers {
	return &AssertionHelpers{t: t}
}

// AssertFileContent checks that root/rel holds exactly expected.
func (h *AssertionHelpers) AssertFileContent(root, rel, expected string) {
	h.t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(h.t, err)
	assert.Equal(h.t, expected, string(data), "File %s should be unchanged", rel)
}
