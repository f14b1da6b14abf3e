package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTheme = `# Honeypunk theme
Name: Honeypunk
Sections:
  Tabs:
    GUID: "{0b1a5a42-0000-0000-0000-000000000000}"
    # active tab
    Tab.Active: ["#000000", "#ff0000"]
    Tab.Inactive:
      - "#0A0A0A"
      - "#00D1FF"
    Tab.Flagged: ["05x00000000", "#00d1ff"]
    Tab.Triple: ["#aaaaaa", "#bbbbbb", "#cccccc"]
    Tab.Numbers: [12, null]
  Editor:
    Plain Text: ["0a0a0a", "  #ffffff  "]
    Alpha: ["#0a0a0a80", "none"]
  Broken: just a string
`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)
	return doc
}

func TestParse_Shapes(t *testing.T) {
	doc := parseSample(t)

	sections := []string{}
	for _, e := range doc.Entries() {
		if len(sections) == 0 || sections[len(sections)-1] != e.Section {
			sections = append(sections, e.Section)
		}
	}
	assert.Equal(t, []string{"Tabs", "Editor"}, sections, "non-mapping sections have no entries")

	kinds := map[string]EntryKind{}
	for _, e := range doc.Entries() {
		kinds[e.Section+"/"+e.Key] = e.Kind
	}
	assert.Equal(t, GUIDEntry, kinds["Tabs/GUID"])
	assert.Equal(t, ColorPair, kinds["Tabs/Tab.Active"])
	assert.Equal(t, ColorPair, kinds["Tabs/Tab.Inactive"])
	assert.Equal(t, NotAPair, kinds["Tabs/Tab.Triple"])
	assert.Equal(t, ColorPair, kinds["Tabs/Tab.Numbers"])
	assert.Len(t, doc.Pairs(), 6)
}

func TestSlotValue_NonStrings(t *testing.T) {
	doc := parseSample(t)
	for _, e := range doc.Pairs() {
		if e.Key != "Tab.Numbers" {
			continue
		}
		_, ok := e.Pair.Slot(Background).Value()
		assert.False(t, ok, "integers are not colors")
		_, ok = e.Pair.Slot(Foreground).Value()
		assert.False(t, ok, "null is not a color")
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("- a\n- b\n"))
	assert.True(t, errors.Is(err, ErrMalformedTheme))

	_, err = Parse([]byte("Sections: [1, 2]\n"))
	assert.True(t, errors.Is(err, ErrMalformedTheme))

	doc, err := Parse([]byte("Sections:\n"))
	require.NoError(t, err)
	assert.Empty(t, doc.Pairs())

	doc, err = Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Entries())
}

func TestNormalizeColors(t *testing.T) {
	doc := parseSample(t)

	replaced := NormalizeColors(doc, true)

	assert.Equal(t, []Replacement{
		{Section: "Tabs", Key: "Tab.Active", Slot: Foreground, Was: "#ff0000", Now: "#FF0000"},
		{Section: "Tabs", Key: "Tab.Flagged", Slot: Foreground, Was: "#00d1ff", Now: "#00D1FF"},
		{Section: "Editor", Key: "Plain Text", Slot: Background, Was: "0a0a0a", Now: "#0A0A0A"},
		{Section: "Editor", Key: "Plain Text", Slot: Foreground, Was: "  #ffffff  ", Now: "#FFFFFF"},
		{Section: "Editor", Key: "Alpha", Slot: Background, Was: "#0a0a0a80", Now: "#0A0A0A80"},
	}, replaced)

	values := doc.Values()
	assert.Contains(t, values, "05x00000000", "flag codes are never rewritten")
	assert.Contains(t, values, "none", "non-hex tokens are left alone")
	assert.Contains(t, values, "#FF0000")
}

func TestNormalizeColors_SingleLowercaseValue(t *testing.T) {
	doc, err := Parse([]byte("Sections:\n  S:\n    K: [\"#00D1FF\", \"#00d1ff\"]\n"))
	require.NoError(t, err)

	assert.Len(t, NormalizeColors(doc, true), 1)
	assert.Empty(t, NormalizeColors(doc, true), "second pass finds nothing to do")
}

func TestNormalizeColors_DryRunLeavesDocument(t *testing.T) {
	doc := parseSample(t)

	planned := NormalizeColors(doc, false)
	assert.Len(t, planned, 5)
	assert.Contains(t, doc.Values(), "#ff0000")
	assert.Len(t, NormalizeColors(doc, false), 5)
}

func TestBytes_PreservesCommentsAndQuoting(t *testing.T) {
	doc := parseSample(t)
	NormalizeColors(doc, true)

	out, err := doc.Bytes()
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "# Honeypunk theme")
	assert.Contains(t, text, "# active tab")
	assert.Contains(t, text, `Tab.Active: ["#000000", "#FF0000"]`)
	assert.Contains(t, text, `- "#00D1FF"`)
	assert.Contains(t, text, `"05x00000000"`)

	reparsed, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Values(), reparsed.Values())
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Honeypunk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTheme), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())
	assert.Equal(t, sampleTheme, string(doc.Original()))

	NormalizeColors(doc, true)
	require.NoError(t, doc.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, NormalizeColors(reloaded, false))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSave_WithoutPath(t *testing.T) {
	doc := parseSample(t)
	assert.Error(t, doc.Save())
}
