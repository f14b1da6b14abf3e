package semantic

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"themepal/internal/logger"
	"themepal/internal/palette"
	"themepal/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func testPalette(t *testing.T) *palette.Palette {
	t.Helper()
	p, err := palette.Parse(strings.NewReader("| Cyan Glow | #00D1FF |\n| Void Black | #0A0A0A |\n| Ember | #FF5533 |\n"))
	require.NoError(t, err)
	return p
}

func TestParseMappings(t *testing.T) {
	logs := captureLogs(t)

	mappings, err := ParseMappings([]byte(`
accent: [Tab.Active, Link]
error:
  - Error
  - 404
broken: not-a-list
empty: []
`))
	require.NoError(t, err)

	assert.Equal(t, Mappings{
		{Role: "accent", Keys: []string{"Tab.Active", "Link"}},
		{Role: "error", Keys: []string{"Error", "404"}},
		{Role: "empty", Keys: []string{}},
	}, mappings)
	assert.Contains(t, logs.String(), "Role 'broken' has non-list mappings; skipping")
}

func TestParseMappings_DuplicateRoleKeepsFirstPosition(t *testing.T) {
	captureLogs(t)
	mappings, err := ParseMappings([]byte("a: [X]\nb: [Y]\na: [Z]\n"))
	require.NoError(t, err)
	assert.Equal(t, Mappings{{Role: "a", Keys: []string{"Z"}}, {Role: "b", Keys: []string{"Y"}}}, mappings)
}

func TestParseRoles(t *testing.T) {
	logs := captureLogs(t)

	roles, err := ParseRoles([]byte(`
accent: {fg: Cyan Glow, bg: Void Black}
error: Ember
long:
  foreground: Cyan Glow
  fg: Ember
  background: ""
  bg: Void Black
bgonly: {background: Void Black}
numeric: 42
list: [a, b]
nothing:
`))
	require.NoError(t, err)

	assert.Equal(t, Roles{
		{Role: "accent", Foreground: "Cyan Glow", Background: "Void Black"},
		{Role: "error", Foreground: "Ember"},
		{Role: "long", Foreground: "Cyan Glow", Background: "Void Black"},
		{Role: "bgonly", Background: "Void Black"},
	}, roles)

	out := logs.String()
	assert.Contains(t, out, "Role 'numeric' has unsupported spec type; skipping")
	assert.Contains(t, out, "Role 'list' has unsupported spec type; skipping")
	assert.Contains(t, out, "Role 'nothing' has unsupported spec type; skipping")
}

func TestParse_NotAMapping(t *testing.T) {
	_, err := ParseMappings([]byte("- accent\n- error\n"))
	assert.True(t, errors.Is(err, ErrMalformedConfig))

	_, err = ParseRoles([]byte(""))
	assert.True(t, errors.Is(err, ErrMalformedConfig))

	_, err = ParseRoles([]byte("just text\n"))
	assert.True(t, errors.Is(err, ErrMalformedConfig))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	mappingsPath := filepath.Join(dir, "mappings.yaml")
	rolesPath := filepath.Join(dir, "roles.yaml")
	require.NoError(t, os.WriteFile(mappingsPath, []byte("accent: [Tab.Active]\n"), 0o644))
	require.NoError(t, os.WriteFile(rolesPath, []byte("- not a mapping\n"), 0o644))

	_, _, err := Load(mappingsPath, rolesPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedConfig))
	assert.Contains(t, err.Error(), "roles.yaml")

	require.NoError(t, os.WriteFile(rolesPath, []byte("accent: Cyan Glow\n"), 0o644))
	mappings, roles, err := Load(mappingsPath, rolesPath)
	require.NoError(t, err)
	assert.Len(t, mappings, 1)
	assert.Equal(t, "Cyan Glow", roles[0].Foreground)

	_, _, err = Load(filepath.Join(dir, "missing.yaml"), rolesPath)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolveColors(t *testing.T) {
	logs := captureLogs(t)

	maps := ResolveColors(Roles{
		{Role: "accent", Foreground: "Cyan Glow", Background: "Void Black"},
		{Role: "ghost", Foreground: "Missing", Background: "Void Black"},
		{Role: "shade", Background: "Nope"},
	}, testPalette(t))

	assert.Equal(t, map[string]string{"accent": "#00D1FF"}, maps.Foreground)
	assert.Equal(t, map[string]string{"accent": "#0A0A0A", "ghost": "#0A0A0A"}, maps.Background)
	assert.Contains(t, logs.String(), "Foreground color name 'Missing' for role 'ghost' not in palette.")
	assert.Contains(t, logs.String(), "Background color name 'Nope' for role 'shade' not in palette.")
}

func TestDetectOverlaps(t *testing.T) {
	overlaps := DetectOverlaps(Mappings{
		{Role: "roleA", Keys: []string{"X", "Only.A"}},
		{Role: "roleB", Keys: []string{"x"}},
		{Role: "roleC", Keys: []string{"Y", "y", "X"}},
	})

	assert.Equal(t, []Overlap{{Key: "x", Roles: []string{"roleA", "roleB", "roleC"}}}, overlaps)
}

func TestDetectOverlaps_None(t *testing.T) {
	assert.Empty(t, DetectOverlaps(Mappings{{Role: "a", Keys: []string{"A"}}, {Role: "b", Keys: []string{"B"}}}))
}

const rewriteTheme = `Sections:
  Tabs:
    GUID: "{guid}"
    Tab.Active: ["#000000", "#FF0000"]
    tab.hover: ["#0a0a0a", "#00d1ff"]
    Tab.Flag: ["05x00000000", "#123456"]
    Tab.Odd: [7, "#123456"]
    Unmapped: ["#111111", "#222222"]
`

func TestRewrite_AppliesRoleColors(t *testing.T) {
	doc, err := theme.Parse([]byte("Sections:\n  Tabs:\n    Tab.Active: [\"#000000\", \"#FF0000\"]\n"))
	require.NoError(t, err)

	mappings := Mappings{{Role: "accent", Keys: []string{"Tab.Active"}}}
	maps := ResolveColors(Roles{{Role: "accent", Foreground: "Cyan Glow", Background: "Void Black"}}, testPalette(t))

	result := NewRewriter(mappings, maps).Rewrite(doc, false)

	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, []string{"#0A0A0A", "#00D1FF"}, doc.Values())
}

func TestRewrite_CaseInsensitiveAndGuards(t *testing.T) {
	doc, err := theme.Parse([]byte(rewriteTheme))
	require.NoError(t, err)

	mappings := Mappings{{Role: "accent", Keys: []string{"TAB.ACTIVE", "Tab.Hover", "tab.flag", "tab.odd"}}}
	maps := ColorMaps{
		Foreground: map[string]string{"accent": "#00D1FF"},
		Background: map[string]string{"accent": "#0A0A0A"},
	}

	result := NewRewriter(mappings, maps).Rewrite(doc, false)

	lines := make([]string, 0, len(result.Changes))
	for _, c := range result.Changes {
		lines = append(lines, c.Applied())
	}
	assert.Equal(t, []string{
		"FG Tab.Active: #FF0000 -> #00D1FF",
		"BG Tab.Active: #000000 -> #0A0A0A",
		"FG Tab.Flag: #123456 -> #00D1FF",
		"FG Tab.Odd: #123456 -> #00D1FF",
	}, lines)
	assert.Equal(t, 4, result.Applied)

	values := doc.Values()
	assert.Contains(t, values, "05x00000000", "flag-coded backgrounds are never replaced")
	assert.Contains(t, values, "#111111")
	assert.Contains(t, values, "#0a0a0a", "case-only differences are not changes")
}

func TestRewrite_DryRunPlansWithoutWriting(t *testing.T) {
	doc, err := theme.Parse([]byte(rewriteTheme))
	require.NoError(t, err)
	before, err := doc.Bytes()
	require.NoError(t, err)

	mappings := Mappings{{Role: "accent", Keys: []string{"Tab.Active"}}}
	maps := ColorMaps{
		Foreground: map[string]string{"accent": "#00D1FF"},
		Background: map[string]string{"accent": "#0A0A0A"},
	}

	result := NewRewriter(mappings, maps).Rewrite(doc, true)

	assert.Equal(t, 0, result.Applied)
	require.Len(t, result.Changes, 2)
	assert.Equal(t, "FG Tab.Active -> #00D1FF (was #FF0000)", result.Changes[0].Planned())
	assert.Equal(t, "BG Tab.Active -> #0A0A0A (was #000000)", result.Changes[1].Planned())

	after, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRewrite_FirstMatchingRoleWins(t *testing.T) {
	doc, err := theme.Parse([]byte(rewriteTheme))
	require.NoError(t, err)

	mappings := Mappings{
		{Role: "plain", Keys: []string{"tab.active"}},
		{Role: "accent", Keys: []string{"Tab.Active"}},
	}
	maps := ColorMaps{
		Foreground: map[string]string{"accent": "#00D1FF"},
		Background: map[string]string{},
	}

	rw := NewRewriter(mappings, maps)
	role, ok := rw.RoleFor("TAB.active")
	require.True(t, ok)
	assert.Equal(t, "plain", role)

	result := rw.Rewrite(doc, false)
	assert.Empty(t, result.Changes, "the first role has no colors, so the shadowed role is not used")
}

func TestRewrite_FlagCodeForegroundSurvives(t *testing.T) {
	doc, err := theme.Parse([]byte("Sections:\n  Tabs:\n    Tab.Active: [\"#000000\", \"05x00000000\"]\n"))
	require.NoError(t, err)

	mappings := Mappings{{Role: "accent", Keys: []string{"Tab.Active"}}}
	maps := ResolveColors(Roles{{Role: "accent", Foreground: "Cyan Glow"}}, testPalette(t))

	result := NewRewriter(mappings, maps).Rewrite(doc, false)

	assert.Empty(t, result.Changes)
	assert.Equal(t, 0, result.Applied)
	assert.Equal(t, []string{"#000000", "05x00000000"}, doc.Values())
}
