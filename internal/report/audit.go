// Package report prints the results of a rewrite: change listings, the
// palette usage audit and a before/after diff of the theme file.
package report

import (
	"sort"

	"themepal/internal/hexcolor"
)

// Audit describes which palette colors a theme actually uses.
type Audit struct {
	Total  int
	Used   []string
	Unused []string
}

// AuditPalette normalizes every value found in the theme and compares the
// resulting set of hex colors against the palette's colors.
// Used counts every distinct hex color in the theme, palette member or not.
func AuditPalette(themeValues []string, paletteColors []string) Audit {
	used := make(map[string]struct{})
	for _, v := range themeValues {
		if norm := hexcolor.Normalize(v); hexcolor.IsCanonical(norm) {
			used[norm] = struct{}{}
		}
	}

	audit := Audit{Total: len(paletteColors)}
	for c := range used {
		audit.Used = append(audit.Used, c)
	}
	sort.Strings(audit.Used)

	for _, c := range paletteColors {
		if _, ok := used[c]; !ok {
			audit.Unused = append(audit.Unused, c)
		}
	}
	sort.Strings(audit.Unused)
	return audit
}
