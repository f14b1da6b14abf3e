// Package hexcolor provides canonicalization and classification of hex color tokens
// found in palette and theme files.
package hexcolor

import (
	"regexp"
	"strings"
)

var (
	// canonicalPattern matches a strict #RRGGBB or #RRGGBBAA value in either case.
	canonicalPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}(?:[0-9A-Fa-f]{2})?$`)

	// upperPattern is the audit variant of canonicalPattern; it accepts uppercase digits only.
	upperPattern = regexp.MustCompile(`^#[0-9A-F]{6}(?:[0-9A-F]{2})?$`)

	// flagPrefixPattern matches values such as 05x00000000 at the start of a token.
	flagPrefixPattern = regexp.MustCompile(`^[0-9A-Fa-f]{2}x[0-9A-Fa-f]{8}`)

	// flagExactPattern matches a whole token that is a flag code and nothing else.
	flagExactPattern = regexp.MustCompile(`^[0-9A-Fa-f]{2}x[0-9A-Fa-f]{8}$`)
)

// Normalize converts a hex-like token into canonical "#RRGGBB" / "#RRGGBBAA" form.
//
// Surrounding whitespace is trimmed and the token is uppercased. A leading `"#`
// (and matching trailing quote) or a bare leading `#` is removed before a single `#`
// is prepended again. When nothing remains after stripping, the original value is
// returned untouched. Normalize is idempotent.
func Normalize(value string) string {
	val := strings.ToUpper(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(val, `"#`):
		val = strings.TrimSuffix(val[2:], `"`)
	case strings.HasPrefix(val, "#"):
		val = val[1:]
	}
	if val == "" {
		return value
	}
	return "#" + val
}

// IsHex reports whether value is a strict 6 or 8 digit hex color with a leading '#'.
func IsHex(value string) bool {
	return canonicalPattern.MatchString(value)
}

// IsCanonical reports whether value is an uppercase 6 or 8 digit hex color.
func IsCanonical(value string) bool {
	return upperPattern.MatchString(value)
}

// HasFlagPrefix reports whether value starts with a flag code such as "05x00000000".
func HasFlagPrefix(value string) bool {
	return flagPrefixPattern.MatchString(value)
}

// IsFlagCode reports whether value is exactly a flag code.
func IsFlagCode(value string) bool {
	return flagExactPattern.MatchString(value)
}

// Equal compares two color tokens case-insensitively.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}
