// Package output provides the console output system for themepal.
// Results (counts, planned changes, reports) are printed here; diagnostics go through package logger.
package output

// StyleProvider supplies a TextStyle per semantic type. Printer only ever
// talks to this interface, so terminal styling stays swappable.
type StyleProvider interface {
	GetStyle(semantic string) TextStyle
	// IsAvailable reports whether styled output can be displayed right now.
	IsAvailable() bool
}

// TextStyle renders one piece of text.
type TextStyle interface {
	Render(text string) string
}

// Mode selects how a Printer renders.
type Mode int

const (
	// ModeAuto styles output when an available provider is installed.
	ModeAuto Mode = iota
	// ModePlain never styles; warnings and errors get textual markers.
	ModePlain
	// ModeJSON writes one JSON object per call.
	ModeJSON
)

// SemanticType names what a piece of output means.
type SemanticType string

// Semantic types understood by the style providers.
const (
	SemanticPlain   SemanticType = "plain"
	SemanticInfo    SemanticType = "info"
	SemanticSuccess SemanticType = "success"
	SemanticWarning SemanticType = "warning"
	SemanticError   SemanticType = "error"
	SemanticHeading SemanticType = "heading"
	SemanticHex     SemanticType = "hex"
	SemanticAdded   SemanticType = "added"
	SemanticRemoved SemanticType = "removed"
)
