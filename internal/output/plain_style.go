package output

// plainPrefixes marks the semantics that must stay recognizable without color.
var plainPrefixes = map[SemanticType]string{
	SemanticWarning: "[warn] ",
	SemanticError:   "Error: ",
}

// PlainTextStyle prepends a fixed marker and otherwise leaves text alone.
type PlainTextStyle struct {
	prefix string
}

// NewPlainTextStyle creates a plain style that prepends prefix.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render implements TextStyle.
func (s *PlainTextStyle) Render(text string) string {
	return s.prefix + text
}

// PlainStyleProvider renders "[warn] " and "Error: " markers and nothing else.
type PlainStyleProvider struct{}

// GetStyle implements StyleProvider.
func (PlainStyleProvider) GetStyle(semantic string) TextStyle {
	return NewPlainTextStyle(plainPrefixes[SemanticType(semantic)])
}

// IsAvailable implements StyleProvider. Plain text is always displayable.
func (PlainStyleProvider) IsAvailable() bool {
	return true
}
