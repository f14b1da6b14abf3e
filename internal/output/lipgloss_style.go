package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// LipglossStyleProvider implements StyleProvider with lipgloss styles.
type LipglossStyleProvider struct {
	styles map[string]lipgloss.Style
}

// NewLipglossStyleProvider creates the terminal style set used by the CLI.
func NewLipglossStyleProvider() *LipglossStyleProvider {
	return &LipglossStyleProvider{
		styles: map[string]lipgloss.Style{
			string(SemanticInfo):    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"}),
			string(SemanticSuccess): lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}).Bold(true),
			string(SemanticWarning): lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"}),
			string(SemanticError):   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}).Bold(true),
			string(SemanticHeading): lipgloss.NewStyle().Bold(true).Underline(true),
			string(SemanticHex):     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8250DF", Dark: "#D2A8FF"}),
			string(SemanticAdded):   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			string(SemanticRemoved): lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		},
	}
}

// GetStyle implements StyleProvider.GetStyle. Unknown semantics, including
// "plain", pass text through untouched.
func (l *LipglossStyleProvider) GetStyle(semantic string) TextStyle {
	if style, ok := l.styles[semantic]; ok {
		return lipglossTextStyle{style: style}
	}
	return NewPlainTextStyle("")
}

// IsAvailable reports whether the terminal can display colors.
func (l *LipglossStyleProvider) IsAvailable() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

// lipglossTextStyle adapts the variadic lipgloss Render to TextStyle.
type lipglossTextStyle struct {
	style lipgloss.Style
}

func (s lipglossTextStyle) Render(text string) string {
	return s.style.Render(text)
}
