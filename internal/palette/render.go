package palette

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Render renders the palette markdown document at path for the terminal.
// style is a glamour style name ("auto", "dark", "light", "notty", "ascii").
func Render(path string, style string, width int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open palette: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("palette %s is empty", path)
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to render palette: %w", err)
	}
	return rendered, nil
}

// Swatch returns a small block filled with the entry's color.
func Swatch(e Entry) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(e.Hex)).
		Render("    ")
}

// Listing formats the palette as aligned "swatch name hex" rows.
// Swatches are omitted when withSwatches is false.
func (p *Palette) Listing(withSwatches bool) []string {
	width := 0
	for _, e := range p.entries {
		if w := lipgloss.Width(e.Name); w > width {
			width = w
		}
	}

	nameStyle := lipgloss.NewStyle().Width(width)
	lines := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		row := nameStyle.Render(e.Name) + "  " + e.Hex
		if withSwatches {
			row = Swatch(e) + " " + row
		}
		lines = append(lines, row)
	}
	return lines
}
