package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes user-facing text with a semantic type attached to every call.
// The mode decides whether that type becomes a style, a plain marker or a JSON field.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode

	mu sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout in ModeAuto.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{writer: os.Stdout, mode: ModeAuto}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print writes text as is, without a trailing newline.
func (p *Printer) Print(text string) { p.write(SemanticPlain, text, false) }

// Println writes a line of unstyled text.
func (p *Printer) Println(text string) { p.write(SemanticPlain, text, true) }

// Info writes a status line.
func (p *Printer) Info(text string) { p.write(SemanticInfo, text, true) }

// Success writes the outcome of a completed rewrite.
func (p *Printer) Success(text string) { p.write(SemanticSuccess, text, true) }

// Warning writes a line that plain mode marks with "[warn] ".
func (p *Printer) Warning(text string) { p.write(SemanticWarning, text, true) }

// Error writes a line that plain mode marks with "Error: ".
func (p *Printer) Error(text string) { p.write(SemanticError, text, true) }

// Heading writes a report section title.
func (p *Printer) Heading(text string) { p.write(SemanticHeading, text, true) }

// Added writes a line present only in the rewritten document.
func (p *Printer) Added(text string) { p.write(SemanticAdded, text, true) }

// Removed writes a line present only in the original document.
func (p *Printer) Removed(text string) { p.write(SemanticRemoved, text, true) }

// Sprint styles text for embedding in a larger line. Unless the printer is
// styling, text is returned unchanged.
func (p *Printer) Sprint(semantic SemanticType, text string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stylable() {
		return text
	}
	return p.styleProvider.GetStyle(string(semantic)).Render(text)
}

// IsStylable reports whether output is being styled.
func (p *Printer) IsStylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stylable()
}

func (p *Printer) write(semantic SemanticType, text string, newline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var rendered string
	if p.mode == ModeJSON {
		rendered = renderJSON(semantic, text)
	} else {
		rendered = p.render(semantic, text)
		if newline && !strings.HasSuffix(rendered, "\n") {
			rendered += "\n"
		}
	}

	_, _ = fmt.Fprint(p.writer, rendered)
}

func (p *Printer) render(semantic SemanticType, text string) string {
	var provider StyleProvider = PlainStyleProvider{}
	if p.stylable() {
		provider = p.styleProvider
	}
	return provider.GetStyle(string(semantic)).Render(text)
}

func (p *Printer) stylable() bool {
	return p.mode == ModeAuto && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

func renderJSON(semantic SemanticType, text string) string {
	data, err := json.Marshal(struct {
		Type    SemanticType `json:"type"`
		Message string       `json:"message"`
	}{semantic, text})
	if err != nil {
		return text + "\n"
	}
	return string(data) + "\n"
}
