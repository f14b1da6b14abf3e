package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithStyles installs provider when it is available; otherwise output stays plain.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter redirects output away from os.Stdout. A nil writer is ignored.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// PlainText disables styling even when a provider is installed.
func PlainText() Option {
	return func(p *Printer) {
		p.mode = ModePlain
	}
}

// JSON switches the printer to JSON lines.
func JSON() Option {
	return func(p *Printer) {
		p.mode = ModeJSON
	}
}

// ForTerminal picks the options for a CLI run: JSON lines, plain text, or
// lipgloss styling when the terminal supports color.
func ForTerminal(jsonOutput, plain bool) Option {
	return func(p *Printer) {
		switch {
		case jsonOutput:
			JSON()(p)
		case plain:
			PlainText()(p)
		default:
			WithStyles(NewLipglossStyleProvider())(p)
		}
	}
}
