package report

import (
	"fmt"
	"strings"

	"themepal/internal/output"
	"themepal/internal/semantic"
	"themepal/internal/theme"
)

// Reporter writes rewrite results to a printer.
type Reporter struct {
	printer *output.Printer
}

// New creates a Reporter writing to printer.
func New(printer *output.Printer) *Reporter {
	return &Reporter{printer: printer}
}

// Overlaps lists classification keys claimed by several roles.
func (r *Reporter) Overlaps(overlaps []semantic.Overlap) {
	if len(overlaps) == 0 {
		return
	}
	r.printer.Warning("Overlapping classification keys detected:")
	for _, o := range overlaps {
		r.printer.Println(fmt.Sprintf("  %s in roles: %s", o.Key, strings.Join(o.Roles, ", ")))
	}
}

// PlannedChanges lists a semantic dry run.
func (r *Reporter) PlannedChanges(changes []semantic.Change) {
	r.printer.Heading("Semantic dry-run changes:")
	for _, c := range changes {
		r.printer.Println("  " + fmt.Sprintf("%s %s -> %s (was %s)",
			c.Slot, c.Key, r.printer.Sprint(output.SemanticHex, c.Target), c.Was))
	}
	r.printer.Info(fmt.Sprintf("Planned %d changes.", len(changes)))
}

// AppliedChanges lists the slots written by a semantic rewrite.
func (r *Reporter) AppliedChanges(changes []semantic.Change) {
	r.printer.Println("")
	r.printer.Heading("Change Report:")
	for _, c := range changes {
		r.printer.Println("  " + fmt.Sprintf("%s %s: %s -> %s",
			c.Slot, c.Key, c.Was, r.printer.Sprint(output.SemanticHex, c.Target)))
	}
}

// Replacements lists normalizations, as planned or as applied.
func (r *Reporter) Replacements(heading string, replaced []theme.Replacement) {
	r.printer.Heading(heading)
	for _, rep := range replaced {
		r.printer.Println("  " + fmt.Sprintf("%s %s.%s: %s -> %s",
			rep.Slot, rep.Section, rep.Key, rep.Was, r.printer.Sprint(output.SemanticHex, rep.Now)))
	}
}

// Audit prints the palette usage audit. Nothing is printed for an empty palette.
func (r *Reporter) Audit(audit Audit) {
	if audit.Total == 0 {
		return
	}
	r.printer.Println("")
	r.printer.Heading("Palette Usage Audit:")
	r.printer.Println(fmt.Sprintf("  Total palette colors: %d", audit.Total))
	r.printer.Println(fmt.Sprintf("  Used colors: %d", len(audit.Used)))
	r.printer.Println(fmt.Sprintf("  Unused colors (%d):", len(audit.Unused)))
	for _, c := range audit.Unused {
		r.printer.Println("    " + r.printer.Sprint(output.SemanticHex, c))
	}
}
