package report

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLine is one line of a line-oriented diff.
type DiffLine struct {
	Op   diffmatchpatch.Operation
	Text string
}

// LineDiff compares two documents line by line.
func LineDiff(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			out = append(out, DiffLine{Op: d.Type, Text: line})
		}
	}
	return out
}

// Diff prints changed lines of the theme file, with context lines omitted.
// It reports whether any line changed.
func (r *Reporter) Diff(name string, before, after []byte) bool {
	lines := LineDiff(string(before), string(after))

	changed := false
	for _, l := range lines {
		if l.Op != diffmatchpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}

	r.printer.Println("")
	r.printer.Heading("--- " + name)
	r.printer.Heading("+++ " + name)
	for _, l := range lines {
		switch l.Op {
		case diffmatchpatch.DiffDelete:
			r.printer.Removed("-" + l.Text)
		case diffmatchpatch.DiffInsert:
			r.printer.Added("+" + l.Text)
		}
	}
	return true
}
