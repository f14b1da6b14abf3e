// Package palette loads the named color table that a theme is allowed to use.
//
// The palette lives in a markdown document whose data rows look like
//
//	| Cyan Glow | #00D1FF | Accents, links |
//
// Only the first two columns are read. Any other line is ignored.
package palette

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

// rowPattern matches "| name | #hex |" at the start of a line. The hex cell may be
// wrapped in quotes or backticks.
var rowPattern = regexp.MustCompile("^\\|\\s*([^|]+?)\\s*\\|\\s*[\"'`]?(#[0-9A-Fa-f]{6}(?:[0-9A-Fa-f]{2})?)[\"'`]?\\s*\\|")

// Entry is one named palette color. Hex is uppercase with a leading '#'.
type Entry struct {
	Name string
	Hex  string
}

// Palette is the ordered set of named colors read from a palette document.
// A name that appears twice keeps its first position and its last value.
type Palette struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{index: make(map[string]int)}
}

// Load reads the palette document at path.
// The returned error wraps fs.ErrNotExist when the file is missing.
func Load(path string) (*Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer func() { _ = file.Close() }()

	p, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette %s: %w", path, err)
	}
	return p, nil
}

// Parse scans r line by line and records every palette row it recognizes.
func Parse(r io.Reader) (*Palette, error) {
	p := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := rowPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		p.Set(strings.TrimSpace(m[1]), strings.ToUpper(m[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// Set records name -> hex, overwriting the value of an existing name in place.
func (p *Palette) Set(name, hex string) {
	if i, ok := p.index[name]; ok {
		p.entries[i].Hex = hex
		return
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Entry{Name: name, Hex: hex})
}

// Lookup returns the hex value for a palette color name. Names are case-sensitive.
func (p *Palette) Lookup(name string) (string, bool) {
	i, ok := p.index[name]
	if !ok {
		return "", false
	}
	return p.entries[i].Hex, true
}

// Len returns the number of named entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Colors returns the set of distinct hex values.
func (p *Palette) Colors() map[string]struct{} {
	colors := make(map[string]struct{}, len(p.entries))
	for _, e := range p.entries {
		colors[e.Hex] = struct{}{}
	}
	return colors
}

// SortedColors returns the distinct hex values in ascending order.
func (p *Palette) SortedColors() []string {
	colors := make([]string, 0, len(p.entries))
	for hex := range p.Colors() {
		colors = append(colors, hex)
	}
	sort.Strings(colors)
	return colors
}
