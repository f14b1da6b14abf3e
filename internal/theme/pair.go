package theme

import (
	"gopkg.in/yaml.v3"
)

// SlotName identifies a position within a color pair.
type SlotName int

const (
	// Background is the first element of a pair.
	Background SlotName = iota
	// Foreground is the second element of a pair.
	Foreground
)

// String returns the short label used in change listings.
func (s SlotName) String() string {
	if s == Background {
		return "BG"
	}
	return "FG"
}

// Slot is one element of a color pair.
type Slot struct {
	node *yaml.Node
}

// Value returns the slot's text when it holds a string scalar.
// Nulls, numbers, booleans, nested collections and aliases report false.
func (s Slot) Value() (string, bool) {
	if s.node == nil || s.node.Kind != yaml.ScalarNode || s.node.ShortTag() != "!!str" {
		return "", false
	}
	return s.node.Value, true
}

// Set overwrites the slot with a string value, keeping the original quoting style.
func (s Slot) Set(value string) {
	s.node.Tag = "!!str"
	s.node.Value = value
}

// Pair is a [background, foreground] sequence of exactly two elements.
type Pair struct {
	slots [2]Slot
}

// Slot returns the slot with the given name.
func (p Pair) Slot(name SlotName) Slot {
	return p.slots[name]
}

// EntryKind classifies a section entry.
type EntryKind int

const (
	// NotAPair is any entry that is neither GUID nor a two-element sequence.
	NotAPair EntryKind = iota
	// GUIDEntry is the section identifier.
	GUIDEntry
	// ColorPair is a two-element sequence.
	ColorPair
)

// Entry is one key of one section.
type Entry struct {
	Section string
	Key     string
	Kind    EntryKind
	Pair    Pair
}

// Entries returns every entry of every mapping-valued section in document order.
func (d *Document) Entries() []Entry {
	sections := d.sectionsNode()
	if sections == nil || sections.Kind != yaml.MappingNode {
		return nil
	}

	var entries []Entry
	for i := 0; i+1 < len(sections.Content); i += 2 {
		name := sections.Content[i].Value
		section := resolve(sections.Content[i+1])
		if section == nil || section.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(section.Content); j += 2 {
			key := section.Content[j].Value
			entries = append(entries, classify(name, key, resolve(section.Content[j+1])))
		}
	}
	return entries
}

// Pairs returns only the ColorPair entries, in document order.
func (d *Document) Pairs() []Entry {
	var pairs []Entry
	for _, e := range d.Entries() {
		if e.Kind == ColorPair {
			pairs = append(pairs, e)
		}
	}
	return pairs
}

// Values returns every string slot value across all pairs.
func (d *Document) Values() []string {
	var values []string
	for _, e := range d.Pairs() {
		for _, name := range []SlotName{Background, Foreground} {
			if v, ok := e.Pair.Slot(name).Value(); ok {
				values = append(values, v)
			}
		}
	}
	return values
}

func classify(section, key string, value *yaml.Node) Entry {
	entry := Entry{Section: section, Key: key, Kind: NotAPair}
	switch {
	case key == GUIDKey:
		entry.Kind = GUIDEntry
	case value != nil && value.Kind == yaml.SequenceNode && len(value.Content) == 2:
		entry.Kind = ColorPair
		entry.Pair = Pair{slots: [2]Slot{{node: value.Content[0]}, {node: value.Content[1]}}}
	}
	return entry
}
