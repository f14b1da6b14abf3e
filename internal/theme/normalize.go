package theme

import (
	"strings"

	"themepal/internal/hexcolor"
	"themepal/internal/logger"
)

// Replacement records one slot rewritten by NormalizeColors.
type Replacement struct {
	Section string
	Key     string
	Slot    SlotName
	Was     string
	Now     string
}

// NormalizeColors rewrites every color slot into canonical "#RRGGBB[AA]" form
// and returns the replacements made. Flag-coded values, non-string values and
// tokens that do not normalize to a hex color are left alone.
//
// When apply is false the document is not modified; the returned list is the plan.
func NormalizeColors(doc *Document, apply bool) []Replacement {
	log := logger.NewStyledLogger("theme")

	var replaced []Replacement
	for _, entry := range doc.Pairs() {
		for _, name := range []SlotName{Background, Foreground} {
			slot := entry.Pair.Slot(name)
			val, ok := slot.Value()
			if !ok {
				continue
			}
			if hexcolor.HasFlagPrefix(val) {
				log.Debug("skipping flag code", "section", entry.Section, "key", entry.Key, "color", val)
				continue
			}

			normalized := hexcolor.Normalize(val)
			if normalized == strings.Trim(val, `"`) || !hexcolor.IsHex(normalized) {
				continue
			}

			if apply {
				slot.Set(normalized)
			}
			replaced = append(replaced, Replacement{
				Section: entry.Section,
				Key:     entry.Key,
				Slot:    name,
				Was:     val,
				Now:     normalized,
			})
		}
	}
	return replaced
}
