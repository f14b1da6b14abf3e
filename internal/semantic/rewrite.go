package semantic

import (
	"fmt"
	"strings"

	"themepal/internal/hexcolor"
	"themepal/internal/logger"
	"themepal/internal/theme"
)

// Change is one slot whose color differs from its role's assignment.
type Change struct {
	Slot    theme.SlotName
	Section string
	Key     string
	Role    string
	Was     string
	Target  string
}

// Planned formats the change as a dry-run line.
func (c Change) Planned() string {
	return fmt.Sprintf("%s %s -> %s (was %s)", c.Slot, c.Key, c.Target, c.Was)
}

// Applied formats the change as a report line.
func (c Change) Applied() string {
	return fmt.Sprintf("%s %s: %s -> %s", c.Slot, c.Key, c.Was, c.Target)
}

// Result summarizes a semantic rewrite.
type Result struct {
	// Changes lists every slot that differs from its role color, in document order.
	Changes []Change
	// Applied is the number of slots written; zero for a dry run.
	Applied int
}

// Rewriter applies role colors to theme entries.
type Rewriter struct {
	mappings Mappings
	colors   ColorMaps
	// keysByRole is built once: lowercased key -> original key, per role.
	keysByRole []map[string]string
}

// NewRewriter prepares a rewriter for the given mappings and resolved colors.
func NewRewriter(mappings Mappings, colors ColorMaps) *Rewriter {
	keysByRole := make([]map[string]string, len(mappings))
	for i, rk := range mappings {
		keys := make(map[string]string, len(rk.Keys))
		for _, k := range rk.Keys {
			keys[strings.ToLower(k)] = k
		}
		keysByRole[i] = keys
	}
	return &Rewriter{mappings: mappings, colors: colors, keysByRole: keysByRole}
}

// RoleFor returns the first role, in mappings order, that claims key.
func (r *Rewriter) RoleFor(key string) (string, bool) {
	lk := strings.ToLower(key)
	for i, keys := range r.keysByRole {
		if _, ok := keys[lk]; ok {
			return r.mappings[i].Role, true
		}
	}
	return "", false
}

// Rewrite compares every color pair against its role's colors. Unless dryRun
// is set, differing slots are overwritten in doc.
//
// Slots holding a flag code are never touched in either position. Only the
// first role claiming a key is consulted, even when that role has no resolved
// colors; later roles claiming the same key are shadowed.
func (r *Rewriter) Rewrite(doc *theme.Document, dryRun bool) Result {
	log := logger.NewStyledLogger("semantic")

	var result Result
	for _, entry := range doc.Pairs() {
		role, ok := r.RoleFor(entry.Key)
		if !ok {
			continue
		}
		log.Debug("matched", "section", entry.Section, "key", entry.Key, "role", role)

		if target, ok := r.colors.Foreground[role]; ok {
			slot := entry.Pair.Slot(theme.Foreground)
			current, isString := slot.Value()
			if isString && !hexcolor.IsFlagCode(current) && !hexcolor.Equal(current, target) {
				result.Changes = append(result.Changes, r.change(theme.Foreground, entry, role, current, target))
				if !dryRun {
					slot.Set(target)
					result.Applied++
				}
			}
		}

		if target, ok := r.colors.Background[role]; ok {
			slot := entry.Pair.Slot(theme.Background)
			current, isString := slot.Value()
			if isString && !hexcolor.IsFlagCode(current) && !hexcolor.Equal(current, target) {
				result.Changes = append(result.Changes, r.change(theme.Background, entry, role, current, target))
				if !dryRun {
					slot.Set(target)
					result.Applied++
				}
			}
		}
	}
	return result
}

func (r *Rewriter) change(slot theme.SlotName, entry theme.Entry, role, was, target string) Change {
	return Change{
		Slot:    slot,
		Section: entry.Section,
		Key:     entry.Key,
		Role:    role,
		Was:     was,
		Target:  target,
	}
}
