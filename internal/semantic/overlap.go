package semantic

import "strings"

// Overlap is a classification key claimed by more than one role.
type Overlap struct {
	Key   string // lowercased key
	Roles []string
}

// DetectOverlaps reports keys (compared case-insensitively) that appear under
// more than one role, in the order the keys are first seen. The role listed
// first is the one the rewriter will use.
func DetectOverlaps(mappings Mappings) []Overlap {
	index := make(map[string][]string)
	var order []string

	for _, rk := range mappings {
		claimed := make(map[string]bool, len(rk.Keys))
		for _, key := range rk.Keys {
			lk := strings.ToLower(key)
			if claimed[lk] {
				continue
			}
			claimed[lk] = true
			if _, ok := index[lk]; !ok {
				order = append(order, lk)
			}
			index[lk] = append(index[lk], rk.Role)
		}
	}

	var overlaps []Overlap
	for _, lk := range order {
		if roles := index[lk]; len(roles) > 1 {
			overlaps = append(overlaps, Overlap{Key: lk, Roles: roles})
		}
	}
	return overlaps
}
