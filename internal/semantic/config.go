// Package semantic assigns palette colors to theme entries by role.
//
// Two documents drive it. The mappings document lists, per role, the
// classification keys (theme entry names) that belong to the role:
//
//	accent:
//	  - Tab.Active
//	  - Link
//
// The roles document names the palette color each role uses, either as a
// bare name (foreground only) or as a mapping with foreground/fg and
// background/bg keys:
//
//	accent: {fg: Cyan Glow, bg: Void Black}
//	error: Ember Red
//
// Role order is taken from the mappings document and decides which role wins
// when a key is claimed by more than one role.
package semantic

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"themepal/internal/logger"

	"gopkg.in/yaml.v3"
)

// ErrMalformedConfig is returned when a mappings or roles document is not a top-level mapping.
var ErrMalformedConfig = errors.New("mappings or roles file malformed; expected top-level mappings")

// RoleKeys is one role and the classification keys it claims.
type RoleKeys struct {
	Role string
	Keys []string
}

// Mappings is the ordered list of roles from the mappings document.
type Mappings []RoleKeys

// RoleSpec names the palette colors of a role. Empty names mean "not set".
type RoleSpec struct {
	Role       string
	Foreground string
	Background string
}

// Roles is the ordered list of role specs from the roles document.
type Roles []RoleSpec

// Load reads both semantic documents.
func Load(mappingsPath, rolesPath string) (Mappings, Roles, error) {
	mappingsData, err := os.ReadFile(mappingsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read mappings: %w", err)
	}
	rolesData, err := os.ReadFile(rolesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roles: %w", err)
	}

	mappings, err := ParseMappings(mappingsData)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", mappingsPath, err)
	}
	roles, err := ParseRoles(rolesData)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", rolesPath, err)
	}
	return mappings, roles, nil
}

// LoadMappings reads only the mappings document.
func LoadMappings(path string) (Mappings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings: %w", err)
	}
	mappings, err := ParseMappings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mappings, nil
}

// ParseMappings parses a role -> [classification keys] document.
// Roles whose value is not a list are skipped with a warning.
func ParseMappings(data []byte) (Mappings, error) {
	top, err := topMapping(data)
	if err != nil {
		return nil, err
	}

	var mappings Mappings
	index := make(map[string]int)
	for i := 0; i+1 < len(top.Content); i += 2 {
		role := top.Content[i].Value
		value := resolve(top.Content[i+1])
		if value.Kind != yaml.SequenceNode {
			logger.Warn(fmt.Sprintf("Role '%s' has non-list mappings; skipping", role), "role", role)
			continue
		}

		keys := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			keys = append(keys, scalarString(item))
		}

		entry := RoleKeys{Role: role, Keys: keys}
		if pos, seen := index[role]; seen {
			mappings[pos] = entry
			continue
		}
		index[role] = len(mappings)
		mappings = append(mappings, entry)
	}
	return mappings, nil
}

// ParseRoles parses a role -> color name document.
// Roles whose value is neither a string nor a mapping are skipped with a warning.
func ParseRoles(data []byte) (Roles, error) {
	top, err := topMapping(data)
	if err != nil {
		return nil, err
	}

	var roles Roles
	index := make(map[string]int)
	for i := 0; i+1 < len(top.Content); i += 2 {
		role := top.Content[i].Value
		value := resolve(top.Content[i+1])

		spec := RoleSpec{Role: role}
		switch {
		case value.Kind == yaml.ScalarNode && value.ShortTag() == "!!str":
			spec.Foreground = value.Value
		case value.Kind == yaml.MappingNode:
			spec.Foreground = firstSet(value, "foreground", "fg")
			spec.Background = firstSet(value, "background", "bg")
		default:
			logger.Warn(fmt.Sprintf("Role '%s' has unsupported spec type; skipping", role), "role", role)
			continue
		}

		if pos, seen := index[role]; seen {
			roles[pos] = spec
			continue
		}
		index[role] = len(roles)
		roles = append(roles, spec)
	}
	return roles, nil
}

func topMapping(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrMalformedConfig
	}
	top := resolve(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, ErrMalformedConfig
	}
	return top, nil
}

// firstSet returns the first alias whose value is a non-empty scalar.
func firstSet(mapping *yaml.Node, aliases ...string) string {
	for _, alias := range aliases {
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			if mapping.Content[i].Value != alias {
				continue
			}
			value := resolve(mapping.Content[i+1])
			if value.Kind == yaml.ScalarNode && value.ShortTag() != "!!null" && value.Value != "" {
				return value.Value
			}
		}
	}
	return ""
}

// scalarString renders a list item as text; nested collections are flattened to flow YAML.
func scalarString(n *yaml.Node) string {
	n = resolve(n)
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	flow := *n
	flow.Style = yaml.FlowStyle
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
