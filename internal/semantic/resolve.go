package semantic

import (
	"fmt"

	"themepal/internal/logger"
)

// PaletteLookup resolves palette color names to hex values.
type PaletteLookup interface {
	Lookup(name string) (string, bool)
}

// ColorMaps holds the resolved role -> hex assignments.
type ColorMaps struct {
	Foreground map[string]string
	Background map[string]string
}

// ResolveColors looks up each role's palette names. A name missing from the
// palette drops that role from the corresponding map and logs a warning.
func ResolveColors(roles Roles, palette PaletteLookup) ColorMaps {
	maps := ColorMaps{
		Foreground: make(map[string]string),
		Background: make(map[string]string),
	}

	for _, spec := range roles {
		if spec.Foreground != "" {
			if hex, ok := palette.Lookup(spec.Foreground); ok {
				maps.Foreground[spec.Role] = hex
			} else {
				logger.Warn(fmt.Sprintf("Foreground color name '%s' for role '%s' not in palette.", spec.Foreground, spec.Role),
					"role", spec.Role, "color", spec.Foreground)
			}
		}
		if spec.Background != "" {
			if hex, ok := palette.Lookup(spec.Background); ok {
				maps.Background[spec.Role] = hex
			} else {
				logger.Warn(fmt.Sprintf("Background color name '%s' for role '%s' not in palette.", spec.Background, spec.Role),
					"role", spec.Role, "color", spec.Background)
			}
		}
	}
	return maps
}
