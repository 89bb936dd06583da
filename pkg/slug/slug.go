// Package slug derives URL-safe identifiers from display names. Derivation
// does not guarantee uniqueness; the mutation pipeline checks the store for
// collisions separately.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	kebabCase       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Make lowercases the name, collapses non-alphanumeric runs into single
// hyphens and trims leading/trailing hyphens. Deriving from an already
// kebab-case string is a no-op.
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValid reports whether s is kebab-case.
func IsValid(s string) bool {
	return kebabCase.MatchString(s)
}
