// Package skills provides skill normalization, the skill variant table and boundary-safe skill matching.
package skills

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a skill name for variant table lookup.
// It lowercases the input and drops '.', '-' and whitespace. All other characters are kept,
// so "C#" and "C" stay distinct.
func Normalize(skill string) string {
	if skill == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(skill))
	for _, r := range strings.ToLower(skill) {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
