package normalize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	slugRunRE    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Text collapses any run of whitespace, newlines and tabs included, to a
// single space and trims the ends. It is total and idempotent.
func Text(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// Slugify derives a lower-case ASCII identifier from a display name:
// apostrophes are dropped, every other non-alphanumeric run becomes a single
// underscore. "Fisherman's Boat" -> "fishermans_boat".
func Slugify(s string) string {
	s = strings.ReplaceAll(strings.ToLower(s), "'", "")
	s = slugRunRE.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// UniqueKeepOrder drops empty strings and duplicates, preserving the order
// in which values were first seen.
func UniqueKeepOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
