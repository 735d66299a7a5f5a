package normalize

import (
	"regexp"
	"strings"
)

// misjoinedSources corrects multi-entity source descriptions that lost their
// separators somewhere between the wiki markup and the extracted text. Keys
// match the whole trimmed string, not substrings.
var misjoinedSources = map[string]string{
	"Any villager Restaurant":             "Any villager, Restaurant",
	"Tom Nook Nook's Cranny":              "Tom Nook, Nook's Cranny",
	"Balloons Message bottle":             "Balloons, Message bottle",
	"Snowboy Message bottle":              "Snowboy, Message bottle",
	"Celeste Message bottle":              "Celeste, Message bottle",
	"Nook Miles Redemption Nook's Cranny": "Nook Miles Redemption, Nook's Cranny",
}

var commaSpacingRE = regexp.MustCompile(`\s*,\s*`)

// SourceEN canonicalizes an English source description. The exact-phrase
// table runs first so that a corrected value goes through the same comma
// respacing as everything else.
func SourceEN(s string) string {
	s = Text(s)
	if fixed, ok := misjoinedSources[s]; ok {
		s = fixed
	}
	s = commaSpacingRE.ReplaceAllString(s, ", ")
	return strings.Trim(s, ", ")
}

// SplitSourceTokens splits a canonical English source string into its
// comma-separated tokens, dropping empties.
func SplitSourceTokens(sourceEN string) []string {
	var tokens []string
	for _, part := range strings.Split(sourceEN, ",") {
		if t := Text(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
