package scrape

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	wikiBaseURL  = "https://nookipedia.com"
	filePathBase = "https://nookipedia.com/wiki/Special:FilePath/"
	mediaMarker  = "/media/File:"
)

// MediaWiki thumbnail URL, e.g.
// https://dodo.ac/np/images/thumb/9/98/File.png/64px-File.png
var thumbImageRE = regexp.MustCompile(`(?i)(https?://dodo\.ac/np/images)/thumb/([0-9a-f])/([0-9a-f]{2})/([^/]+)/[^/]+$`)

// Characters kept verbatim when rebuilding a Special:FilePath URL; matches
// how the wiki itself escapes file names.
const filePathSafe = "()_-.,"

func escapeFilePath(name string) string {
	var b strings.Builder
	for _, c := range []byte(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(filePathSafe, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// ToAbsoluteURL rewrites relative and protocol-relative links to absolute
// ones. Media modal fragment links don't point at the image file itself, so
// they become direct Special:FilePath URLs instead.
func ToAbsoluteURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	} else if strings.HasPrefix(raw, "/") {
		raw = wikiBaseURL + raw
	}

	if parsed, err := url.Parse(raw); err == nil && strings.Contains(parsed.Fragment, mediaMarker) {
		filename := strings.TrimSpace(strings.SplitN(parsed.Fragment, mediaMarker, 2)[1])
		if filename != "" {
			return filePathBase + escapeFilePath(filename)
		}
	}

	return NormalizeImageURL(raw)
}

// NormalizeImageURL rewrites a MediaWiki thumbnail URL to the original image
// it was derived from. Non-thumbnail URLs pass through unchanged.
func NormalizeImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	return thumbImageRE.ReplaceAllString(raw, "${1}/${2}/${3}/${4}")
}
