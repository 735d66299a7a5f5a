package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Lazy-load attribute names checked before the plain src, and srcset
// variants checked after both.
var (
	imageSrcAttrs    = []string{"data-src", "data-image-src", "data-lazy-src", "src"}
	imageSrcsetAttrs = []string{"data-srcset", "srcset"}
)

// FirstSrcsetURL picks the first candidate URL out of a srcset value:
// "url1 1x, url2 2x" -> "url1".
func FirstSrcsetURL(value string) string {
	first := strings.TrimSpace(strings.SplitN(value, ",", 2)[0])
	if first == "" {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(first, " ", 2)[0])
}

// ImageSrc resolves the usable source URL of an <img> selection, absolute
// form. Empty when the selection is empty or carries no candidate.
func ImageSrc(img *goquery.Selection) string {
	if img.Length() == 0 {
		return ""
	}
	for _, attr := range imageSrcAttrs {
		if value := img.AttrOr(attr, ""); value != "" {
			return ToAbsoluteURL(value)
		}
	}
	for _, attr := range imageSrcsetAttrs {
		if value := FirstSrcsetURL(img.AttrOr(attr, "")); value != "" {
			return ToAbsoluteURL(value)
		}
	}
	return ""
}

// imageURLFromRow looks for an image in the name cell first, then anywhere
// in the row.
func imageURLFromRow(row, nameCell *goquery.Selection) string {
	var containers []*goquery.Selection
	if nameCell != nil {
		containers = append(containers, nameCell)
	}
	containers = append(containers, row)

	for _, container := range containers {
		if src := ImageSrc(container.Find("img").First()); src != "" {
			return src
		}
	}
	return ""
}
