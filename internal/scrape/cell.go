package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"recipe-scraper/internal/normalize"
)

// Bare footnote references like "[3]" that the wiki leaves inside source
// lists.
var footnoteRefRE = regexp.MustCompile(`^\[\d+\]$`)

// Some cells keep the human-readable value in an attribute instead of text
// content; checked in this order when the text comes up empty.
var cellFallbackAttrs = []string{"data-sort-value", "title", "aria-label"}

// textSegments collects the normalized text of every text node under the
// selection, in document order. Each segment corresponds to one visual line
// the way the wiki breaks cell content with <br> and nested elements.
func textSegments(s *goquery.Selection) []string {
	var parts []string
	for _, node := range s.Nodes {
		collectText(node, &parts)
	}
	return parts
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := normalize.Text(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// nodeText is the display text of a selection with adjacent inline elements
// kept apart. Selection.Text would run "3x" and "Apple" together when they
// sit in sibling elements.
func nodeText(s *goquery.Selection) string {
	return strings.Join(textSegments(s), " ")
}

// RowCells returns the data cells of a row in column order.
func RowCells(row *goquery.Selection) []*goquery.Selection {
	var cells []*goquery.Selection
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		cells = append(cells, td)
	})
	return cells
}

// CellText extracts the display text of the cell at idx. Out-of-range
// indexes, -1 from an unresolved header included, yield "". Empty text falls
// back through the attribute chain.
func CellText(cells []*goquery.Selection, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	cell := cells[idx]

	if text := normalize.Text(nodeText(cell)); text != "" {
		return text
	}
	for _, attr := range cellFallbackAttrs {
		if value := normalize.Text(cell.AttrOr(attr, "")); value != "" {
			return value
		}
	}
	return ""
}

// joinSourceValues filters out empties and bare footnote refs, de-duplicates
// keeping first-seen order, and joins what remains.
func joinSourceValues(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		v = normalize.Text(v)
		if v == "" || footnoteRefRE.MatchString(v) {
			continue
		}
		kept = append(kept, v)
	}
	return strings.Join(normalize.UniqueKeepOrder(kept), ", ")
}

// SourceCellText extracts a source cell, which often holds several obtain
// methods as list items. List items win over raw lines, raw lines over the
// plain cell text; every non-empty result goes through the English source
// normalizer.
func SourceCellText(cells []*goquery.Selection, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	cell := cells[idx]

	var items []string
	cell.Find("li").Each(func(_ int, li *goquery.Selection) {
		items = append(items, nodeText(li))
	})
	if joined := joinSourceValues(items); joined != "" {
		return normalize.SourceEN(joined)
	}

	if joined := joinSourceValues(textSegments(cell)); joined != "" {
		return normalize.SourceEN(joined)
	}

	if text := CellText(cells, idx); text != "" {
		return normalize.SourceEN(text)
	}
	return ""
}
