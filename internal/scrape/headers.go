package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"recipe-scraper/internal/normalize"
)

// HeaderMap assigns semantic column roles to header positions. -1 means the
// role was not found. Name is left at -1 too; the record assembler is the
// one that substitutes column 0 for it at the point of use.
type HeaderMap struct {
	Name      int
	Materials int
	Source    int
	Buy       int
	Sell      int
}

// Keyword lists are ordered by how the wiki names each column across pages;
// the first header containing a keyword wins, scanning left to right.
var (
	nameKeywords      = []string{"recipe", "name", "item"}
	materialsKeywords = []string{"materials", "ingredients"}
	sourceKeywords    = []string{"source", "obtain", "obtained", "how to obtain", "recipe source", "available from", "available"}
	buyKeywords       = []string{"buy"}
	sellKeywords      = []string{"sell"}
)

// ResolveHeaders maps the table's header cells to semantic roles by keyword
// matching on their lower-cased text.
func ResolveHeaders(table *goquery.Selection) HeaderMap {
	var headers []string
	if row := HeaderRow(table); row != nil {
		row.Find("th").Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, strings.ToLower(normalize.Text(th.Text())))
		})
	}

	find := func(keywords []string) int {
		for i, header := range headers {
			for _, keyword := range keywords {
				if strings.Contains(header, keyword) {
					return i
				}
			}
		}
		return -1
	}

	return HeaderMap{
		Name:      find(nameKeywords),
		Materials: find(materialsKeywords),
		Source:    find(sourceKeywords),
		Buy:       find(buyKeywords),
		Sell:      find(sellKeywords),
	}
}
