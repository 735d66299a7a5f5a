package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"recipe-scraper/internal/normalize"
)

// minTableScore is the selection threshold: anything below it is assumed to
// be navigation, infobox or layout markup rather than recipe data.
const minTableScore = 4

// HeaderRow returns the first row of the table carrying header cells, or nil.
func HeaderRow(table *goquery.Selection) *goquery.Selection {
	var header *goquery.Selection
	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if row.Find("th").Length() > 0 {
			header = row
			return false
		}
		return true
	})
	return header
}

func containsAny(s string, tokens ...string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// scoreTable rates how likely a table is to hold recipe rows, combining
// header keywords with data-row volume. Keyword weights mirror how
// discriminating each header is across the wiki's table layouts.
func scoreTable(table *goquery.Selection) int {
	header := HeaderRow(table)
	if header == nil {
		return 0
	}

	var headers []string
	header.Find("th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, strings.ToLower(normalize.Text(th.Text())))
	})
	if len(headers) == 0 {
		return 0
	}

	joined := strings.Join(headers, " ")
	score := 0
	if containsAny(joined, "recipe", "name", "item") {
		score += 4
	}
	if containsAny(joined, "materials", "ingredients") {
		score += 3
	}
	if strings.Contains(joined, "source") {
		score += 2
	}
	if containsAny(joined, "buy", "sell", "price") {
		score += 1
	}

	dataRows := 0
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("td").Length() > 0 {
			dataRows++
		}
	})
	switch {
	case dataRows >= 5:
		score += 2
	case dataRows >= 1:
		score++
	}

	return score
}

// SelectBestTable scans every table in the document and returns the one with
// the strictly highest score, keeping the first on ties. The second return
// is false when no table reaches the selection threshold; callers treat that
// as fatal for the page since there is no partial-table fallback.
func SelectBestTable(doc *goquery.Document) (*goquery.Selection, bool) {
	var best *goquery.Selection
	bestScore := 0

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if score := scoreTable(table); score > bestScore {
			best = table
			bestScore = score
		}
	})

	if bestScore < minTableScore {
		return nil, false
	}
	return best, true
}
