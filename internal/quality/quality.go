// Package quality validates a scraped recipe set the way the downstream app
// expects it: duplicate ids, empty-field ratios, URL shape. The scraper
// itself never enforces these; it only reports.
package quality

import (
	"net/url"
	"sort"

	"recipe-scraper/internal/domain"
	"recipe-scraper/internal/normalize"
)

// Report summarizes dataset health. Passed is false when an error-class
// finding exists: duplicate ids, malformed ids, or invalid source URLs.
// Duplicate names and invalid image URLs are reported but not fatal.
type Report struct {
	Total             int            `json:"total"`
	CategoryCounts    map[string]int `json:"category_counts"`
	EmptyFieldCounts  map[string]int `json:"empty_field_counts"`
	DuplicateIDs      []string       `json:"duplicate_ids"`
	DuplicateNames    []string       `json:"duplicate_names"`
	MalformedIDs      []string       `json:"malformed_ids"`
	InvalidSourceURLs []string       `json:"invalid_source_urls"`
	InvalidImageURLs  []string       `json:"invalid_image_urls"`
	Passed            bool           `json:"passed"`
}

var stringFields = []struct {
	name string
	get  func(domain.Recipe) string
}{
	{"id", func(r domain.Recipe) string { return r.ID }},
	{"name_en", func(r domain.Recipe) string { return r.NameEN }},
	{"name_ko", func(r domain.Recipe) string { return r.NameKO }},
	{"category_en", func(r domain.Recipe) string { return r.CategoryEN }},
	{"category_ko", func(r domain.Recipe) string { return r.CategoryKO }},
	{"image_url", func(r domain.Recipe) string { return r.ImageURL }},
	{"source_url", func(r domain.Recipe) string { return r.SourceURL }},
	{"materials_en", func(r domain.Recipe) string { return r.MaterialsEN }},
	{"materials_ko", func(r domain.Recipe) string { return r.MaterialsKO }},
	{"source_en", func(r domain.Recipe) string { return r.SourceEN }},
	{"source_ko", func(r domain.Recipe) string { return r.SourceKO }},
	{"buy_price", func(r domain.Recipe) string { return r.BuyPrice }},
	{"sell_price", func(r domain.Recipe) string { return r.SellPrice }},
}

func isValidHTTPURL(value string) bool {
	if value == "" {
		return false
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// Check walks the recipe set once and builds the report.
func Check(recipes []domain.Recipe) Report {
	report := Report{
		Total:            len(recipes),
		CategoryCounts:   make(map[string]int),
		EmptyFieldCounts: make(map[string]int),
	}

	idCounts := make(map[string]int)
	nameCounts := make(map[string]int)

	for _, r := range recipes {
		if r.ID != "" {
			idCounts[r.ID]++
		}
		if r.NameEN != "" {
			nameCounts[r.NameEN]++
		}

		category := r.CategoryEN
		if category == "" {
			category = "(empty)"
		}
		report.CategoryCounts[category]++

		for _, field := range stringFields {
			if normalize.Text(field.get(r)) == "" {
				report.EmptyFieldCounts[field.name]++
			}
		}

		if r.ID != normalize.Slugify(r.NameEN) {
			report.MalformedIDs = append(report.MalformedIDs, r.ID)
		}
		if r.SourceURL != "" && !isValidHTTPURL(r.SourceURL) {
			report.InvalidSourceURLs = append(report.InvalidSourceURLs, r.SourceURL)
		}
		if r.ImageURL != "" && !isValidHTTPURL(r.ImageURL) {
			report.InvalidImageURLs = append(report.InvalidImageURLs, r.ImageURL)
		}
	}

	report.DuplicateIDs = duplicates(idCounts)
	report.DuplicateNames = duplicates(nameCounts)
	report.Passed = len(report.DuplicateIDs) == 0 &&
		len(report.MalformedIDs) == 0 &&
		len(report.InvalidSourceURLs) == 0

	return report
}

func duplicates(counts map[string]int) []string {
	var result []string
	for key, count := range counts {
		if count > 1 {
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result
}
