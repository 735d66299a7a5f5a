package fetch

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"recipe-scraper/internal/normalize"
	"recipe-scraper/internal/scrape"
)

// Selectors tried in order when the page carries no usable og/twitter image
// meta tag.
var detailImageSelectors = []string{
	".infobox img",
	"table.infobox img",
	".portable-infobox img",
	".pi-image-thumbnail",
	"#mw-content-text img",
}

// Infobox labels that name the source field across the wiki's templates.
var detailSourcePatterns = []string{
	"source",
	"obtain",
	"obtained",
	"how to obtain",
	"obtain method",
	"recipe source",
	"available from",
	"available",
}

// DetailResolver answers image and source lookups against item detail
// pages. It keeps a per-run document cache so several rows linking to the
// same page cost one fetch; the cache is not safe for sharing across
// workers, each worker owns its own resolver.
type DetailResolver struct {
	fetcher DocumentFetcher
	cache   map[string]*goquery.Document
	delay   time.Duration
	logger  *zap.Logger
}

func NewDetailResolver(fetcher DocumentFetcher, delay time.Duration, logger *zap.Logger) *DetailResolver {
	return &DetailResolver{
		fetcher: fetcher,
		cache:   make(map[string]*goquery.Document),
		delay:   delay,
		logger:  logger,
	}
}

// document fetches and caches a detail page. Failures are absorbed: the
// caller sees nil and degrades to an empty field.
func (r *DetailResolver) document(ctx context.Context, url string) *goquery.Document {
	if url == "" {
		return nil
	}
	if doc, ok := r.cache[url]; ok {
		return doc
	}

	doc, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		r.logger.Warn("detail page fetch failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	r.cache[url] = doc
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	return doc
}

// ImageURL resolves an item image from its detail page: page meta images
// first, then the infobox selector chain.
func (r *DetailResolver) ImageURL(ctx context.Context, pageURL string) string {
	doc := r.document(ctx, pageURL)
	if doc == nil {
		return ""
	}

	if content := doc.Find(`meta[property="og:image"]`).AttrOr("content", ""); content != "" {
		return scrape.ToAbsoluteURL(content)
	}
	if content := doc.Find(`meta[name="twitter:image"]`).AttrOr("content", ""); content != "" {
		return scrape.ToAbsoluteURL(content)
	}

	for _, selector := range detailImageSelectors {
		if src := scrape.ImageSrc(doc.Find(selector).First()); src != "" {
			return src
		}
	}
	return ""
}

// SourceText resolves an item's source description from its detail page
// infobox, classic or portable. "-" placeholder values are skipped.
func (r *DetailResolver) SourceText(ctx context.Context, pageURL string) string {
	doc := r.document(ctx, pageURL)
	if doc == nil {
		return ""
	}

	var found string
	doc.Find("table.infobox tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		th := row.Find("th").First()
		td := row.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return true
		}
		if !matchesSourceLabel(normalize.Text(th.Text())) {
			return true
		}
		if value := normalize.Text(td.Text()); value != "" && value != "-" {
			found = value
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	doc.Find(".portable-infobox .pi-item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		label := item.Find(".pi-data-label").First()
		value := item.Find(".pi-data-value").First()
		if label.Length() == 0 || value.Length() == 0 {
			return true
		}
		if !matchesSourceLabel(normalize.Text(label.Text())) {
			return true
		}
		if v := normalize.Text(value.Text()); v != "" && v != "-" {
			found = v
			return false
		}
		return true
	})
	return found
}

func matchesSourceLabel(label string) bool {
	lower := strings.ToLower(normalize.Text(label))
	if lower == "" {
		return false
	}
	for _, pattern := range detailSourcePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
