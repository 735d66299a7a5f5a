package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PagesFetched       *prometheus.CounterVec
	RecipesExtracted   *prometheus.CounterVec
	TranslationLookups *prometheus.CounterVec
	ErrorsTotal        *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		PagesFetched: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_pages_fetched_total",
			Help: "The total number of pages fetched",
		}, []string{"kind"}), // 'category', 'detail'
		RecipesExtracted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_recipes_extracted_total",
			Help: "The total number of recipes extracted",
		}, []string{"category"}),
		TranslationLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_translation_lookups_total",
			Help: "Translation cache lookups by result",
		}, []string{"result"}), // 'hit', 'miss'
		ErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_errors_total",
			Help: "The total number of errors encountered",
		}, []string{"type"}), // e.g. 'fetch_failed', 'table_not_found', 'db_save_failed'
	}
}

func (m *Metrics) IncPagesFetched(kind string) {
	m.PagesFetched.WithLabelValues(kind).Inc()
}

func (m *Metrics) AddRecipesExtracted(category string, n int) {
	m.RecipesExtracted.WithLabelValues(category).Add(float64(n))
}

func (m *Metrics) IncTranslationLookup(result string) {
	m.TranslationLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) IncErrorsTotal(errorType string) {
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}
