package translate

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"recipe-scraper/internal/config"
	"recipe-scraper/internal/monitoring"
	"recipe-scraper/internal/normalize"
)

// Cache stores translations keyed by normalized source text. A miss is not
// an error.
type Cache interface {
	Get(ctx context.Context, text string) (string, bool)
	Set(ctx context.Context, text, translated string)
}

// GoogleTranslator translates text through the public gtx endpoint. Every
// failure path returns the input unchanged; the extraction core never sees
// a translation error.
type GoogleTranslator struct {
	http     *resty.Client
	endpoint string
	source   string
	target   string
	cache    Cache
	delay    time.Duration
	logger   *zap.Logger
	metrics  *monitoring.Metrics
}

func NewGoogle(cfg *config.Config, cache Cache, logger *zap.Logger, metrics *monitoring.Metrics) *GoogleTranslator {
	return &GoogleTranslator{
		http: resty.New().
			SetTimeout(20 * time.Second).
			SetHeader("User-Agent", cfg.UserAgent),
		endpoint: cfg.TranslateEndpoint,
		source:   "en",
		target:   "ko",
		cache:    cache,
		delay:    time.Duration(cfg.TranslateDelayMS) * time.Millisecond,
		logger:   logger,
		metrics:  metrics,
	}
}

// Translate returns the Korean rendering of text, consulting the cache
// first. Empty input short-circuits to empty output without any lookup.
func (t *GoogleTranslator) Translate(ctx context.Context, text string) string {
	cleaned := normalize.Text(text)
	if cleaned == "" {
		return ""
	}

	if t.cache != nil {
		if cached, ok := t.cache.Get(ctx, cleaned); ok {
			t.countLookup("hit")
			return cached
		}
	}
	t.countLookup("miss")

	result := t.request(ctx, cleaned)
	if result == "" {
		result = cleaned
	}

	if t.cache != nil {
		t.cache.Set(ctx, cleaned, result)
	}
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
	return result
}

func (t *GoogleTranslator) request(ctx context.Context, text string) string {
	resp, err := t.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     t.source,
			"tl":     t.target,
			"dt":     "t",
			"q":      text,
		}).
		Get(t.endpoint)
	if err != nil {
		t.logger.Warn("translation request failed", zap.String("text", text), zap.Error(err))
		return ""
	}
	if resp.IsError() {
		t.logger.Warn("translation request rejected",
			zap.String("text", text), zap.Int("status", resp.StatusCode()))
		return ""
	}
	return parsePayload(resp.Body())
}

// parsePayload walks the endpoint's nested-array response:
// [[["번역","translation",...],...],...] — the first element of each part of
// the first group is a translated segment.
func parsePayload(body []byte) string {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		return ""
	}
	parts, ok := payload[0].([]any)
	if !ok {
		return ""
	}

	var b strings.Builder
	for _, part := range parts {
		segment, ok := part.([]any)
		if !ok || len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			b.WriteString(s)
		}
	}
	return normalize.Text(b.String())
}

func (t *GoogleTranslator) countLookup(result string) {
	if t.metrics != nil {
		t.metrics.IncTranslationLookup(result)
	}
}
