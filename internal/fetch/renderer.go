package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"recipe-scraper/internal/config"
)

// Renderer fetches pages through headless Chrome, for wiki skins that only
// materialize their tables after script execution. Enabled via RENDER_JS.
type Renderer struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
}

func NewRenderer(cfg *config.Config) *Renderer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", ""),
		chromedp.Flag("disable-dev-shm-usage", ""),
		chromedp.UserAgent(cfg.UserAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Renderer{
		allocCtx:    allocCtx,
		allocCancel: cancel,
		timeout:     time.Duration(cfg.FetchTimeout) * time.Second,
	}
}

func (r *Renderer) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	taskCtx, cancel := chromedp.NewContext(r.allocCtx)
	defer cancel()
	taskCtx, timeoutCancel := context.WithTimeout(taskCtx, r.timeout)
	defer timeoutCancel()

	var htmlContent string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

func (r *Renderer) Close() {
	r.allocCancel()
}
