package fetch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"recipe-scraper/internal/config"
)

// DocumentFetcher fetches a URL and parses it into a document. A failure is
// "no document" to callers; nothing downstream retries.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Client fetches pages over plain HTTP.
type Client struct {
	http *resty.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(time.Duration(cfg.FetchTimeout) * time.Second).
			SetHeader("User-Agent", cfg.UserAgent),
	}
}

func (c *Client) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}
