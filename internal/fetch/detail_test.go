package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"recipe-scraper/internal/config"
)

func testClient() *Client {
	return NewClient(&config.Config{FetchTimeout: 5, UserAgent: "test-agent"})
}

func TestClientFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><head><title>Page</title></head><body></body></html>`))
	}))
	defer srv.Close()

	doc, err := testClient().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if title := doc.Find("title").Text(); title != "Page" {
		t.Errorf("title = %q, want %q", title, "Page")
	}
	if gotUA != "test-agent" {
		t.Errorf("user agent = %q, want %q", gotUA, "test-agent")
	}
}

func TestClientFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := testClient().Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected an error for a 404 response")
	}
}

func TestDetailResolverImageURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
<meta property="og:image" content="https://dodo.ac/np/images/thumb/9/98/Pie.png/64px-Pie.png">
</head><body></body></html>`))
	}))
	defer srv.Close()

	resolver := NewDetailResolver(testClient(), 0, zap.NewNop())
	got := resolver.ImageURL(context.Background(), srv.URL)
	want := "https://dodo.ac/np/images/9/98/Pie.png"
	if got != want {
		t.Errorf("ImageURL = %q, want thumb rewritten to %q", got, want)
	}
}

func TestDetailResolverImageFromInfobox(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<table class="infobox"><tr><td><img data-src="//dodo.ac/np/images/1/11/Axe.png"></td></tr></table>
</body></html>`))
	}))
	defer srv.Close()

	resolver := NewDetailResolver(testClient(), 0, zap.NewNop())
	got := resolver.ImageURL(context.Background(), srv.URL)
	if got != "https://dodo.ac/np/images/1/11/Axe.png" {
		t.Errorf("ImageURL = %q", got)
	}
}

func TestDetailResolverSourceText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><table class="infobox">
<tr><th>Buy price</th><td>1000</td></tr>
<tr><th>Obtained from</th><td>-</td></tr>
<tr><th>How to obtain</th><td> Message bottle </td></tr>
</table></body></html>`))
	}))
	defer srv.Close()

	resolver := NewDetailResolver(testClient(), 0, zap.NewNop())
	got := resolver.SourceText(context.Background(), srv.URL)
	if got != "Message bottle" {
		t.Errorf("SourceText = %q, want %q (placeholder rows skipped)", got, "Message bottle")
	}
}

func TestDetailResolverPortableInfobox(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="portable-infobox">
<div class="pi-item"><div class="pi-data-label">Source</div><div class="pi-data-value">Celeste</div></div>
</div></body></html>`))
	}))
	defer srv.Close()

	resolver := NewDetailResolver(testClient(), 0, zap.NewNop())
	if got := resolver.SourceText(context.Background(), srv.URL); got != "Celeste" {
		t.Errorf("SourceText = %q, want %q", got, "Celeste")
	}
}

func TestDetailResolverCachesDocuments(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`<html><head><meta property="og:image" content="https://x/y.png"></head></html>`))
	}))
	defer srv.Close()

	resolver := NewDetailResolver(testClient(), 0, zap.NewNop())
	ctx := context.Background()
	resolver.ImageURL(ctx, srv.URL)
	resolver.SourceText(ctx, srv.URL)
	resolver.ImageURL(ctx, srv.URL)

	if requests != 1 {
		t.Errorf("server saw %d requests, want 1", requests)
	}
}

func TestDetailResolverAbsorbsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	resolver := NewDetailResolver(testClient(), 0, zap.NewNop())
	if got := resolver.ImageURL(context.Background(), srv.URL); got != "" {
		t.Errorf("ImageURL after failed fetch = %q, want empty", got)
	}
	if got := resolver.SourceText(context.Background(), srv.URL); got != "" {
		t.Errorf("SourceText after failed fetch = %q, want empty", got)
	}
}
