package domain

import "testing"

func TestDefaultSources(t *testing.T) {
	sources := DefaultSources()
	if len(sources) != 10 {
		t.Fatalf("got %d sources, want 10", len(sources))
	}
	for _, src := range sources {
		if src.CategoryEN == "" || src.CategoryKO == "" || src.URL == "" {
			t.Errorf("incomplete source: %+v", src)
		}
	}
}

func TestFindSource(t *testing.T) {
	src, ok := FindSource("Tools")
	if !ok {
		t.Fatal("Tools should be a default source")
	}
	if src.CategoryKO != "도구" {
		t.Errorf("CategoryKO = %q, want %q", src.CategoryKO, "도구")
	}

	if _, ok := FindSource("Nonexistent"); ok {
		t.Error("unknown category must not resolve")
	}
}
