package scrape

import "testing"

func TestToAbsoluteURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/wiki/Apple_Pie", "https://nookipedia.com/wiki/Apple_Pie"},
		{"//dodo.ac/np/images/1/11/Apple.png", "https://dodo.ac/np/images/1/11/Apple.png"},
		{"https://example.com/x", "https://example.com/x"},
		{
			"/wiki/Apple_Pie#/media/File:Apple Pie.png",
			"https://nookipedia.com/wiki/Special:FilePath/Apple%20Pie.png",
		},
	}
	for _, c := range cases {
		if got := ToAbsoluteURL(c.in); got != c.want {
			t.Errorf("ToAbsoluteURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeImageURLThumb(t *testing.T) {
	in := "https://dodo.ac/np/images/thumb/9/98/Apple_Pie.png/64px-Apple_Pie.png"
	want := "https://dodo.ac/np/images/9/98/Apple_Pie.png"
	if got := NormalizeImageURL(in); got != want {
		t.Errorf("NormalizeImageURL = %q, want %q", got, want)
	}

	// Non-thumbnail URLs pass through.
	plain := "https://dodo.ac/np/images/9/98/Apple_Pie.png"
	if got := NormalizeImageURL(plain); got != plain {
		t.Errorf("NormalizeImageURL(%q) = %q, want unchanged", plain, got)
	}
}

func TestFirstSrcsetURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"https://a/x.png 1x, https://a/y.png 2x", "https://a/x.png"},
		{"https://a/x.png", "https://a/x.png"},
		{"  https://a/x.png 1x  ", "https://a/x.png"},
	}
	for _, c := range cases {
		if got := FirstSrcsetURL(c.in); got != c.want {
			t.Errorf("FirstSrcsetURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
