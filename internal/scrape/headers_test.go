package scrape

import "testing"

func TestResolveHeaders(t *testing.T) {
	doc := parseDoc(t, `<html><body><table>
<tr><th>Recipe</th><th>Image</th><th>Materials</th><th>How to obtain</th><th>Buy price</th><th>Sell price</th></tr>
</table></body></html>`)

	got := ResolveHeaders(doc.Find("table").First())
	want := HeaderMap{Name: 0, Materials: 2, Source: 3, Buy: 4, Sell: 5}
	if got != want {
		t.Errorf("ResolveHeaders = %+v, want %+v", got, want)
	}
}

func TestResolveHeadersUnmatched(t *testing.T) {
	doc := parseDoc(t, `<html><body><table>
<tr><th>Episode</th><th>Air date</th></tr>
</table></body></html>`)

	got := ResolveHeaders(doc.Find("table").First())
	want := HeaderMap{Name: -1, Materials: -1, Source: -1, Buy: -1, Sell: -1}
	if got != want {
		t.Errorf("ResolveHeaders = %+v, want %+v", got, want)
	}
}

func TestResolveHeadersFirstMatchWins(t *testing.T) {
	// "Item" and "Recipe source" both carry name keywords; left-most wins.
	doc := parseDoc(t, `<html><body><table>
<tr><th>Item</th><th>Recipe source</th></tr>
</table></body></html>`)

	got := ResolveHeaders(doc.Find("table").First())
	if got.Name != 0 {
		t.Errorf("Name = %d, want 0", got.Name)
	}
	if got.Source != 1 {
		t.Errorf("Source = %d, want 1", got.Source)
	}
}
