package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func dataRow(name string) string {
	return "<tr><td>" + name + "</td><td>1x Wood</td></tr>"
}

func TestSelectBestTablePicksRecipeTable(t *testing.T) {
	html := `<html><body>
<table id="nav"><tr><td>Home</td></tr></table>
<table id="recipes">
<tr><th>Name</th><th>Materials</th></tr>` +
		dataRow("A") + dataRow("B") + dataRow("C") + dataRow("D") + dataRow("E") + `
</table>
</body></html>`

	table, ok := SelectBestTable(parseDoc(t, html))
	if !ok {
		t.Fatal("expected a table to be selected")
	}
	if id, _ := table.Attr("id"); id != "recipes" {
		t.Errorf("selected table id = %q, want %q", id, "recipes")
	}
}

func TestSelectBestTableNotFound(t *testing.T) {
	html := `<html><body>
<table><tr><th>Episode</th><th>Air date</th></tr><tr><td>1</td><td>2020</td></tr></table>
<table><tr><td>no header at all</td></tr></table>
</body></html>`

	if _, ok := SelectBestTable(parseDoc(t, html)); ok {
		t.Error("expected no table to reach the threshold")
	}
}

func TestSelectBestTableTieKeepsFirst(t *testing.T) {
	html := `<html><body>
<table id="first"><tr><th>Name</th></tr>` + dataRow("A") + `</table>
<table id="second"><tr><th>Name</th></tr>` + dataRow("B") + `</table>
</body></html>`

	table, ok := SelectBestTable(parseDoc(t, html))
	if !ok {
		t.Fatal("expected a table to be selected")
	}
	if id, _ := table.Attr("id"); id != "first" {
		t.Errorf("tie should keep the first table, got %q", id)
	}
}

func TestScoreTable(t *testing.T) {
	cases := []struct {
		name string
		html string
		want int
	}{
		{
			"no header row",
			`<table><tr><td>x</td></tr></table>`,
			0,
		},
		{
			"header without keywords, one data row",
			`<table><tr><th>Episode</th></tr><tr><td>1</td></tr></table>`,
			1,
		},
		{
			"full recipe header, five data rows",
			`<table><tr><th>Recipe</th><th>Materials</th><th>Source</th><th>Buy</th><th>Sell</th></tr>` +
				dataRow("a") + dataRow("b") + dataRow("c") + dataRow("d") + dataRow("e") + `</table>`,
			12,
		},
		{
			"name and materials, one row",
			`<table><tr><th>Name</th><th>Ingredients</th></tr>` + dataRow("a") + `</table>`,
			8,
		},
	}
	for _, c := range cases {
		doc := parseDoc(t, "<html><body>"+c.html+"</body></html>")
		table := doc.Find("table").First()
		if got := scoreTable(table); got != c.want {
			t.Errorf("%s: score = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestHeaderRow(t *testing.T) {
	doc := parseDoc(t, `<html><body><table>
<tr><td>stray data first</td></tr>
<tr id="hdr"><th>Name</th></tr>
<tr><td>data</td></tr>
</table></body></html>`)

	row := HeaderRow(doc.Find("table").First())
	if row == nil {
		t.Fatal("expected a header row")
	}
	if id, _ := row.Attr("id"); id != "hdr" {
		t.Errorf("header row id = %q, want %q", id, "hdr")
	}
}
