package scrape

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"recipe-scraper/internal/domain"
	"recipe-scraper/internal/normalize"
)

// ImageResolver looks up an item's image on its detail page.
type ImageResolver interface {
	ImageURL(ctx context.Context, pageURL string) string
}

// SourceResolver looks up an item's source description on its detail page.
type SourceResolver interface {
	SourceText(ctx context.Context, pageURL string) string
}

// Translator returns a best-effort translation; on failure it must return
// the input unchanged, never an error.
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// Collaborators are the external lookups the extractor consults only when
// the table row itself comes up empty. Any of them may be nil, in which case
// the corresponding field degrades to its empty value.
type Collaborators struct {
	Images     ImageResolver
	Sources    SourceResolver
	Translator Translator
}

func (c Collaborators) translate(ctx context.Context, text string) string {
	if text == "" || c.Translator == nil {
		return ""
	}
	return c.Translator.Translate(ctx, text)
}

// dataRowsAfterHeader returns the rows following the header row, in table
// order. Without a header row every row is a candidate.
func dataRowsAfterHeader(table *goquery.Selection) []*goquery.Selection {
	header := HeaderRow(table)
	seenHeader := header == nil

	var rows []*goquery.Selection
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if !seenHeader {
			if len(row.Nodes) > 0 && len(header.Nodes) > 0 && row.Nodes[0] == header.Nodes[0] {
				seenHeader = true
			}
			return
		}
		rows = append(rows, row)
	})
	return rows
}

// ExtractRecords walks every data row of the selected table and emits one
// recipe per row that has a name. Output order equals row order; nothing is
// re-ordered or de-duplicated here.
func ExtractRecords(ctx context.Context, table *goquery.Selection, headers HeaderMap, src domain.CategorySource, deps Collaborators) []domain.Recipe {
	var recipes []domain.Recipe

	for _, row := range dataRowsAfterHeader(table) {
		cells := RowCells(row)
		if len(cells) == 0 {
			continue
		}

		nameIdx := headers.Name
		if nameIdx < 0 {
			nameIdx = 0
		}
		if nameIdx >= len(cells) {
			continue
		}
		nameCell := cells[nameIdx]

		// The last anchor in the name cell is the item link; earlier ones
		// are icons or footnotes.
		var nameLink *goquery.Selection
		if links := nameCell.Find("a"); links.Length() > 0 {
			nameLink = links.Last()
		}

		var nameEN string
		if nameLink != nil {
			nameEN = normalize.Text(nodeText(nameLink))
		} else {
			nameEN = normalize.Text(nodeText(nameCell))
		}
		if nameEN == "" {
			// A row with no name is not a recipe.
			continue
		}

		var detailURL string
		if nameLink != nil {
			detailURL = ToAbsoluteURL(nameLink.AttrOr("href", ""))
		}

		imageURL := imageURLFromRow(row, nameCell)
		if imageURL == "" && detailURL != "" && deps.Images != nil {
			imageURL = deps.Images.ImageURL(ctx, detailURL)
		}

		materialsEN := CellText(cells, headers.Materials)

		sourceEN := SourceCellText(cells, headers.Source)
		if sourceEN == "" && detailURL != "" && deps.Sources != nil {
			sourceEN = deps.Sources.SourceText(ctx, detailURL)
		}
		sourceEN = normalize.SourceEN(sourceEN)

		buyPrice := CellText(cells, headers.Buy)
		sellPrice := CellText(cells, headers.Sell)

		nameKO := deps.translate(ctx, nameEN)
		materialsKO := deps.translate(ctx, materialsEN)
		sourceKO := normalize.SourceKO(sourceEN, deps.translate(ctx, sourceEN))

		sourceURL := detailURL
		if sourceURL == "" {
			sourceURL = src.URL
		}

		recipes = append(recipes, domain.Recipe{
			ID:          normalize.Slugify(nameEN),
			NameEN:      nameEN,
			NameKO:      nameKO,
			CategoryEN:  src.CategoryEN,
			CategoryKO:  src.CategoryKO,
			ImageURL:    imageURL,
			SourceURL:   sourceURL,
			MaterialsEN: materialsEN,
			MaterialsKO: materialsKO,
			SourceEN:    sourceEN,
			SourceKO:    sourceKO,
			BuyPrice:    buyPrice,
			SellPrice:   sellPrice,
			Owned:       false,
		})
	}

	return recipes
}
