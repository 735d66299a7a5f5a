package domain

import "time"

// Recipe is the unit of output: one structured record per valid table row.
// All text fields are plain strings; Owned always starts out false and is
// only flipped later by the consuming app, never by the scraper.
type Recipe struct {
	ID          string `json:"id"`
	NameEN      string `json:"name_en"`
	NameKO      string `json:"name_ko"`
	CategoryEN  string `json:"category_en"`
	CategoryKO  string `json:"category_ko"`
	ImageURL    string `json:"image_url"`
	SourceURL   string `json:"source_url"`
	MaterialsEN string `json:"materials_en"`
	MaterialsKO string `json:"materials_ko"`
	SourceEN    string `json:"source_en"`
	SourceKO    string `json:"source_ko"`
	BuyPrice    string `json:"buy_price"`
	SellPrice   string `json:"sell_price"`
	Owned       bool   `json:"owned"`
}

// CategorySource identifies one wiki listing page and the bilingual category
// labels stamped onto every recipe extracted from it.
type CategorySource struct {
	CategoryEN string `json:"category_en"`
	CategoryKO string `json:"category_ko"`
	URL        string `json:"url"`
}

// ScrapeRequest is the payload for the API.
type ScrapeRequest struct {
	Categories []string `json:"categories"`
	Force      bool     `json:"force"` // Bypass the re-scrape window
}

// ScrapeTask represents a single category page to be processed by a worker.
type ScrapeTask struct {
	Source CategorySource
	Force  bool
}

// ScrapeStatusResponse is the API response for a category status query.
type ScrapeStatusResponse struct {
	Category    string    `json:"category"`
	Status      string    `json:"status"` // "completed", "failed", "processing"
	FailReason  string    `json:"fail_reason,omitempty"`
	RecipeCount int       `json:"recipe_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultSources lists the DIY recipe listing pages scraped by default.
func DefaultSources() []CategorySource {
	return []CategorySource{
		{CategoryEN: "Savory", CategoryKO: "푸드", URL: "https://nookipedia.com/wiki/DIY_recipes/Savory"},
		{CategoryEN: "Sweet", CategoryKO: "디저트", URL: "https://nookipedia.com/wiki/DIY_recipes/Sweet"},
		{CategoryEN: "Other", CategoryKO: "기타", URL: "https://nookipedia.com/wiki/DIY_recipes/Other"},
		{CategoryEN: "Tools", CategoryKO: "도구", URL: "https://nookipedia.com/wiki/DIY_recipes/Tools"},
		{CategoryEN: "Housewares", CategoryKO: "하우스웨어", URL: "https://nookipedia.com/wiki/DIY_recipes/Housewares"},
		{CategoryEN: "Miscellaneous", CategoryKO: "잡화", URL: "https://nookipedia.com/wiki/DIY_recipes/Miscellaneous"},
		{CategoryEN: "Wall-mounted", CategoryKO: "벽걸이", URL: "https://nookipedia.com/wiki/DIY_recipes/Wall-mounted"},
		{CategoryEN: "Ceiling decor", CategoryKO: "천장 장식", URL: "https://nookipedia.com/wiki/DIY_recipes/Ceiling_decor"},
		{CategoryEN: "Interior", CategoryKO: "인테리어", URL: "https://nookipedia.com/wiki/DIY_recipes/Interior"},
		{CategoryEN: "Clothing", CategoryKO: "의류", URL: "https://nookipedia.com/wiki/DIY_recipes/Clothing"},
	}
}

// FindSource looks up a default source by its English category name.
func FindSource(categoryEN string) (CategorySource, bool) {
	for _, src := range DefaultSources() {
		if src.CategoryEN == categoryEN {
			return src, true
		}
	}
	return CategorySource{}, false
}
