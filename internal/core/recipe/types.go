package recipe

// DessertCategory 目錄固定只查詢的分類
const DessertCategory = "Dessert"

// RecipeSummary 列表用的精簡食譜
// ID 與 Name 一定非空；ThumbnailURL 為 nil 表示上游沒有提供
type RecipeSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}

// RecipeDetail 完整食譜
type RecipeDetail struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Category       *string      `json:"category,omitempty"`
	Area           *string      `json:"area,omitempty"`
	Instructions   *string      `json:"instructions,omitempty"`
	ThumbnailURL   *string      `json:"thumbnail_url,omitempty"`
	SourceImageURL *string      `json:"source_image_url,omitempty"`
	VideoURL       *string      `json:"video_url,omitempty"`
	Tags           []string     `json:"tags"`
	Ingredients    []Ingredient `json:"ingredients"`
}

// Ingredient 食材與用量，兩者皆非空
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}
