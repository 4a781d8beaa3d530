package recipe

import "strings"

// NormalizeSummary 將 filter.php 的單筆資料轉為 RecipeSummary
// ID 或名稱為空的資料回傳 false，由呼叫端略過
func NormalizeSummary(raw RawSummary) (RecipeSummary, bool) {
	id, name := deref(raw.ID), deref(raw.Name)
	if id == "" || name == "" {
		return RecipeSummary{}, false
	}
	return RecipeSummary{
		ID:           id,
		Name:         name,
		ThumbnailURL: cloneString(raw.Thumbnail),
	}, true
}

// Normalize 將 lookup.php 的單筆資料轉為 RecipeDetail
// 純函數，任何缺漏欄位只會變成 nil 或被略過的食材，不會回傳錯誤
func Normalize(raw RawMeal) RecipeDetail {
	return RecipeDetail{
		ID:             deref(raw.ID),
		Name:           deref(raw.Name),
		Category:       cloneString(raw.Category),
		Area:           cloneString(raw.Area),
		Instructions:   cloneString(raw.Instructions),
		ThumbnailURL:   cloneString(raw.Thumbnail),
		SourceImageURL: cloneString(raw.ImageSource),
		VideoURL:       cloneString(raw.Youtube),
		Tags:           splitTags(raw.Tags),
		Ingredients:    collectIngredients(&raw),
	}
}

// splitTags 依逗號切開，保留空白與空字串片段
func splitTags(tags *string) []string {
	if tags == nil {
		return []string{}
	}
	return strings.Split(*tags, ",")
}

// collectIngredients 依位置 1..20 取出名稱與用量皆非空的食材
// 只有空白的欄位視同空字串；保留的值不做 trim
func collectIngredients(raw *RawMeal) []Ingredient {
	ingredients := make([]Ingredient, 0, IngredientSlots)
	for _, slot := range raw.slots() {
		name, measure := deref(slot.name), deref(slot.measure)
		if isBlank(name) || isBlank(measure) {
			continue
		}
		ingredients = append(ingredients, Ingredient{Name: name, Amount: measure})
	}
	return ingredients
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// cloneString 複製指標，避免結果與原始資料共用記憶體
func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
