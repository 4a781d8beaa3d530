package recipe

// IngredientSlots 上游每筆食譜固定提供的食材欄位組數
const IngredientSlots = 20

// RawSummary filter.php 回傳的單筆資料
type RawSummary struct {
	ID        *string `json:"idMeal"`
	Name      *string `json:"strMeal"`
	Thumbnail *string `json:"strMealThumb"`
}

// RawMeal lookup.php 回傳的單筆資料
// 食材以 strIngredientN / strMeasureN 成對的位置欄位表示，N 為 1..20
type RawMeal struct {
	ID           *string `json:"idMeal"`
	Name         *string `json:"strMeal"`
	Category     *string `json:"strCategory"`
	Area         *string `json:"strArea"`
	Instructions *string `json:"strInstructions"`
	Thumbnail    *string `json:"strMealThumb"`
	ImageSource  *string `json:"strImageSource"`
	Tags         *string `json:"strTags"`
	Youtube      *string `json:"strYoutube"`

	Ingredient1  *string `json:"strIngredient1"`
	Ingredient2  *string `json:"strIngredient2"`
	Ingredient3  *string `json:"strIngredient3"`
	Ingredient4  *string `json:"strIngredient4"`
	Ingredient5  *string `json:"strIngredient5"`
	Ingredient6  *string `json:"strIngredient6"`
	Ingredient7  *string `json:"strIngredient7"`
	Ingredient8  *string `json:"strIngredient8"`
	Ingredient9  *string `json:"strIngredient9"`
	Ingredient10 *string `json:"strIngredient10"`
	Ingredient11 *string `json:"strIngredient11"`
	Ingredient12 *string `json:"strIngredient12"`
	Ingredient13 *string `json:"strIngredient13"`
	Ingredient14 *string `json:"strIngredient14"`
	Ingredient15 *string `json:"strIngredient15"`
	Ingredient16 *string `json:"strIngredient16"`
	Ingredient17 *string `json:"strIngredient17"`
	Ingredient18 *string `json:"strIngredient18"`
	Ingredient19 *string `json:"strIngredient19"`
	Ingredient20 *string `json:"strIngredient20"`

	Measure1  *string `json:"strMeasure1"`
	Measure2  *string `json:"strMeasure2"`
	Measure3  *string `json:"strMeasure3"`
	Measure4  *string `json:"strMeasure4"`
	Measure5  *string `json:"strMeasure5"`
	Measure6  *string `json:"strMeasure6"`
	Measure7  *string `json:"strMeasure7"`
	Measure8  *string `json:"strMeasure8"`
	Measure9  *string `json:"strMeasure9"`
	Measure10 *string `json:"strMeasure10"`
	Measure11 *string `json:"strMeasure11"`
	Measure12 *string `json:"strMeasure12"`
	Measure13 *string `json:"strMeasure13"`
	Measure14 *string `json:"strMeasure14"`
	Measure15 *string `json:"strMeasure15"`
	Measure16 *string `json:"strMeasure16"`
	Measure17 *string `json:"strMeasure17"`
	Measure18 *string `json:"strMeasure18"`
	Measure19 *string `json:"strMeasure19"`
	Measure20 *string `json:"strMeasure20"`
}

// ingredientSlot 一組位置欄位
type ingredientSlot struct {
	name    *string
	measure *string
}

// slots 依位置 1..20 排列的欄位表
func (m *RawMeal) slots() [IngredientSlots]ingredientSlot {
	return [IngredientSlots]ingredientSlot{
		{m.Ingredient1, m.Measure1},
		{m.Ingredient2, m.Measure2},
		{m.Ingredient3, m.Measure3},
		{m.Ingredient4, m.Measure4},
		{m.Ingredient5, m.Measure5},
		{m.Ingredient6, m.Measure6},
		{m.Ingredient7, m.Measure7},
		{m.Ingredient8, m.Measure8},
		{m.Ingredient9, m.Measure9},
		{m.Ingredient10, m.Measure10},
		{m.Ingredient11, m.Measure11},
		{m.Ingredient12, m.Measure12},
		{m.Ingredient13, m.Measure13},
		{m.Ingredient14, m.Measure14},
		{m.Ingredient15, m.Measure15},
		{m.Ingredient16, m.Measure16},
		{m.Ingredient17, m.Measure17},
		{m.Ingredient18, m.Measure18},
		{m.Ingredient19, m.Measure19},
		{m.Ingredient20, m.Measure20},
	}
}
