package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMeal(t *testing.T, payload string) RawMeal {
	t.Helper()
	var raw RawMeal
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func strPtr(s string) *string {
	return &s
}

// fullMeal 20 組食材皆有值的資料
func fullMeal() string {
	fields := []string{`"idMeal": "52768"`, `"strMeal": "Apple Frangipan Tart"`}
	for i := 1; i <= IngredientSlots; i++ {
		fields = append(fields,
			fmt.Sprintf(`"strIngredient%d": "ingredient-%d"`, i, i),
			fmt.Sprintf(`"strMeasure%d": "%dg"`, i, i),
		)
	}
	return "{" + strings.Join(fields, ",") + "}"
}

func TestNormalize(t *testing.T) {
	t.Run("Should map scalar fields one to one", func(t *testing.T) {
		raw := decodeMeal(t, `{
			"idMeal": "52893",
			"strMeal": "Apple & Blackberry Crumble",
			"strCategory": "Dessert",
			"strArea": "British",
			"strInstructions": "Heat oven to 190C.",
			"strMealThumb": "https://www.themealdb.com/images/media/meals/xvsurr1511719182.jpg",
			"strImageSource": "https://example.com/source.jpg",
			"strYoutube": "https://www.youtube.com/watch?v=4vhcOwVBDO4"
		}`)

		detail := Normalize(raw)

		assert.Equal(t, "52893", detail.ID)
		assert.Equal(t, "Apple & Blackberry Crumble", detail.Name)
		assert.Equal(t, strPtr("Dessert"), detail.Category)
		assert.Equal(t, strPtr("British"), detail.Area)
		assert.Equal(t, strPtr("Heat oven to 190C."), detail.Instructions)
		assert.Equal(t, strPtr("https://www.themealdb.com/images/media/meals/xvsurr1511719182.jpg"), detail.ThumbnailURL)
		assert.Equal(t, strPtr("https://example.com/source.jpg"), detail.SourceImageURL)
		assert.Equal(t, strPtr("https://www.youtube.com/watch?v=4vhcOwVBDO4"), detail.VideoURL)
	})

	t.Run("Should keep null and missing scalars absent", func(t *testing.T) {
		raw := decodeMeal(t, `{
			"idMeal": "1",
			"strMeal": "Plain",
			"strCategory": null,
			"strMealThumb": null,
			"strImageSource": null
		}`)

		detail := Normalize(raw)

		assert.Nil(t, detail.Category)
		assert.Nil(t, detail.Area)
		assert.Nil(t, detail.Instructions)
		assert.Nil(t, detail.ThumbnailURL)
		assert.Nil(t, detail.SourceImageURL)
		assert.Nil(t, detail.VideoURL)
	})

	t.Run("Should split tags on commas", func(t *testing.T) {
		raw := decodeMeal(t, `{"idMeal": "1", "strMeal": "a", "strTags": "Breakfast,Desert,Sweet,Fruity"}`)

		assert.Equal(t, []string{"Breakfast", "Desert", "Sweet", "Fruity"}, Normalize(raw).Tags)
	})

	t.Run("Should not trim or drop tag segments", func(t *testing.T) {
		raw := decodeMeal(t, `{"idMeal": "1", "strMeal": "a", "strTags": "Tart, Baking,,Fruity "}`)

		assert.Equal(t, []string{"Tart", " Baking", "", "Fruity "}, Normalize(raw).Tags)
	})

	t.Run("Should return empty tags when field is null or missing", func(t *testing.T) {
		withNull := Normalize(decodeMeal(t, `{"idMeal": "1", "strMeal": "a", "strTags": null}`))
		missing := Normalize(decodeMeal(t, `{"idMeal": "1", "strMeal": "a"}`))

		assert.NotNil(t, withNull.Tags)
		assert.Empty(t, withNull.Tags)
		assert.NotNil(t, missing.Tags)
		assert.Empty(t, missing.Tags)
	})

	t.Run("Should keep only positions 1, 2 and 3 in order", func(t *testing.T) {
		raw := decodeMeal(t, `{
			"idMeal": "1", "strMeal": "a",
			"strIngredient1": "Flour", "strMeasure1": "200g",
			"strIngredient2": "Sugar", "strMeasure2": "100g",
			"strIngredient3": "Butter", "strMeasure3": "50g",
			"strIngredient4": "", "strMeasure4": "",
			"strIngredient5": null, "strMeasure5": null,
			"strIngredient20": "", "strMeasure20": null
		}`)

		assert.Equal(t, []Ingredient{
			{Name: "Flour", Amount: "200g"},
			{Name: "Sugar", Amount: "100g"},
			{Name: "Butter", Amount: "50g"},
		}, Normalize(raw).Ingredients)
	})

	t.Run("Should skip a position whose pair is two empty strings", func(t *testing.T) {
		raw := decodeMeal(t, `{
			"idMeal": "1", "strMeal": "a",
			"strIngredient7": "Eggs", "strMeasure7": "2",
			"strIngredient8": "", "strMeasure8": "",
			"strIngredient9": "Milk", "strMeasure9": "1 cup"
		}`)

		assert.Equal(t, []Ingredient{
			{Name: "Eggs", Amount: "2"},
			{Name: "Milk", Amount: "1 cup"},
		}, Normalize(raw).Ingredients)
	})

	t.Run("Should never emit a partial ingredient", func(t *testing.T) {
		raw := decodeMeal(t, `{
			"idMeal": "1", "strMeal": "a",
			"strIngredient1": "Salt", "strMeasure1": "",
			"strIngredient2": "Pepper",
			"strIngredient3": "", "strMeasure3": "1 tsp",
			"strMeasure4": "pinch",
			"strIngredient5": "Vanilla", "strMeasure5": "   "
		}`)

		assert.Empty(t, Normalize(raw).Ingredients)
	})

	t.Run("Should keep surrounding whitespace of usable values", func(t *testing.T) {
		raw := decodeMeal(t, `{"idMeal": "1", "strMeal": "a", "strIngredient1": "Cocoa ", "strMeasure1": " 2 tbsp"}`)

		assert.Equal(t, []Ingredient{{Name: "Cocoa ", Amount: " 2 tbsp"}}, Normalize(raw).Ingredients)
	})

	t.Run("Should tolerate all twenty pairs absent", func(t *testing.T) {
		detail := Normalize(RawMeal{ID: strPtr("1"), Name: strPtr("a")})

		assert.NotNil(t, detail.Ingredients)
		assert.Empty(t, detail.Ingredients)
	})

	t.Run("Should keep all twenty pairs in positional order", func(t *testing.T) {
		detail := Normalize(decodeMeal(t, fullMeal()))

		require.Len(t, detail.Ingredients, IngredientSlots)
		for i, ing := range detail.Ingredients {
			assert.Equal(t, fmt.Sprintf("ingredient-%d", i+1), ing.Name)
			assert.Equal(t, fmt.Sprintf("%dg", i+1), ing.Amount)
		}
	})

	t.Run("Should not deduplicate repeated ingredients", func(t *testing.T) {
		raw := decodeMeal(t, `{
			"idMeal": "1", "strMeal": "a",
			"strIngredient1": "Sugar", "strMeasure1": "100g",
			"strIngredient2": "Sugar", "strMeasure2": "100g"
		}`)

		assert.Len(t, Normalize(raw).Ingredients, 2)
	})

	t.Run("Should yield equal results when applied twice", func(t *testing.T) {
		raw := decodeMeal(t, fullMeal())
		raw.Tags = strPtr("a,b")
		raw.Category = strPtr("Dessert")

		assert.Equal(t, Normalize(raw), Normalize(raw))
	})

	t.Run("Should not share memory with the raw object", func(t *testing.T) {
		raw := RawMeal{ID: strPtr("1"), Name: strPtr("a"), Category: strPtr("Dessert")}
		detail := Normalize(raw)

		*raw.Category = "Changed"

		assert.Equal(t, "Dessert", *detail.Category)
	})
}

func TestNormalizeIngredientCount(t *testing.T) {
	// 每個位置輪流給 名稱+用量 / 只有名稱 / 只有用量 / 皆空
	var fields []string
	expected := 0
	for i := 1; i <= IngredientSlots; i++ {
		switch i % 4 {
		case 0:
			fields = append(fields, fmt.Sprintf(`"strIngredient%d": "n%d", "strMeasure%d": "m%d"`, i, i, i, i))
			expected++
		case 1:
			fields = append(fields, fmt.Sprintf(`"strIngredient%d": "n%d", "strMeasure%d": null`, i, i, i))
		case 2:
			fields = append(fields, fmt.Sprintf(`"strIngredient%d": "", "strMeasure%d": "m%d"`, i, i, i))
		case 3:
			fields = append(fields, fmt.Sprintf(`"strIngredient%d": "", "strMeasure%d": ""`, i, i))
		}
	}
	raw := decodeMeal(t, `{"idMeal": "1", "strMeal": "a", `+strings.Join(fields, ",")+`}`)

	ingredients := Normalize(raw).Ingredients

	require.Len(t, ingredients, expected)
	for i, ing := range ingredients {
		pos := (i + 1) * 4
		assert.Equal(t, fmt.Sprintf("n%d", pos), ing.Name)
		assert.Equal(t, fmt.Sprintf("m%d", pos), ing.Amount)
	}
}

func TestNormalizeSummary(t *testing.T) {
	t.Run("Should map a complete entry", func(t *testing.T) {
		summary, ok := NormalizeSummary(RawSummary{
			ID:        strPtr("1234"),
			Name:      strPtr("Apple Pie"),
			Thumbnail: strPtr("https://www.themealdb.com/images/media/meals/applepie.jpg"),
		})

		require.True(t, ok)
		assert.Equal(t, "1234", summary.ID)
		assert.Equal(t, "Apple Pie", summary.Name)
		assert.Equal(t, strPtr("https://www.themealdb.com/images/media/meals/applepie.jpg"), summary.ThumbnailURL)
	})

	t.Run("Should keep a missing thumbnail absent", func(t *testing.T) {
		summary, ok := NormalizeSummary(RawSummary{ID: strPtr("1"), Name: strPtr("Pie")})

		require.True(t, ok)
		assert.Nil(t, summary.ThumbnailURL)
	})

	t.Run("Should reject empty id or name", func(t *testing.T) {
		_, ok := NormalizeSummary(RawSummary{ID: strPtr(""), Name: strPtr("Pie")})
		assert.False(t, ok)

		_, ok = NormalizeSummary(RawSummary{ID: strPtr("1"), Name: strPtr("")})
		assert.False(t, ok)

		_, ok = NormalizeSummary(RawSummary{})
		assert.False(t, ok)
	})
}
