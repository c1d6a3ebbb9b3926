package mealdb

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cast"
)

// MaxIngredients is the number of numbered ingredient/measure slots a meal record carries.
const MaxIngredients = 20

// IngredientSlot is one numbered ingredient/measure pair. Either side may be
// empty when the API sends null, an empty string, or omits the field.
type IngredientSlot struct {
	Ingredient string
	Measure    string
}

// Meal is a single recipe. Lookup, search, and random endpoints populate
// every field; the filter endpoint only sends ID, Name, and Thumbnail.
type Meal struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Instructions string
	Thumbnail    string
	Tags         string
	YouTube      string
	Ingredients  [MaxIngredients]IngredientSlot
}

// UnmarshalJSON reads the flat strIngredientN/strMeasureN fields into the
// ordered Ingredients array. Null or non-string values decode as strings
// where possible and as empty otherwise.
func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Meal{
		ID:           field(raw, "idMeal"),
		Name:         field(raw, "strMeal"),
		Category:     field(raw, "strCategory"),
		Area:         field(raw, "strArea"),
		Instructions: field(raw, "strInstructions"),
		Thumbnail:    field(raw, "strMealThumb"),
		Tags:         field(raw, "strTags"),
		YouTube:      field(raw, "strYoutube"),
	}
	for i := 0; i < MaxIngredients; i++ {
		n := strconv.Itoa(i + 1)
		m.Ingredients[i] = IngredientSlot{
			Ingredient: field(raw, "strIngredient"+n),
			Measure:    field(raw, "strMeasure"+n),
		}
	}
	return nil
}

func field(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// MealsResponse is the envelope returned by search, lookup, random, and filter.
// Meals is nil when the API reports no match ("meals": null).
type MealsResponse struct {
	Meals []Meal `json:"meals"`
}

// Category is one entry of the categories listing.
type Category struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Thumbnail   string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

// CategoriesResponse is the envelope returned by the categories endpoint.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}
