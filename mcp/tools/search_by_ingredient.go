package tools

import (
	"context"
	"fmt"

	"github.com/mwiater/mealdb/internal/mealdb"
)

const (
	ingredientResultLimit = 15
	ingredientNote        = "Use get_meal_details with the meal ID to get full recipe details"
)

type ingredientMatch struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
}

type ingredientPayload struct {
	Message string            `json:"message"`
	Results []ingredientMatch `json:"results"`
	Note    string            `json:"note"`
}

// SearchByIngredientDefinition describes the ingredient filter tool.
func SearchByIngredientDefinition() Definition {
	return Definition{
		Name:        SearchByIngredientName,
		Description: "Find meals that contain a specific ingredient",
		InputSchema: objectSchema(map[string]Property{
			"ingredient": {Type: "string", Description: "Name of the ingredient to search for"},
		}, "ingredient"),
	}
}

// SearchByIngredient lists up to fifteen meals using an ingredient.
func SearchByIngredient(ctx context.Context, fetcher mealdb.Fetcher, args map[string]string) (Outcome, error) {
	ingredient := args["ingredient"]
	endpoint, err := BuildEndpoint(SearchByIngredientName, args)
	if err != nil {
		return Outcome{}, err
	}

	var resp mealdb.MealsResponse
	if err := fetcher.Get(ctx, endpoint, &resp); err != nil {
		return Outcome{}, err
	}
	return transformIngredientSearch(ingredient, resp)
}

func transformIngredientSearch(ingredient string, resp mealdb.MealsResponse) (Outcome, error) {
	if len(resp.Meals) == 0 {
		return notFound(fmt.Sprintf("No meals found containing \"%s\"", ingredient)), nil
	}

	shown := resp.Meals
	if len(shown) > ingredientResultLimit {
		shown = shown[:ingredientResultLimit]
	}
	results := make([]ingredientMatch, 0, len(shown))
	for _, meal := range shown {
		results = append(results, ingredientMatch{ID: meal.ID, Name: meal.Name, Thumbnail: meal.Thumbnail})
	}

	text, err := renderJSON(ingredientPayload{
		Message: fmt.Sprintf("Found %d meals containing \"%s\"", len(resp.Meals), ingredient),
		Results: results,
		Note:    ingredientNote,
	})
	if err != nil {
		return Outcome{}, err
	}
	return textOutcome(text), nil
}
