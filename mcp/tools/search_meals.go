package tools

import (
	"context"
	"fmt"

	"github.com/mwiater/mealdb/internal/mealdb"
)

// searchResultLimit caps how many meals a name search returns.
const searchResultLimit = 10

type mealSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Area      string `json:"area"`
	Thumbnail string `json:"thumbnail"`
	Tags      string `json:"tags"`
}

type searchPayload struct {
	Message string        `json:"message"`
	Results []mealSummary `json:"results"`
}

// SearchMealsDefinition describes the name search tool.
func SearchMealsDefinition() Definition {
	return Definition{
		Name:        SearchMealsName,
		Description: "Search for meals by name",
		InputSchema: objectSchema(map[string]Property{
			"query": {Type: "string", Description: "Name of the meal to search for"},
		}, "query"),
	}
}

// SearchMeals searches meals by name and returns up to ten summaries.
func SearchMeals(ctx context.Context, fetcher mealdb.Fetcher, args map[string]string) (Outcome, error) {
	query := args["query"]
	endpoint, err := BuildEndpoint(SearchMealsName, args)
	if err != nil {
		return Outcome{}, err
	}

	var resp mealdb.MealsResponse
	if err := fetcher.Get(ctx, endpoint, &resp); err != nil {
		return Outcome{}, err
	}
	return transformSearch(query, resp)
}

func transformSearch(query string, resp mealdb.MealsResponse) (Outcome, error) {
	if len(resp.Meals) == 0 {
		return notFound(fmt.Sprintf("No meals found for \"%s\"", query)), nil
	}

	shown := resp.Meals
	if len(shown) > searchResultLimit {
		shown = shown[:searchResultLimit]
	}
	results := make([]mealSummary, 0, len(shown))
	for _, meal := range shown {
		results = append(results, mealSummary{
			ID:        meal.ID,
			Name:      meal.Name,
			Category:  meal.Category,
			Area:      meal.Area,
			Thumbnail: meal.Thumbnail,
			Tags:      orDefault(meal.Tags, "No tags"),
		})
	}

	text, err := renderJSON(searchPayload{
		Message: fmt.Sprintf("Found %d meals for \"%s\"", len(resp.Meals), query),
		Results: results,
	})
	if err != nil {
		return Outcome{}, err
	}
	return textOutcome(text), nil
}
