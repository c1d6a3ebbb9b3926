package tools

import (
	"context"
	"fmt"

	"github.com/mwiater/mealdb/internal/mealdb"
)

type mealDetail struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	Instructions string   `json:"instructions"`
	Thumbnail    string   `json:"thumbnail"`
	Tags         string   `json:"tags"`
	YouTube      string   `json:"youtube"`
	Ingredients  []string `json:"ingredients"`
}

type detailPayload struct {
	Message string     `json:"message"`
	Meal    mealDetail `json:"meal"`
}

// MealDetailsDefinition describes the lookup-by-id tool.
func MealDetailsDefinition() Definition {
	return Definition{
		Name:        MealDetailsName,
		Description: "Get detailed information about a specific meal by ID",
		InputSchema: objectSchema(map[string]Property{
			"mealId": {Type: "string", Description: "The ID of the meal to get details for"},
		}, "mealId"),
	}
}

// RandomMealDefinition describes the random suggestion tool.
func RandomMealDefinition() Definition {
	return Definition{
		Name:        RandomMealName,
		Description: "Get a random meal suggestion",
		InputSchema: noArgumentSchema(),
	}
}

// MealDetails returns the full recipe for one meal id.
func MealDetails(ctx context.Context, fetcher mealdb.Fetcher, args map[string]string) (Outcome, error) {
	mealID := args["mealId"]
	endpoint, err := BuildEndpoint(MealDetailsName, args)
	if err != nil {
		return Outcome{}, err
	}

	var resp mealdb.MealsResponse
	if err := fetcher.Get(ctx, endpoint, &resp); err != nil {
		return Outcome{}, err
	}
	if len(resp.Meals) == 0 {
		return notFound(fmt.Sprintf("No meal found with ID: %s", mealID)), nil
	}
	meal := resp.Meals[0]
	return renderDetail(fmt.Sprintf("Meal details for \"%s\"", meal.Name), meal)
}

// RandomMeal returns the full recipe for one randomly chosen meal.
func RandomMeal(ctx context.Context, fetcher mealdb.Fetcher, args map[string]string) (Outcome, error) {
	endpoint, err := BuildEndpoint(RandomMealName, args)
	if err != nil {
		return Outcome{}, err
	}

	var resp mealdb.MealsResponse
	if err := fetcher.Get(ctx, endpoint, &resp); err != nil {
		return Outcome{}, err
	}
	if len(resp.Meals) == 0 {
		return notFound("No random meal found"), nil
	}
	meal := resp.Meals[0]
	return renderDetail(fmt.Sprintf("Random meal suggestion: \"%s\"", meal.Name), meal)
}

func renderDetail(message string, meal mealdb.Meal) (Outcome, error) {
	text, err := renderJSON(detailPayload{
		Message: message,
		Meal:    projectDetail(meal),
	})
	if err != nil {
		return Outcome{}, err
	}
	return textOutcome(text), nil
}

func projectDetail(meal mealdb.Meal) mealDetail {
	return mealDetail{
		ID:           meal.ID,
		Name:         meal.Name,
		Category:     meal.Category,
		Area:         meal.Area,
		Instructions: meal.Instructions,
		Thumbnail:    meal.Thumbnail,
		Tags:         orDefault(meal.Tags, "No tags"),
		YouTube:      orDefault(meal.YouTube, "No video available"),
		Ingredients:  mealdb.ExtractIngredients(meal),
	}
}
