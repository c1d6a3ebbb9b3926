package mealdb

import "strings"

// ExtractIngredients returns "<measure> <ingredient>" lines in slot order.
// Slots without an ingredient are skipped, and a missing measure leaves no
// leading space.
func ExtractIngredients(meal Meal) []string {
	ingredients := make([]string, 0, MaxIngredients)
	for _, slot := range meal.Ingredients {
		name := strings.TrimSpace(slot.Ingredient)
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(slot.Measure)
		ingredients = append(ingredients, strings.TrimSpace(measure+" "+name))
	}
	return ingredients
}
