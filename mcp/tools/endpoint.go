package tools

import (
	"net/url"
	"strings"
)

// BuildEndpoint maps a tool and its validated arguments to a MealDB API
// path. Query values are percent-encoded, with spaces as %20.
func BuildEndpoint(name string, args map[string]string) (string, error) {
	switch name {
	case SearchMealsName:
		return "/search.php?s=" + encodeQueryValue(args["query"]), nil
	case MealDetailsName:
		return "/lookup.php?i=" + encodeQueryValue(args["mealId"]), nil
	case RandomMealName:
		return "/random.php", nil
	case ListCategoriesName:
		return "/categories.php", nil
	case SearchByIngredientName:
		return "/filter.php?i=" + encodeQueryValue(args["ingredient"]), nil
	default:
		return "", &UnknownToolError{Name: name}
	}
}

func encodeQueryValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
