package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mwiater/mealdb/internal/mealdb"
)

type fakeFetcher struct {
	bodies map[string]string
	err    error
	calls  []string
}

func (f *fakeFetcher) Get(_ context.Context, endpoint string, out any) error {
	f.calls = append(f.calls, endpoint)
	if f.err != nil {
		return f.err
	}
	body, ok := f.bodies[endpoint]
	if !ok {
		body = `{"meals":null}`
	}
	return json.Unmarshal([]byte(body), out)
}

func mealsJSON(n int) string {
	meals := make([]map[string]any, 0, n)
	for i := 1; i <= n; i++ {
		meals = append(meals, map[string]any{
			"idMeal":       fmt.Sprintf("%d", 52000+i),
			"strMeal":      fmt.Sprintf("Meal %d", i),
			"strCategory":  "Chicken",
			"strArea":      "Japanese",
			"strMealThumb": fmt.Sprintf("https://example.test/%d.jpg", i),
			"strTags":      nil,
		})
	}
	data, _ := json.Marshal(map[string]any{"meals": meals})
	return string(data)
}

func call(t *testing.T, f *fakeFetcher, name string, args map[string]any) Result {
	t.Helper()
	return NewDispatcher(f).Call(context.Background(), CallRequest{Name: name, Arguments: args})
}

func TestCallUnknownTool(t *testing.T) {
	f := &fakeFetcher{}
	res := call(t, f, "make_sandwich", nil)
	if !res.IsError {
		t.Fatalf("expected isError for unknown tool")
	}
	if res.Text() != "Error: Unknown tool: make_sandwich" {
		t.Fatalf("unexpected text: %q", res.Text())
	}
	if len(f.calls) != 0 {
		t.Fatalf("unknown tool should not fetch, got %v", f.calls)
	}
}

func TestCallMissingRequiredArgumentSkipsFetch(t *testing.T) {
	cases := []struct {
		tool string
		args map[string]any
		want string
	}{
		{SearchMealsName, nil, "Error: Query parameter is required"},
		{SearchMealsName, map[string]any{"query": ""}, "Error: Query parameter is required"},
		{SearchMealsName, map[string]any{"query": nil}, "Error: Query parameter is required"},
		{MealDetailsName, map[string]any{}, "Error: Meal ID is required"},
		{SearchByIngredientName, map[string]any{"other": "x"}, "Error: Ingredient parameter is required"},
		{SearchByIngredientName, map[string]any{"ingredient": map[string]any{"a": 1}}, "Error: Ingredient parameter must be a string"},
	}
	for _, tc := range cases {
		f := &fakeFetcher{}
		res := call(t, f, tc.tool, tc.args)
		if !res.IsError {
			t.Fatalf("%s %v: expected isError", tc.tool, tc.args)
		}
		if res.Text() != tc.want {
			t.Fatalf("%s %v: got %q, want %q", tc.tool, tc.args, res.Text(), tc.want)
		}
		if len(f.calls) != 0 {
			t.Fatalf("%s: validation failure should not fetch, got %v", tc.tool, f.calls)
		}
		var vErr *ValidationError
		if _, err := NewDispatcher(f).run(context.Background(), CallRequest{Name: tc.tool, Arguments: tc.args}); !errors.As(err, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.tool, err)
		}
	}
}

func TestSearchMealsNoMatches(t *testing.T) {
	f := &fakeFetcher{}
	res := call(t, f, SearchMealsName, map[string]any{"query": "xyzzy"})
	if res.IsError {
		t.Fatalf("not found must not be an error: %q", res.Text())
	}
	if res.Text() != `No meals found for "xyzzy"` {
		t.Fatalf("unexpected text: %q", res.Text())
	}
	if len(f.calls) != 1 || f.calls[0] != "/search.php?s=xyzzy" {
		t.Fatalf("unexpected calls: %v", f.calls)
	}
}

func TestSearchMealsTruncatesButReportsTotal(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"/search.php?s=chicken%20curry": mealsJSON(25)}}
	res := call(t, f, SearchMealsName, map[string]any{"query": "chicken curry"})
	if res.IsError {
		t.Fatalf("unexpected error: %q", res.Text())
	}

	var payload searchPayload
	if err := json.Unmarshal([]byte(res.Text()), &payload); err != nil {
		t.Fatalf("invalid json payload: %v", err)
	}
	if payload.Message != `Found 25 meals for "chicken curry"` {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
	if len(payload.Results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(payload.Results))
	}
	first := payload.Results[0]
	if first.ID != "52001" || first.Name != "Meal 1" || first.Tags != "No tags" || first.Area != "Japanese" {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if !strings.Contains(res.Text(), "\n  \"message\"") {
		t.Fatalf("expected two-space indented JSON, got %q", res.Text())
	}
}

func TestMealDetailsNotFound(t *testing.T) {
	f := &fakeFetcher{}
	res := call(t, f, MealDetailsName, map[string]any{"mealId": "99999999"})
	if res.IsError {
		t.Fatalf("not found must not be an error")
	}
	if res.Text() != "No meal found with ID: 99999999" {
		t.Fatalf("unexpected text: %q", res.Text())
	}
}

func TestMealDetailsProjectsMeal(t *testing.T) {
	body := `{"meals":[{
		"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strCategory":"Chicken","strArea":"Japanese",
		"strInstructions":"Preheat oven.","strMealThumb":"https://example.test/t.jpg","strTags":"Meat,Casserole",
		"strYoutube":"",
		"strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
		"strIngredient2":"","strMeasure2":"",
		"strIngredient3":"Salt","strMeasure3":null
	}]}`
	f := &fakeFetcher{bodies: map[string]string{"/lookup.php?i=52772": body}}
	res := call(t, f, MealDetailsName, map[string]any{"mealId": float64(52772)})
	if res.IsError {
		t.Fatalf("unexpected error: %q", res.Text())
	}

	var payload detailPayload
	if err := json.Unmarshal([]byte(res.Text()), &payload); err != nil {
		t.Fatalf("invalid json payload: %v", err)
	}
	if payload.Message != `Meal details for "Teriyaki Chicken Casserole"` {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
	meal := payload.Meal
	if meal.Tags != "Meat,Casserole" || meal.YouTube != "No video available" || meal.Instructions != "Preheat oven." {
		t.Fatalf("unexpected meal: %+v", meal)
	}
	if len(meal.Ingredients) != 2 || meal.Ingredients[0] != "3/4 cup soy sauce" || meal.Ingredients[1] != "Salt" {
		t.Fatalf("unexpected ingredients: %q", meal.Ingredients)
	}
}

func TestRandomMeal(t *testing.T) {
	body := `{"meals":[{"idMeal":"1","strMeal":"Soup","strTags":null,"strYoutube":"https://youtube.test/x"}]}`
	f := &fakeFetcher{bodies: map[string]string{"/random.php": body}}
	res := call(t, f, RandomMealName, map[string]any{"ignored": true})
	if res.IsError {
		t.Fatalf("unexpected error: %q", res.Text())
	}
	var payload detailPayload
	if err := json.Unmarshal([]byte(res.Text()), &payload); err != nil {
		t.Fatalf("invalid json payload: %v", err)
	}
	if payload.Message != `Random meal suggestion: "Soup"` {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
	if payload.Meal.Tags != "No tags" || payload.Meal.YouTube != "https://youtube.test/x" {
		t.Fatalf("unexpected meal: %+v", payload.Meal)
	}
	if payload.Meal.Ingredients == nil {
		t.Fatalf("ingredients should render as an empty array, not null")
	}

	empty := call(t, &fakeFetcher{}, RandomMealName, nil)
	if empty.IsError || empty.Text() != "No random meal found" {
		t.Fatalf("unexpected empty random result: %+v", empty)
	}
}

func TestListCategoriesTruncatesDescriptions(t *testing.T) {
	long := strings.Repeat("a", 150)
	body := fmt.Sprintf(`{"categories":[
		{"idCategory":"1","strCategory":"Beef","strCategoryThumb":"https://example.test/beef.png","strCategoryDescription":%q},
		{"idCategory":"2","strCategory":"Dessert","strCategoryThumb":"https://example.test/d.png","strCategoryDescription":"Sweet."}
	]}`, long)
	f := &fakeFetcher{bodies: map[string]string{"/categories.php": body}}
	res := call(t, f, ListCategoriesName, nil)
	if res.IsError {
		t.Fatalf("unexpected error: %q", res.Text())
	}

	var payload categoriesPayload
	if err := json.Unmarshal([]byte(res.Text()), &payload); err != nil {
		t.Fatalf("invalid json payload: %v", err)
	}
	if payload.Message != "Found 2 meal categories" || len(payload.Categories) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if got := payload.Categories[0].Description; got != strings.Repeat("a", 100)+"..." || len(got) != 103 {
		t.Fatalf("unexpected truncated description (%d chars): %q", len(got), got)
	}
	if got := payload.Categories[1].Description; got != "Sweet...." {
		t.Fatalf("unexpected short description: %q", got)
	}
}

func TestTruncateDescriptionCountsCharacters(t *testing.T) {
	got := truncateDescription(strings.Repeat("é", 120))
	if want := strings.Repeat("é", 100) + "..."; got != want {
		t.Fatalf("expected rune-based truncation, got %q", got)
	}
}

func TestListCategoriesMissingCollection(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"/categories.php": `{}`}}
	res := call(t, f, ListCategoriesName, nil)
	if !res.IsError {
		t.Fatalf("expected isError for malformed categories response")
	}
	if !strings.HasPrefix(res.Text(), "Error: failed to fetch from MealDB: unexpected response shape") {
		t.Fatalf("unexpected text: %q", res.Text())
	}
}

func TestSearchByIngredient(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"/filter.php?i=chicken%20breast": mealsJSON(20)}}
	res := call(t, f, SearchByIngredientName, map[string]any{"ingredient": "chicken breast"})
	if res.IsError {
		t.Fatalf("unexpected error: %q", res.Text())
	}
	var payload ingredientPayload
	if err := json.Unmarshal([]byte(res.Text()), &payload); err != nil {
		t.Fatalf("invalid json payload: %v", err)
	}
	if payload.Message != `Found 20 meals containing "chicken breast"` {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
	if len(payload.Results) != 15 {
		t.Fatalf("expected 15 results, got %d", len(payload.Results))
	}
	if payload.Note != "Use get_meal_details with the meal ID to get full recipe details" {
		t.Fatalf("unexpected note: %q", payload.Note)
	}

	none := call(t, &fakeFetcher{}, SearchByIngredientName, map[string]any{"ingredient": "unobtainium"})
	if none.IsError || none.Text() != `No meals found containing "unobtainium"` {
		t.Fatalf("unexpected not-found result: %+v", none)
	}
}

func TestCallFetchFailureBecomesErrorResult(t *testing.T) {
	f := &fakeFetcher{err: &mealdb.NetworkError{StatusCode: 500, Err: errors.New("HTTP error! status: 500")}}
	res := call(t, f, SearchMealsName, map[string]any{"query": "pie"})
	if !res.IsError {
		t.Fatalf("expected isError")
	}
	if res.Text() != "Error: failed to fetch from MealDB: HTTP error! status: 500" {
		t.Fatalf("unexpected text: %q", res.Text())
	}
	if len(res.Content) != 1 || res.Content[0].Type != "text" {
		t.Fatalf("expected a single text block, got %+v", res.Content)
	}
}

func TestCallRecoversFromHandlerPanic(t *testing.T) {
	d := NewDispatcher(nil)
	res := d.Call(context.Background(), CallRequest{Name: RandomMealName})
	if !res.IsError {
		t.Fatalf("expected isError after panic")
	}
	if !strings.HasPrefix(res.Text(), "Error: tool get_random_meal failed") {
		t.Fatalf("unexpected text: %q", res.Text())
	}
}

func TestNotFoundIsMarkedButNotSerialized(t *testing.T) {
	res := call(t, &fakeFetcher{}, MealDetailsName, map[string]any{"mealId": "1"})
	if !res.NotFound || res.IsError {
		t.Fatalf("expected not-found marker without error, got %+v", res)
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "NotFound") || strings.Contains(string(data), "isError") {
		t.Fatalf("unexpected envelope fields: %s", data)
	}
}
