package mealdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientGetDecodesMeals(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strTags":null,"strIngredient1":"soy sauce","strMeasure1":"3/4 cup"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/json/v1/1/", time.Second)
	var resp MealsResponse
	if err := client.Get(context.Background(), "/search.php?s=chicken%20curry", &resp); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if gotPath != "/api/json/v1/1/search.php" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotQuery != "s=chicken%20curry" {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
	if len(resp.Meals) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(resp.Meals))
	}
	meal := resp.Meals[0]
	if meal.ID != "52772" || meal.Name != "Teriyaki Chicken Casserole" {
		t.Fatalf("unexpected meal: %+v", meal)
	}
	if meal.Tags != "" {
		t.Fatalf("expected null tags to decode empty, got %q", meal.Tags)
	}
	if meal.Ingredients[0] != (IngredientSlot{Ingredient: "soy sauce", Measure: "3/4 cup"}) {
		t.Fatalf("unexpected first slot: %+v", meal.Ingredients[0])
	}
}

func TestClientGetNonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewClient(server.URL, 0).Get(context.Background(), "/random.php", &MealsResponse{})
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if netErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status code: %d", netErr.StatusCode)
	}
	if err.Error() != "failed to fetch from MealDB: HTTP error! status: 503" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestClientGetMalformedJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	err := NewClient(server.URL, 0).Get(context.Background(), "/categories.php", &CategoriesResponse{})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(err.Error(), "failed to fetch from MealDB: ") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestClientGetTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewClient(url, time.Second).Get(context.Background(), "/random.php", &MealsResponse{})
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if netErr.StatusCode != 0 {
		t.Fatalf("expected no status code, got %d", netErr.StatusCode)
	}
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient("  ", 0)
	if client.BaseURL() != "https://www.themealdb.com/api/json/v1/1" {
		t.Fatalf("unexpected base URL: %s", client.BaseURL())
	}
}
