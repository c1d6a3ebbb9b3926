// Package tools exposes TheMealDB as MCP tools: the registry of definitions,
// argument validation, endpoint construction, response reshaping, and the
// dispatcher that turns every outcome into a protocol result.
package tools

import (
	"context"
	"strings"

	"github.com/mwiater/mealdb/internal/mealdb"
)

// Property describes one accepted argument.
type Property struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// InputSchema is the JSON-schema object describing a tool's arguments.
type InputSchema struct {
	Type                 string              `json:"type" yaml:"type"`
	Properties           map[string]Property `json:"properties" yaml:"properties"`
	Required             []string            `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *bool               `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}

// Definition describes the metadata the MCP server exposes for a tool.
type Definition struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	InputSchema InputSchema `json:"inputSchema" yaml:"inputSchema"`
}

// ContentPart represents a piece of data returned from a tool invocation.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallRequest is one tools/call invocation.
type CallRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Result is the protocol envelope returned for every call. NotFound is
// local metadata for renderers and is never serialized.
type Result struct {
	Content  []ContentPart `json:"content"`
	IsError  bool          `json:"isError,omitempty"`
	NotFound bool          `json:"-"`
}

// Text joins the text of every content part.
func (r Result) Text() string {
	texts := make([]string, 0, len(r.Content))
	for _, part := range r.Content {
		texts = append(texts, part.Text)
	}
	return strings.Join(texts, "\n")
}

// Outcome is a successful tool run. NotFound marks an informational empty
// result; it is still rendered with IsError false.
type Outcome struct {
	Text     string
	NotFound bool
}

// Handler executes a tool with its validated, string-coerced arguments.
type Handler func(ctx context.Context, fetcher mealdb.Fetcher, args map[string]string) (Outcome, error)

const (
	// SearchMealsName searches meals by name.
	SearchMealsName = "search_meals"
	// MealDetailsName looks up a single meal by id.
	MealDetailsName = "get_meal_details"
	// RandomMealName returns one random meal.
	RandomMealName = "get_random_meal"
	// ListCategoriesName lists every meal category.
	ListCategoriesName = "list_categories"
	// SearchByIngredientName filters meals by main ingredient.
	SearchByIngredientName = "search_by_ingredient"
)

func textOutcome(text string) Outcome { return Outcome{Text: text} }

func notFound(text string) Outcome { return Outcome{Text: text, NotFound: true} }
