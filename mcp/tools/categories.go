package tools

import (
	"context"
	"fmt"

	"github.com/mwiater/mealdb/internal/mealdb"
	"github.com/mwiater/mealdb/internal/util"
)

const (
	// categoryDescriptionLimit is counted in characters (runes), not bytes.
	categoryDescriptionLimit = 100
	ellipsis                 = "..."
)

type categorySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

type categoriesPayload struct {
	Message    string            `json:"message"`
	Categories []categorySummary `json:"categories"`
}

// ListCategoriesDefinition describes the category listing tool.
func ListCategoriesDefinition() Definition {
	return Definition{
		Name:        ListCategoriesName,
		Description: "Get all meal categories",
		InputSchema: noArgumentSchema(),
	}
}

// ListCategories returns every category with a shortened description.
func ListCategories(ctx context.Context, fetcher mealdb.Fetcher, args map[string]string) (Outcome, error) {
	endpoint, err := BuildEndpoint(ListCategoriesName, args)
	if err != nil {
		return Outcome{}, err
	}

	var resp mealdb.CategoriesResponse
	if err := fetcher.Get(ctx, endpoint, &resp); err != nil {
		return Outcome{}, err
	}
	return transformCategories(resp)
}

func transformCategories(resp mealdb.CategoriesResponse) (Outcome, error) {
	if resp.Categories == nil {
		return Outcome{}, &mealdb.ParseError{Err: fmt.Errorf("%w: missing categories", mealdb.ErrUnexpectedShape)}
	}

	categories := make([]categorySummary, 0, len(resp.Categories))
	for _, cat := range resp.Categories {
		categories = append(categories, categorySummary{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: truncateDescription(cat.Description),
			Thumbnail:   cat.Thumbnail,
		})
	}

	text, err := renderJSON(categoriesPayload{
		Message:    fmt.Sprintf("Found %d meal categories", len(categories)),
		Categories: categories,
	})
	if err != nil {
		return Outcome{}, err
	}
	return textOutcome(text), nil
}

// truncateDescription keeps the first 100 characters and always appends the
// ellipsis marker, even for shorter descriptions.
func truncateDescription(description string) string {
	return util.PrefixRunes(description, categoryDescriptionLimit) + ellipsis
}
