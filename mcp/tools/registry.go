package tools

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

type entry struct {
	def     Definition
	labels  map[string]string
	schema  *gojsonschema.Schema
	handler Handler
}

// Registry holds the tool definitions in discovery order.
type Registry struct {
	order   []string
	entries map[string]entry
}

// NewRegistry returns a registry holding the five MealDB tools.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}
	r.register(SearchMealsDefinition(), map[string]string{"query": "Query parameter"}, SearchMeals)
	r.register(MealDetailsDefinition(), map[string]string{"mealId": "Meal ID"}, MealDetails)
	r.register(RandomMealDefinition(), nil, RandomMeal)
	r.register(ListCategoriesDefinition(), nil, ListCategories)
	r.register(SearchByIngredientDefinition(), map[string]string{"ingredient": "Ingredient parameter"}, SearchByIngredient)
	return r
}

func (r *Registry) register(def Definition, labels map[string]string, handler Handler) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(def.InputSchema))
	if err != nil {
		panic(fmt.Sprintf("tool %s: invalid input schema: %v", def.Name, err))
	}
	r.order = append(r.order, def.Name)
	r.entries[def.Name] = entry{def: def, labels: labels, schema: schema, handler: handler}
}

// Definitions returns every tool definition in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.entries[name].def)
	}
	return defs
}

func (r *Registry) lookup(name string) (entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

func objectSchema(props map[string]Property, required ...string) InputSchema {
	if props == nil {
		props = map[string]Property{}
	}
	return InputSchema{Type: "object", Properties: props, Required: required}
}

func noArgumentSchema() InputSchema {
	closed := false
	schema := objectSchema(nil)
	schema.AdditionalProperties = &closed
	return schema
}
