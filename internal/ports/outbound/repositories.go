// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/kalehq/kale/internal/domain/catalog"
)

// CatalogRepository defines read access to the recipe and ingredient
// catalog. The planner consumes a fully loaded snapshot; there is no
// lazy loading inside a generation.
type CatalogRepository interface {
	// ListRecipesWithIngredients returns every recipe with its ordered
	// ingredient usages and the referenced ingredient data attached.
	ListRecipesWithIngredients(ctx context.Context) ([]catalog.Recipe, error)

	// ListIngredients returns every catalog ingredient.
	ListIngredients(ctx context.Context) ([]catalog.Ingredient, error)
}
