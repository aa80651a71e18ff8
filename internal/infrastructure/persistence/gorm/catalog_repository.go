package gorm

import (
	"context"

	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/kalehq/kale/internal/ports/outbound"
	"gorm.io/gorm"
)

// CatalogRepository implements the catalog repository interface using GORM
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) outbound.CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListRecipesWithIngredients returns every recipe with its ingredient
// usages and referenced ingredient data, ordered by id. Usage order
// within a recipe follows insertion order.
func (r *CatalogRepository) ListRecipesWithIngredients(ctx context.Context) ([]catalog.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.id")
		}).
		Preload("Ingredients.Ingredient").
		Order("recipes.id").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]catalog.Recipe, 0, len(models))
	for _, m := range models {
		recipes = append(recipes, RecipeToDomain(m))
	}
	return recipes, nil
}

// ListIngredients returns every catalog ingredient ordered by id
func (r *CatalogRepository) ListIngredients(ctx context.Context) ([]catalog.Ingredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).Order("ingredients.id").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	ingredients := make([]catalog.Ingredient, 0, len(models))
	for _, m := range models {
		ingredients = append(ingredients, IngredientToDomain(m))
	}
	return ingredients, nil
}
