package inbound

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogService exposes read access to the recipe and ingredient catalog
type CatalogService interface {
	ListRecipes(ctx context.Context) ([]RecipeDTO, error)
	ListIngredients(ctx context.Context) ([]IngredientDTO, error)
}

// RecipeDTO is a catalog recipe with its ingredient usages
type RecipeDTO struct {
	ID              uint                  `json:"id"`
	Name            string                `json:"name"`
	MealType        string                `json:"mealType"`
	PrepTimeMinutes int                   `json:"prepTimeMinutes"`
	CookTimeMinutes int                   `json:"cookTimeMinutes"`
	BaseServings    int                   `json:"baseServings"`
	Instructions    string                `json:"instructions"`
	Tags            []string              `json:"tags"`
	Ingredients     []RecipeIngredientDTO `json:"ingredients"`
}

// RecipeIngredientDTO is one ingredient usage within a catalog recipe
type RecipeIngredientDTO struct {
	IngredientID   uint             `json:"ingredientId"`
	IngredientName string           `json:"ingredientName"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Unit           string           `json:"unit"`
	Flexibility    string           `json:"flexibilityType"`
	MinQuantity    *decimal.Decimal `json:"minQuantity,omitempty"`
	MaxQuantity    *decimal.Decimal `json:"maxQuantity,omitempty"`
}

// IngredientDTO is a catalog ingredient with its nutrient profile
type IngredientDTO struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	CostPerUnit     decimal.Decimal `json:"costPerUnit"`
	Unit            string          `json:"unit"`
	DefaultQuantity decimal.Decimal `json:"defaultQuantity"`
	Nutrients       NutrientInfoDTO `json:"nutrients"`
}
