// Package catalog contains the read-only recipe and ingredient catalog
// entities the planner consumes. The catalog is owned by the persistence
// layer; the planner never mutates it.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Ingredient is a purchasable ingredient with a fixed nutrient profile.
// Nutrients are stored per 100 units of Unit (100 g or 100 ml). For
// "each" ingredients the profile is still per-100-gram-equivalent and is
// converted through an estimated per-item weight at aggregation time.
type Ingredient struct {
	ID              uint
	Name            string
	Category        string
	CostPerUnit     decimal.Decimal
	Unit            string
	DefaultQuantity decimal.Decimal
	Nutrients       NutrientProfile
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return ErrIngredientNameRequired
	}
	if i.Nutrients.hasNegative() {
		return ErrNegativeNutrients
	}
	return nil
}

// RecipeIngredient is one ingredient usage within a recipe, carrying the
// quantity, unit label and flexibility classification.
type RecipeIngredient struct {
	Ingredient  Ingredient
	Quantity    decimal.Decimal
	Unit        string
	Flexibility Flexibility
	MinQuantity *decimal.Decimal
	MaxQuantity *decimal.Decimal
}

// Validate validates the recipe ingredient
func (ri RecipeIngredient) Validate() error {
	if !ri.Flexibility.IsValid() {
		return ErrInvalidFlexibility
	}
	if ri.Flexibility == FlexibilityFlexible {
		if ri.MinQuantity == nil || ri.MaxQuantity == nil {
			return ErrMissingFlexibleBounds
		}
		if ri.MinQuantity.GreaterThan(*ri.MaxQuantity) {
			return ErrInvalidFlexibleBounds
		}
	}
	return nil
}

// Recipe is a catalog recipe with its ordered ingredient usages.
type Recipe struct {
	ID              uint
	Name            string
	MealType        MealType
	PrepTimeMinutes int
	CookTimeMinutes int
	BaseServings    int
	Instructions    string
	Tags            []string
	Ingredients     []RecipeIngredient
}

// Validate validates the recipe and all of its ingredient usages
func (r Recipe) Validate() error {
	if r.Name == "" {
		return ErrRecipeNameRequired
	}
	if !r.MealType.IsValid() {
		return ErrInvalidMealType
	}
	if r.BaseServings <= 0 {
		return ErrInvalidBaseServings
	}
	for _, ri := range r.Ingredients {
		if err := ri.Validate(); err != nil {
			return err
		}
	}
	return nil
}
