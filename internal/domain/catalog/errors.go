package catalog

import "errors"

// Domain errors for catalog entities

var (
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNegativeNutrients      = errors.New("nutrient values cannot be negative")

	ErrRecipeNameRequired  = errors.New("recipe name is required")
	ErrInvalidMealType     = errors.New("meal type must be breakfast, dinner or snack")
	ErrInvalidBaseServings = errors.New("base servings must be greater than 0")

	ErrInvalidFlexibility    = errors.New("flexibility must be base, flexible or addition")
	ErrMissingFlexibleBounds = errors.New("flexible ingredients require both min and max quantities")
	ErrInvalidFlexibleBounds = errors.New("flexible min quantity must not exceed max quantity")
)
