package planner

import (
	"github.com/google/uuid"
	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// MealPlan is the full weekly plan. It is transient output, recomputed on
// every generate or regenerate call.
type MealPlan struct {
	ID                 uuid.UUID
	Days               []MealPlanDay
	Snacks             []MealSlot
	ShoppingList       []ShoppingListItem
	EstimatedTotalCost decimal.Decimal
	DailyNutrients     []DailyNutrientSummary
	Targets            NutrientTargets
}

// MealPlanDay holds one day's breakfast and dinner assignments.
type MealPlanDay struct {
	DayOfWeek string
	Breakfast MealSlot
	Dinner    MealSlot
}

// MealSlot is one meal assignment. An empty pool produces a placeholder
// slot with a zero recipe id rather than an absent value.
type MealSlot struct {
	RecipeID            uint
	RecipeName          string
	Servings            int
	PrepTimeMinutes     int
	CookTimeMinutes     int
	Ingredients         []MealIngredient
	Instructions        string
	NutrientsPerServing catalog.NutrientProfile
}

// MealIngredient is a display-quantity line within a meal slot.
type MealIngredient struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string
}

// ShoppingListItem is one aggregated purchase line.
type ShoppingListItem struct {
	IngredientName string
	TotalQuantity  decimal.Decimal
	Unit           string
	EstimatedCost  decimal.Decimal
}

// DailyNutrientSummary is the per-person macro rollup for one day.
// Micronutrients are intentionally excluded from the daily view.
type DailyNutrientSummary struct {
	DayOfWeek     string
	TotalCalories decimal.Decimal
	TotalProteinG decimal.Decimal
	TotalCarbsG   decimal.Decimal
	TotalFatG     decimal.Decimal
	TotalFiberG   decimal.Decimal
}

// NutrientTargets is the aggregate daily calorie and macro target for the
// whole household. Targets are attached to the plan but do not constrain
// recipe selection.
type NutrientTargets struct {
	TotalDailyCalories decimal.Decimal
	TotalDailyProteinG decimal.Decimal
	TotalDailyCarbsG   decimal.Decimal
	TotalDailyFatG     decimal.Decimal
}
