// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealPlanService defines the meal planning use cases
// This is the primary port that HTTP handlers and other driving adapters will use
type MealPlanService interface {
	// GenerateMealPlan builds a fresh weekly plan for the household.
	// It fails with a validation error when the member list is empty.
	GenerateMealPlan(ctx context.Context, cmd GenerateMealPlanCommand) (*MealPlanDTO, error)

	// RegenerateMealPlan reruns generation with the accumulated veto
	// list. The whole plan is recomputed, not patched.
	RegenerateMealPlan(ctx context.Context, cmd RegenerateMealPlanCommand) (*MealPlanDTO, error)
}

// GenerateMealPlanCommand contains the household input for generation
type GenerateMealPlanCommand struct {
	Members []HouseholdMemberCommand
}

// RegenerateMealPlanCommand adds the accumulated vetoes to the household input
type RegenerateMealPlanCommand struct {
	Members []HouseholdMemberCommand
	Vetoes  []VetoCommand
}

// HouseholdMemberCommand describes one household member
type HouseholdMemberCommand struct {
	Name          string
	Age           int
	Sex           string
	HeightCm      decimal.Decimal
	WeightKg      decimal.Decimal
	ActivityLevel string
	Allergies     []string
	Likes         []string
	Dislikes      []string
}

// VetoCommand rejects one recipe in one (day, meal type) slot
type VetoCommand struct {
	DayIndex int
	MealType string
	RecipeID uint
}

// MealPlanDTO is the generated weekly plan
type MealPlanDTO struct {
	ID                 uuid.UUID                  `json:"id"`
	Days               []MealPlanDayDTO           `json:"days"`
	Snacks             []MealSlotDTO              `json:"snacks"`
	ShoppingList       []ShoppingListItemDTO      `json:"shoppingList"`
	EstimatedTotalCost decimal.Decimal            `json:"estimatedTotalCost"`
	DailyNutrients     []DailyNutrientSummaryDTO  `json:"dailyNutrientSummary"`
	Targets            NutrientTargetsDTO         `json:"householdTargets"`
}

// MealPlanDayDTO is one day of the plan
type MealPlanDayDTO struct {
	DayOfWeek string      `json:"dayOfWeek"`
	Breakfast MealSlotDTO `json:"breakfast"`
	Dinner    MealSlotDTO `json:"dinner"`
}

// MealSlotDTO is one meal assignment; empty pools yield a placeholder
// slot with recipe id 0
type MealSlotDTO struct {
	RecipeID            uint                `json:"recipeId"`
	RecipeName          string              `json:"recipeName"`
	Servings            int                 `json:"servings"`
	PrepTimeMinutes     int                 `json:"prepTimeMinutes"`
	CookTimeMinutes     int                 `json:"cookTimeMinutes"`
	Ingredients         []MealIngredientDTO `json:"ingredients"`
	Instructions        string              `json:"instructions"`
	NutrientsPerServing NutrientInfoDTO     `json:"nutrientsPerServing"`
}

// MealIngredientDTO is one scaled ingredient line of a meal
type MealIngredientDTO struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// NutrientInfoDTO carries a full nutrient breakdown
type NutrientInfoDTO struct {
	Calories    decimal.Decimal `json:"calories"`
	ProteinG    decimal.Decimal `json:"proteinG"`
	CarbsG      decimal.Decimal `json:"carbsG"`
	FatG        decimal.Decimal `json:"fatG"`
	FiberG      decimal.Decimal `json:"fiberG"`
	VitaminAMcg decimal.Decimal `json:"vitaminAMcg"`
	VitaminCMg  decimal.Decimal `json:"vitaminCMg"`
	VitaminDMcg decimal.Decimal `json:"vitaminDMcg"`
	VitaminKMcg decimal.Decimal `json:"vitaminKMcg"`
	CalciumMg   decimal.Decimal `json:"calciumMg"`
	IronMg      decimal.Decimal `json:"ironMg"`
	PotassiumMg decimal.Decimal `json:"potassiumMg"`
	SodiumMg    decimal.Decimal `json:"sodiumMg"`
}

// ShoppingListItemDTO is one aggregated purchase line
type ShoppingListItemDTO struct {
	IngredientName string          `json:"ingredientName"`
	TotalQuantity  decimal.Decimal `json:"totalQuantity"`
	Unit           string          `json:"unit"`
	EstimatedCost  decimal.Decimal `json:"estimatedCost"`
}

// DailyNutrientSummaryDTO is the per-person macro rollup for one day
type DailyNutrientSummaryDTO struct {
	DayOfWeek     string          `json:"dayOfWeek"`
	TotalCalories decimal.Decimal `json:"totalCalories"`
	TotalProteinG decimal.Decimal `json:"totalProteinG"`
	TotalCarbsG   decimal.Decimal `json:"totalCarbsG"`
	TotalFatG     decimal.Decimal `json:"totalFatG"`
	TotalFiberG   decimal.Decimal `json:"totalFiberG"`
}

// NutrientTargetsDTO is the household's aggregate daily target. It is
// reported with the plan but never constrains selection.
type NutrientTargetsDTO struct {
	TotalDailyCalories decimal.Decimal `json:"totalDailyCalories"`
	TotalDailyProteinG decimal.Decimal `json:"totalDailyProteinG"`
	TotalDailyCarbsG   decimal.Decimal `json:"totalDailyCarbsG"`
	TotalDailyFatG     decimal.Decimal `json:"totalDailyFatG"`
}
