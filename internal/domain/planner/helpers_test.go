package planner

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// testIngredient builds a gram-based ingredient with a flat nutrient
// profile of 100 kcal / 10 g protein per 100 g.
func testIngredient(id uint, name string) catalog.Ingredient {
	return catalog.Ingredient{
		ID:              id,
		Name:            name,
		Category:        "test",
		CostPerUnit:     dec("2.00"),
		Unit:            "g",
		DefaultQuantity: dec("500"),
		Nutrients: catalog.NutrientProfile{
			Calories: dec("100"),
			ProteinG: dec("10"),
			CarbsG:   dec("10"),
			FatG:     dec("5"),
			FiberG:   dec("2"),
		},
	}
}

// testRecipe builds a recipe with a single fixed 100 g usage of one
// uniquely named ingredient.
func testRecipe(id uint, mealType catalog.MealType) catalog.Recipe {
	ing := testIngredient(id+100, fmt.Sprintf("ingredient-%d", id))
	return catalog.Recipe{
		ID:           id,
		Name:         fmt.Sprintf("recipe-%d", id),
		MealType:     mealType,
		BaseServings: 2,
		Ingredients: []catalog.RecipeIngredient{
			{Ingredient: ing, Quantity: dec("100"), Unit: "g", Flexibility: catalog.FlexibilityBase},
		},
	}
}

func testRecipes(mealType catalog.MealType, ids ...uint) []catalog.Recipe {
	out := make([]catalog.Recipe, 0, len(ids))
	for _, id := range ids {
		out = append(out, testRecipe(id, mealType))
	}
	return out
}

// testMember builds a plausible adult with a fixed physiology so target
// math stays deterministic while names vary.
func testMember() HouseholdMember {
	return HouseholdMember{
		Name:          gofakeit.FirstName(),
		Age:           30,
		Sex:           "male",
		HeightCm:      dec("184"),
		WeightKg:      dec("80"),
		ActivityLevel: "moderate",
	}
}
