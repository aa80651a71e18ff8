// Package planner implements weekly meal plan generation over a catalog
// snapshot. Generation is a pure function of (catalog, members, vetoes):
// all selector and aggregation state is local to a single call, so
// concurrent generations are fully isolated.
package planner

import (
	"github.com/google/uuid"
	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// daysOfWeek is the fixed plan horizon. The plan is not calendar-aware;
// day 0 is always Monday.
var daysOfWeek = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// maxSnacks caps the number of snack slots per plan.
const maxSnacks = 3

// dinnerLeftoverFactor doubles dinner servings so leftovers cover the
// next day's lunch.
const dinnerLeftoverFactor = 2

// HouseholdMember describes one member of the household. Members are
// transient input; they are never persisted.
type HouseholdMember struct {
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

// Veto marks a (day, meal type) slot whose recipe the household rejected.
// Vetoed recipe ids accumulate across regenerations and are excluded from
// the vetoed slot on every subsequent run.
type Veto struct {
	DayIndex int
	MealType catalog.MealType
	RecipeID uint
}

// GeneratePlan builds a full weekly plan from the catalog snapshot.
// Regeneration is the same computation with the accumulated veto list;
// the plan is recomputed from scratch, never patched.
func GeneratePlan(recipes []catalog.Recipe, members []HouseholdMember, vetoes []Veto) MealPlan {
	targets := CalculateHouseholdTargets(members)
	householdSize := len(members)

	allergens := collectKeywords(members, func(m HouseholdMember) []string { return m.Allergies })
	dislikes := collectKeywords(members, func(m HouseholdMember) []string { return m.Dislikes })
	safe := filterSafeRecipes(recipes, allergens, dislikes)

	breakfasts := recipesOfType(safe, catalog.MealTypeBreakfast)
	dinners := recipesOfType(safe, catalog.MealTypeDinner)
	snackPool := recipesOfType(safe, catalog.MealTypeSnack)

	vetoedIDs := make(map[uint]struct{})
	for _, v := range vetoes {
		if v.RecipeID > 0 {
			vetoedIDs[v.RecipeID] = struct{}{}
		}
	}

	usedBreakfasts := make(map[uint]struct{})
	usedDinners := make(map[uint]struct{})
	shopping := newShoppingAggregator()

	days := make([]MealPlanDay, 0, len(daysOfWeek))
	dailyNutrients := make([]DailyNutrientSummary, 0, len(daysOfWeek))

	for dayIndex, dayName := range daysOfWeek {
		breakfastVetoed := slotVetoed(vetoes, dayIndex, catalog.MealTypeBreakfast)
		dinnerVetoed := slotVetoed(vetoes, dayIndex, catalog.MealTypeDinner)

		var breakfastExclusions, dinnerExclusions map[uint]struct{}
		if breakfastVetoed {
			breakfastExclusions = vetoedIDs
		}
		if dinnerVetoed {
			dinnerExclusions = vetoedIDs
		}

		breakfast := pickRecipe(breakfasts, usedBreakfasts, breakfastExclusions)
		if breakfast != nil {
			usedBreakfasts[breakfast.ID] = struct{}{}
		}
		dinner := pickRecipe(dinners, usedDinners, dinnerExclusions)
		if dinner != nil {
			usedDinners[dinner.ID] = struct{}{}
		}

		breakfastSlot := buildMealSlot(breakfast, householdSize, shopping)
		dinnerSlot := buildMealSlot(dinner, householdSize*dinnerLeftoverFactor, shopping)

		// Per person: breakfast plus dinner counted twice, the second
		// serving standing in for next-day lunch leftovers.
		two := decimal.NewFromInt(2)
		dailyNutrients = append(dailyNutrients, DailyNutrientSummary{
			DayOfWeek:     dayName,
			TotalCalories: breakfastSlot.NutrientsPerServing.Calories.Add(dinnerSlot.NutrientsPerServing.Calories.Mul(two)),
			TotalProteinG: breakfastSlot.NutrientsPerServing.ProteinG.Add(dinnerSlot.NutrientsPerServing.ProteinG.Mul(two)),
			TotalCarbsG:   breakfastSlot.NutrientsPerServing.CarbsG.Add(dinnerSlot.NutrientsPerServing.CarbsG.Mul(two)),
			TotalFatG:     breakfastSlot.NutrientsPerServing.FatG.Add(dinnerSlot.NutrientsPerServing.FatG.Mul(two)),
			TotalFiberG:   breakfastSlot.NutrientsPerServing.FiberG.Add(dinnerSlot.NutrientsPerServing.FiberG.Mul(two)),
		})

		days = append(days, MealPlanDay{
			DayOfWeek: dayName,
			Breakfast: breakfastSlot,
			Dinner:    dinnerSlot,
		})
	}

	// Snacks are picked without veto exclusions.
	usedSnacks := make(map[uint]struct{})
	snackCount := len(snackPool)
	if snackCount > maxSnacks {
		snackCount = maxSnacks
	}
	snacks := make([]MealSlot, 0, snackCount)
	for i := 0; i < snackCount; i++ {
		snack := pickRecipe(snackPool, usedSnacks, nil)
		if snack == nil {
			continue
		}
		usedSnacks[snack.ID] = struct{}{}
		snacks = append(snacks, buildMealSlot(snack, householdSize*2, shopping))
	}

	shoppingList, totalCost := shopping.buildList()

	return MealPlan{
		ID:                 uuid.New(),
		Days:               days,
		Snacks:             snacks,
		ShoppingList:       shoppingList,
		EstimatedTotalCost: totalCost,
		DailyNutrients:     dailyNutrients,
		Targets:            targets,
	}
}

func recipesOfType(recipes []catalog.Recipe, mealType catalog.MealType) []catalog.Recipe {
	var out []catalog.Recipe
	for _, r := range recipes {
		if r.MealType == mealType {
			out = append(out, r)
		}
	}
	return out
}

func slotVetoed(vetoes []Veto, dayIndex int, mealType catalog.MealType) bool {
	for _, v := range vetoes {
		if v.DayIndex == dayIndex && equalFoldMealType(v.MealType, mealType) {
			return true
		}
	}
	return false
}
