package planner

import (
	"strings"

	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// flexibleRangeShare positions flexible quantities 70% into their scaled
// range, a fixed heuristic nudging toward nutrient sufficiency without
// solving an optimization.
var flexibleRangeShare = decimal.RequireFromString("0.7")

var oneHundred = decimal.NewFromInt(100)

// Rough per-item weights in grams for "each"-unit ingredients, keyed by
// lowercased name. Anything else estimates 100 g.
var eachUnitWeightsG = map[string]decimal.Decimal{
	"eggs":   decimal.NewFromInt(50),
	"lemons": decimal.NewFromInt(60),
}

var defaultEachUnitWeightG = decimal.NewFromInt(100)

const emptySlotName = "No recipe available"

// buildMealSlot scales a recipe to the target serving count, aggregates
// its nutrients and feeds display quantities into the shopping
// aggregator. A nil recipe yields an explicit placeholder slot.
func buildMealSlot(recipe *catalog.Recipe, targetServings int, shopping *shoppingAggregator) MealSlot {
	if recipe == nil {
		return emptyMealSlot()
	}

	scaleFactor := decimal.NewFromInt(int64(targetServings)).Div(decimal.NewFromInt(int64(recipe.BaseServings)))

	ingredients := make([]MealIngredient, 0, len(recipe.Ingredients))
	var totals catalog.NutrientProfile

	for _, ri := range recipe.Ingredients {
		quantity := ri.Quantity.Mul(scaleFactor)

		if ri.Flexibility == catalog.FlexibilityFlexible && ri.MinQuantity != nil && ri.MaxQuantity != nil {
			minScaled := ri.MinQuantity.Mul(scaleFactor)
			maxScaled := ri.MaxQuantity.Mul(scaleFactor)
			quantity = minScaled.Add(maxScaled.Sub(minScaled).Mul(flexibleRangeShare))
		}

		quantity = quantity.Round(1)

		ingredients = append(ingredients, MealIngredient{
			Name:     ri.Ingredient.Name,
			Quantity: quantity,
			Unit:     ri.Unit,
		})

		totals = totals.Add(ri.Ingredient.Nutrients.Scale(nutrientFactor(ri.Ingredient, quantity, ri.Unit)))

		shopping.add(ri.Ingredient, quantity)
	}

	return MealSlot{
		RecipeID:            recipe.ID,
		RecipeName:          recipe.Name,
		Servings:            targetServings,
		PrepTimeMinutes:     recipe.PrepTimeMinutes,
		CookTimeMinutes:     recipe.CookTimeMinutes,
		Ingredients:         ingredients,
		Instructions:        recipe.Instructions,
		NutrientsPerServing: totals.PerServing(targetServings),
	}
}

// nutrientFactor converts a display quantity into a multiplier for the
// per-100-unit nutrient profile. Units other than g/ml/each fall back to
// quantity/100.
func nutrientFactor(ing catalog.Ingredient, quantity decimal.Decimal, unit string) decimal.Decimal {
	switch strings.ToLower(unit) {
	case "g", "ml":
		return quantity.Div(oneHundred)
	case "each":
		weight, ok := eachUnitWeightsG[strings.ToLower(ing.Name)]
		if !ok {
			weight = defaultEachUnitWeightG
		}
		return quantity.Mul(weight).Div(oneHundred)
	default:
		return quantity.Div(oneHundred)
	}
}

func emptyMealSlot() MealSlot {
	return MealSlot{
		RecipeName:  emptySlotName,
		Ingredients: []MealIngredient{},
	}
}
