package mealplan

import (
	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/kalehq/kale/internal/domain/planner"
	"github.com/kalehq/kale/internal/ports/inbound"
)

func planToDTO(plan planner.MealPlan) inbound.MealPlanDTO {
	days := make([]inbound.MealPlanDayDTO, 0, len(plan.Days))
	for _, d := range plan.Days {
		days = append(days, inbound.MealPlanDayDTO{
			DayOfWeek: d.DayOfWeek,
			Breakfast: slotToDTO(d.Breakfast),
			Dinner:    slotToDTO(d.Dinner),
		})
	}

	snacks := make([]inbound.MealSlotDTO, 0, len(plan.Snacks))
	for _, s := range plan.Snacks {
		snacks = append(snacks, slotToDTO(s))
	}

	shopping := make([]inbound.ShoppingListItemDTO, 0, len(plan.ShoppingList))
	for _, item := range plan.ShoppingList {
		shopping = append(shopping, inbound.ShoppingListItemDTO{
			IngredientName: item.IngredientName,
			TotalQuantity:  item.TotalQuantity,
			Unit:           item.Unit,
			EstimatedCost:  item.EstimatedCost,
		})
	}

	daily := make([]inbound.DailyNutrientSummaryDTO, 0, len(plan.DailyNutrients))
	for _, d := range plan.DailyNutrients {
		daily = append(daily, inbound.DailyNutrientSummaryDTO{
			DayOfWeek:     d.DayOfWeek,
			TotalCalories: d.TotalCalories,
			TotalProteinG: d.TotalProteinG,
			TotalCarbsG:   d.TotalCarbsG,
			TotalFatG:     d.TotalFatG,
			TotalFiberG:   d.TotalFiberG,
		})
	}

	return inbound.MealPlanDTO{
		ID:                 plan.ID,
		Days:               days,
		Snacks:             snacks,
		ShoppingList:       shopping,
		EstimatedTotalCost: plan.EstimatedTotalCost,
		DailyNutrients:     daily,
		Targets: inbound.NutrientTargetsDTO{
			TotalDailyCalories: plan.Targets.TotalDailyCalories,
			TotalDailyProteinG: plan.Targets.TotalDailyProteinG,
			TotalDailyCarbsG:   plan.Targets.TotalDailyCarbsG,
			TotalDailyFatG:     plan.Targets.TotalDailyFatG,
		},
	}
}

func slotToDTO(slot planner.MealSlot) inbound.MealSlotDTO {
	ingredients := make([]inbound.MealIngredientDTO, 0, len(slot.Ingredients))
	for _, ing := range slot.Ingredients {
		ingredients = append(ingredients, inbound.MealIngredientDTO{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return inbound.MealSlotDTO{
		RecipeID:            slot.RecipeID,
		RecipeName:          slot.RecipeName,
		Servings:            slot.Servings,
		PrepTimeMinutes:     slot.PrepTimeMinutes,
		CookTimeMinutes:     slot.CookTimeMinutes,
		Ingredients:         ingredients,
		Instructions:        slot.Instructions,
		NutrientsPerServing: nutrientsToDTO(slot.NutrientsPerServing),
	}
}

func nutrientsToDTO(n catalog.NutrientProfile) inbound.NutrientInfoDTO {
	return inbound.NutrientInfoDTO{
		Calories:    n.Calories,
		ProteinG:    n.ProteinG,
		CarbsG:      n.CarbsG,
		FatG:        n.FatG,
		FiberG:      n.FiberG,
		VitaminAMcg: n.VitaminAMcg,
		VitaminCMg:  n.VitaminCMg,
		VitaminDMcg: n.VitaminDMcg,
		VitaminKMcg: n.VitaminKMcg,
		CalciumMg:   n.CalciumMg,
		IronMg:      n.IronMg,
		PotassiumMg: n.PotassiumMg,
		SodiumMg:    n.SodiumMg,
	}
}
