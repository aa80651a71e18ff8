package gorm

import (
	"strings"

	"github.com/kalehq/kale/internal/domain/catalog"
)

// IngredientToDomain converts an ingredient model to the domain entity
func IngredientToDomain(m IngredientModel) catalog.Ingredient {
	return catalog.Ingredient{
		ID:              m.ID,
		Name:            m.Name,
		Category:        m.Category,
		CostPerUnit:     m.CostPerUnit,
		Unit:            m.Unit,
		DefaultQuantity: m.DefaultQuantity,
		Nutrients: catalog.NutrientProfile{
			Calories:    m.Calories,
			ProteinG:    m.ProteinG,
			CarbsG:      m.CarbsG,
			FatG:        m.FatG,
			FiberG:      m.FiberG,
			VitaminAMcg: m.VitaminAMcg,
			VitaminCMg:  m.VitaminCMg,
			VitaminDMcg: m.VitaminDMcg,
			VitaminKMcg: m.VitaminKMcg,
			CalciumMg:   m.CalciumMg,
			IronMg:      m.IronMg,
			PotassiumMg: m.PotassiumMg,
			SodiumMg:    m.SodiumMg,
		},
	}
}

// RecipeToDomain converts a recipe model with preloaded ingredient
// usages to the domain entity, preserving usage order
func RecipeToDomain(m RecipeModel) catalog.Recipe {
	ingredients := make([]catalog.RecipeIngredient, 0, len(m.Ingredients))
	for _, ri := range m.Ingredients {
		ingredients = append(ingredients, catalog.RecipeIngredient{
			Ingredient:  IngredientToDomain(ri.Ingredient),
			Quantity:    ri.Quantity,
			Unit:        ri.Unit,
			Flexibility: catalog.Flexibility(ri.Flexibility),
			MinQuantity: ri.MinQuantity,
			MaxQuantity: ri.MaxQuantity,
		})
	}

	var tags []string
	if m.DishTags != "" {
		tags = strings.Split(m.DishTags, ",")
	}

	return catalog.Recipe{
		ID:              m.ID,
		Name:            m.Name,
		MealType:        catalog.MealType(m.MealType),
		PrepTimeMinutes: m.PrepTimeMinutes,
		CookTimeMinutes: m.CookTimeMinutes,
		BaseServings:    m.BaseServings,
		Instructions:    m.Instructions,
		Tags:            tags,
		Ingredients:     ingredients,
	}
}
