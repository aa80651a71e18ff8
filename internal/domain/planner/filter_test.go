package planner

import (
	"testing"

	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeWithIngredients(id uint, names ...string) catalog.Recipe {
	r := catalog.Recipe{ID: id, Name: "test", MealType: catalog.MealTypeDinner, BaseServings: 2}
	for i, name := range names {
		r.Ingredients = append(r.Ingredients, catalog.RecipeIngredient{
			Ingredient:  testIngredient(id*10+uint(i), name),
			Quantity:    dec("100"),
			Unit:        "g",
			Flexibility: catalog.FlexibilityBase,
		})
	}
	return r
}

func TestCollectKeywords(t *testing.T) {
	members := []HouseholdMember{
		{Allergies: []string{"Peanut", "SHELLFISH"}},
		{Allergies: []string{"peanut", "gluten"}},
	}

	keywords := collectKeywords(members, func(m HouseholdMember) []string { return m.Allergies })

	assert.Len(t, keywords, 3)
	assert.Contains(t, keywords, "peanut")
	assert.Contains(t, keywords, "shellfish")
	assert.Contains(t, keywords, "gluten")
}

func TestFilterSafeRecipes(t *testing.T) {
	peanutSatay := recipeWithIngredients(1, "Chicken breast", "Peanut butter")
	plainChicken := recipeWithIngredients(2, "Chicken breast", "Broccoli")
	salmonBowl := recipeWithIngredients(3, "Salmon fillet", "Brown rice")

	recipes := []catalog.Recipe{peanutSatay, plainChicken, salmonBowl}

	t.Run("AllergenMatchIsCaseInsensitiveSubstring", func(t *testing.T) {
		allergens := map[string]struct{}{"peanut": {}}
		safe := filterSafeRecipes(recipes, allergens, nil)

		require.Len(t, safe, 2)
		assert.Equal(t, uint(2), safe[0].ID)
		assert.Equal(t, uint(3), safe[1].ID)
	})

	t.Run("DislikesFilterTheSameWay", func(t *testing.T) {
		dislikes := map[string]struct{}{"salmon": {}}
		safe := filterSafeRecipes(recipes, nil, dislikes)

		require.Len(t, safe, 2)
		assert.Equal(t, uint(1), safe[0].ID)
		assert.Equal(t, uint(2), safe[1].ID)
	})

	t.Run("EmptySetsExcludeNothing", func(t *testing.T) {
		safe := filterSafeRecipes(recipes, map[string]struct{}{}, nil)
		assert.Len(t, safe, 3)
	})

	t.Run("PartialWordMatches", func(t *testing.T) {
		// "chick" matches "Chicken breast".
		dislikes := map[string]struct{}{"chick": {}}
		safe := filterSafeRecipes(recipes, nil, dislikes)

		require.Len(t, safe, 1)
		assert.Equal(t, uint(3), safe[0].ID)
	})

	t.Run("KeywordAgainstEveryIngredient", func(t *testing.T) {
		// Matching any single ingredient removes the whole recipe.
		allergens := map[string]struct{}{"broccoli": {}}
		safe := filterSafeRecipes(recipes, allergens, nil)

		require.Len(t, safe, 2)
		for _, r := range safe {
			assert.NotEqual(t, uint(2), r.ID)
		}
	})
}
