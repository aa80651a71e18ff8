package planner

import (
	"strings"

	"github.com/kalehq/kale/internal/domain/catalog"
)

// collectKeywords flattens one restriction list across all members into a
// case-folded, deduplicated set.
func collectKeywords(members []HouseholdMember, pick func(HouseholdMember) []string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, member := range members {
		for _, kw := range pick(member) {
			keywords[strings.ToLower(kw)] = struct{}{}
		}
	}
	return keywords
}

// filterSafeRecipes removes every recipe containing an ingredient whose
// name matches any allergen or dislike keyword. Empty sets exclude
// nothing. Vetoes are handled at selection time, not here.
func filterSafeRecipes(recipes []catalog.Recipe, allergens, dislikes map[string]struct{}) []catalog.Recipe {
	safe := make([]catalog.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if recipeContainsAny(r, allergens) || recipeContainsAny(r, dislikes) {
			continue
		}
		safe = append(safe, r)
	}
	return safe
}

// recipeContainsAny reports whether any ingredient name contains any
// keyword, case-insensitive substring match.
func recipeContainsAny(r catalog.Recipe, keywords map[string]struct{}) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, ri := range r.Ingredients {
		name := strings.ToLower(ri.Ingredient.Name)
		for kw := range keywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
	}
	return false
}

func equalFoldMealType(a, b catalog.MealType) bool {
	return strings.EqualFold(string(a), string(b))
}
