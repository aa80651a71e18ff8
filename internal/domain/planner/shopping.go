package planner

import (
	"sort"

	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// shoppingAggregator accumulates raw scaled quantities per ingredient
// across every slot of a plan. One aggregator lives per generation call.
type shoppingAggregator struct {
	ingredients map[uint]catalog.Ingredient
	totals      map[uint]decimal.Decimal
}

func newShoppingAggregator() *shoppingAggregator {
	return &shoppingAggregator{
		ingredients: make(map[uint]catalog.Ingredient),
		totals:      make(map[uint]decimal.Decimal),
	}
}

func (a *shoppingAggregator) add(ing catalog.Ingredient, quantity decimal.Decimal) {
	a.ingredients[ing.ID] = ing
	a.totals[ing.ID] = a.totals[ing.ID].Add(quantity)
}

// buildList produces the final shopping list sorted by ingredient name,
// along with the 2-decimal total estimated cost.
func (a *shoppingAggregator) buildList() ([]ShoppingListItem, decimal.Decimal) {
	items := make([]ShoppingListItem, 0, len(a.totals))
	for id, total := range a.totals {
		ing := a.ingredients[id]
		items = append(items, ShoppingListItem{
			IngredientName: ing.Name,
			TotalQuantity:  total.Round(1),
			Unit:           ing.Unit,
			EstimatedCost:  ingredientCost(ing, total),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].IngredientName < items[j].IngredientName
	})

	totalCost := decimal.Zero
	for _, item := range items {
		totalCost = totalCost.Add(item.EstimatedCost)
	}
	return items, totalCost.Round(2)
}

// ingredientCost estimates purchase cost by rounding the needed quantity
// up to whole purchase units. A non-positive DefaultQuantity guards
// against malformed catalog rows and prices the item at zero.
func ingredientCost(ing catalog.Ingredient, totalQuantity decimal.Decimal) decimal.Decimal {
	if !ing.DefaultQuantity.IsPositive() {
		return decimal.Zero
	}
	wholeUnits := totalQuantity.Div(ing.DefaultQuantity).Ceil()
	return wholeUnits.Mul(ing.CostPerUnit).Round(2)
}
