package planner

import (
	"testing"

	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingAggregator(t *testing.T) {
	t.Run("AccumulatesAcrossSlots", func(t *testing.T) {
		agg := newShoppingAggregator()
		rice := testIngredient(1, "Brown rice")

		agg.add(rice, dec("150"))
		agg.add(rice, dec("200"))

		items, _ := agg.buildList()
		require.Len(t, items, 1)
		assert.True(t, items[0].TotalQuantity.Equal(dec("350")))
	})

	t.Run("SortsByIngredientName", func(t *testing.T) {
		agg := newShoppingAggregator()
		agg.add(testIngredient(1, "Zucchini"), dec("100"))
		agg.add(testIngredient(2, "Apples"), dec("100"))
		agg.add(testIngredient(3, "Milk"), dec("100"))

		items, _ := agg.buildList()
		require.Len(t, items, 3)
		assert.Equal(t, "Apples", items[0].IngredientName)
		assert.Equal(t, "Milk", items[1].IngredientName)
		assert.Equal(t, "Zucchini", items[2].IngredientName)
	})

	t.Run("RoundsQuantitiesToOneDecimal", func(t *testing.T) {
		agg := newShoppingAggregator()
		agg.add(testIngredient(1, "Flour"), dec("33.333"))
		agg.add(testIngredient(1, "Flour"), dec("33.333"))

		items, _ := agg.buildList()
		require.Len(t, items, 1)
		assert.True(t, items[0].TotalQuantity.Equal(dec("66.7")))
	})

	t.Run("TotalCostRoundsToTwoDecimals", func(t *testing.T) {
		agg := newShoppingAggregator()
		// 300/500 -> 1 unit at 2.00, twice over two ingredients.
		agg.add(testIngredient(1, "A"), dec("300"))
		agg.add(testIngredient(2, "B"), dec("300"))

		items, total := agg.buildList()
		require.Len(t, items, 2)
		assert.True(t, total.Equal(dec("4")), "total = %s", total)
	})
}

func TestIngredientCost(t *testing.T) {
	t.Run("RoundsUpToWholePurchaseUnits", func(t *testing.T) {
		ing := catalog.Ingredient{
			Name: "Rolled oats", CostPerUnit: dec("3.50"), DefaultQuantity: dec("500"),
		}
		// 700 g needs two 500 g packs.
		cost := ingredientCost(ing, dec("700"))
		assert.True(t, cost.Equal(dec("7")), "cost = %s", cost)
	})

	t.Run("ExactMultipleBuysExactUnits", func(t *testing.T) {
		ing := catalog.Ingredient{
			Name: "Milk", CostPerUnit: dec("1.80"), DefaultQuantity: dec("1000"),
		}
		cost := ingredientCost(ing, dec("2000"))
		assert.True(t, cost.Equal(dec("3.6")), "cost = %s", cost)
	})

	t.Run("ZeroDefaultQuantityCostsNothing", func(t *testing.T) {
		ing := catalog.Ingredient{Name: "Broken", CostPerUnit: dec("5.00")}
		assert.True(t, ingredientCost(ing, dec("100")).IsZero())
	})

	t.Run("NegativeDefaultQuantityCostsNothing", func(t *testing.T) {
		ing := catalog.Ingredient{
			Name: "Broken", CostPerUnit: dec("5.00"), DefaultQuantity: dec("-1"),
		}
		assert.True(t, ingredientCost(ing, dec("100")).IsZero())
	})
}
