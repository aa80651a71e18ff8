package sqlite

import (
	gormModels "github.com/kalehq/kale/internal/infrastructure/persistence/gorm"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func seedIngredients() []gormModels.IngredientModel {
	return []gormModels.IngredientModel{
		// Proteins
		{
			ID: 1, Name: "Chicken Breast", Category: "protein",
			CostPerUnit: dec("3.99"), Unit: "g", DefaultQuantity: dec("500"),
			Calories: dec("165"), ProteinG: dec("31"), CarbsG: dec("0"), FatG: dec("3.6"), FiberG: dec("0"),
			VitaminAMcg: dec("6"), VitaminCMg: dec("0"), VitaminDMcg: dec("0.1"), VitaminKMcg: dec("0"),
			CalciumMg: dec("15"), IronMg: dec("1.0"), PotassiumMg: dec("256"), SodiumMg: dec("74"),
		},
		{
			ID: 2, Name: "Salmon", Category: "protein",
			CostPerUnit: dec("8.99"), Unit: "g", DefaultQuantity: dec("400"),
			Calories: dec("208"), ProteinG: dec("20"), CarbsG: dec("0"), FatG: dec("13"), FiberG: dec("0"),
			VitaminAMcg: dec("12"), VitaminCMg: dec("0"), VitaminDMcg: dec("11"), VitaminKMcg: dec("0.5"),
			CalciumMg: dec("12"), IronMg: dec("0.8"), PotassiumMg: dec("363"), SodiumMg: dec("59"),
		},
		{
			ID: 3, Name: "Lentils", Category: "protein",
			CostPerUnit: dec("1.99"), Unit: "g", DefaultQuantity: dec("500"),
			Calories: dec("116"), ProteinG: dec("9"), CarbsG: dec("20"), FatG: dec("0.4"), FiberG: dec("7.9"),
			VitaminAMcg: dec("8"), VitaminCMg: dec("1.5"), VitaminDMcg: dec("0"), VitaminKMcg: dec("1.7"),
			CalciumMg: dec("19"), IronMg: dec("3.3"), PotassiumMg: dec("369"), SodiumMg: dec("2"),
		},
		{
			ID: 4, Name: "Chickpeas", Category: "protein",
			CostPerUnit: dec("1.49"), Unit: "g", DefaultQuantity: dec("400"),
			Calories: dec("164"), ProteinG: dec("8.9"), CarbsG: dec("27"), FatG: dec("2.6"), FiberG: dec("7.6"),
			VitaminAMcg: dec("1"), VitaminCMg: dec("1.3"), VitaminDMcg: dec("0"), VitaminKMcg: dec("4"),
			CalciumMg: dec("49"), IronMg: dec("2.9"), PotassiumMg: dec("291"), SodiumMg: dec("7"),
		},
		{
			ID: 5, Name: "Eggs", Category: "protein",
			CostPerUnit: dec("3.49"), Unit: "each", DefaultQuantity: dec("12"),
			Calories: dec("155"), ProteinG: dec("13"), CarbsG: dec("1.1"), FatG: dec("11"), FiberG: dec("0"),
			VitaminAMcg: dec("160"), VitaminCMg: dec("0"), VitaminDMcg: dec("2"), VitaminKMcg: dec("0.3"),
			CalciumMg: dec("56"), IronMg: dec("1.8"), PotassiumMg: dec("138"), SodiumMg: dec("124"),
		},

		// Vegetables
		{
			ID: 6, Name: "Spinach", Category: "vegetable",
			CostPerUnit: dec("2.99"), Unit: "g", DefaultQuantity: dec("300"),
			Calories: dec("23"), ProteinG: dec("2.9"), CarbsG: dec("3.6"), FatG: dec("0.4"), FiberG: dec("2.2"),
			VitaminAMcg: dec("469"), VitaminCMg: dec("28"), VitaminDMcg: dec("0"), VitaminKMcg: dec("483"),
			CalciumMg: dec("99"), IronMg: dec("2.7"), PotassiumMg: dec("558"), SodiumMg: dec("79"),
		},
		{
			ID: 7, Name: "Tomatoes", Category: "vegetable",
			CostPerUnit: dec("1.99"), Unit: "g", DefaultQuantity: dec("500"),
			Calories: dec("18"), ProteinG: dec("0.9"), CarbsG: dec("3.9"), FatG: dec("0.2"), FiberG: dec("1.2"),
			VitaminAMcg: dec("42"), VitaminCMg: dec("14"), VitaminDMcg: dec("0"), VitaminKMcg: dec("7.9"),
			CalciumMg: dec("10"), IronMg: dec("0.3"), PotassiumMg: dec("237"), SodiumMg: dec("5"),
		},
		{
			ID: 8, Name: "Bell Peppers", Category: "vegetable",
			CostPerUnit: dec("1.50"), Unit: "g", DefaultQuantity: dec("200"),
			Calories: dec("31"), ProteinG: dec("1.0"), CarbsG: dec("6"), FatG: dec("0.3"), FiberG: dec("2.1"),
			VitaminAMcg: dec("157"), VitaminCMg: dec("128"), VitaminDMcg: dec("0"), VitaminKMcg: dec("4.9"),
			CalciumMg: dec("7"), IronMg: dec("0.4"), PotassiumMg: dec("211"), SodiumMg: dec("4"),
		},
		{
			ID: 9, Name: "Zucchini", Category: "vegetable",
			CostPerUnit: dec("1.29"), Unit: "g", DefaultQuantity: dec("300"),
			Calories: dec("17"), ProteinG: dec("1.2"), CarbsG: dec("3.1"), FatG: dec("0.3"), FiberG: dec("1.0"),
			VitaminAMcg: dec("10"), VitaminCMg: dec("18"), VitaminDMcg: dec("0"), VitaminKMcg: dec("4.3"),
			CalciumMg: dec("16"), IronMg: dec("0.4"), PotassiumMg: dec("261"), SodiumMg: dec("8"),
		},
		{
			ID: 10, Name: "Kale", Category: "vegetable",
			CostPerUnit: dec("2.49"), Unit: "g", DefaultQuantity: dec("300"),
			Calories: dec("49"), ProteinG: dec("4.3"), CarbsG: dec("8.8"), FatG: dec("0.9"), FiberG: dec("3.6"),
			VitaminAMcg: dec("500"), VitaminCMg: dec("120"), VitaminDMcg: dec("0"), VitaminKMcg: dec("817"),
			CalciumMg: dec("150"), IronMg: dec("1.5"), PotassiumMg: dec("491"), SodiumMg: dec("38"),
		},
		{
			ID: 11, Name: "Onions", Category: "vegetable",
			CostPerUnit: dec("1.29"), Unit: "g", DefaultQuantity: dec("500"),
			Calories: dec("40"), ProteinG: dec("1.1"), CarbsG: dec("9.3"), FatG: dec("0.1"), FiberG: dec("1.7"),
			VitaminAMcg: dec("0"), VitaminCMg: dec("7.4"), VitaminDMcg: dec("0"), VitaminKMcg: dec("0.4"),
			CalciumMg: dec("23"), IronMg: dec("0.2"), PotassiumMg: dec("146"), SodiumMg: dec("4"),
		},
		{
			ID: 12, Name: "Garlic", Category: "vegetable",
			CostPerUnit: dec("0.50"), Unit: "g", DefaultQuantity: dec("30"),
			Calories: dec("149"), ProteinG: dec("6.4"), CarbsG: dec("33"), FatG: dec("0.5"), FiberG: dec("2.1"),
			VitaminAMcg: dec("0"), VitaminCMg: dec("31"), VitaminDMcg: dec("0"), VitaminKMcg: dec("1.7"),
			CalciumMg: dec("181"), IronMg: dec("1.7"), PotassiumMg: dec("401"), SodiumMg: dec("17"),
		},

		// Grains
		{
			ID: 13, Name: "Brown Rice", Category: "grain",
			CostPerUnit: dec("2.49"), Unit: "g", DefaultQuantity: dec("1000"),
			Calories: dec("112"), ProteinG: dec("2.6"), CarbsG: dec("24"), FatG: dec("0.9"), FiberG: dec("1.8"),
			VitaminAMcg: dec("0"), VitaminCMg: dec("0"), VitaminDMcg: dec("0"), VitaminKMcg: dec("0.2"),
			CalciumMg: dec("10"), IronMg: dec("0.4"), PotassiumMg: dec("43"), SodiumMg: dec("1"),
		},
		{
			ID: 14, Name: "Whole Wheat Pasta", Category: "grain",
			CostPerUnit: dec("1.99"), Unit: "g", DefaultQuantity: dec("500"),
			Calories: dec("124"), ProteinG: dec("5.3"), CarbsG: dec("27"), FatG: dec("0.5"), FiberG: dec("3.9"),
			VitaminAMcg: dec("0"), VitaminCMg: dec("0"), VitaminDMcg: dec("0"), VitaminKMcg: dec("0.1"),
			CalciumMg: dec("15"), IronMg: dec("1.4"), PotassiumMg: dec("44"), SodiumMg: dec("1"),
		},

		// Other
		{
			ID: 15, Name: "Olive Oil", Category: "oil",
			CostPerUnit: dec("6.99"), Unit: "ml", DefaultQuantity: dec("500"),
			Calories: dec("884"), ProteinG: dec("0"), CarbsG: dec("0"), FatG: dec("100"), FiberG: dec("0"),
			VitaminAMcg: dec("0"), VitaminCMg: dec("0"), VitaminDMcg: dec("0"), VitaminKMcg: dec("60.2"),
			CalciumMg: dec("1"), IronMg: dec("0.6"), PotassiumMg: dec("1"), SodiumMg: dec("2"),
		},
		{
			ID: 16, Name: "Feta Cheese", Category: "dairy",
			CostPerUnit: dec("4.99"), Unit: "g", DefaultQuantity: dec("200"),
			Calories: dec("264"), ProteinG: dec("14"), CarbsG: dec("4.1"), FatG: dec("21"), FiberG: dec("0"),
			VitaminAMcg: dec("125"), VitaminCMg: dec("0"), VitaminDMcg: dec("0.4"), VitaminKMcg: dec("1.8"),
			CalciumMg: dec("493"), IronMg: dec("0.7"), PotassiumMg: dec("62"), SodiumMg: dec("917"),
		},
		{
			ID: 17, Name: "Lemons", Category: "fruit",
			CostPerUnit: dec("0.50"), Unit: "each", DefaultQuantity: dec("5"),
			Calories: dec("29"), ProteinG: dec("1.1"), CarbsG: dec("9.3"), FatG: dec("0.3"), FiberG: dec("2.8"),
			VitaminAMcg: dec("1"), VitaminCMg: dec("53"), VitaminDMcg: dec("0"), VitaminKMcg: dec("0"),
			CalciumMg: dec("26"), IronMg: dec("0.6"), PotassiumMg: dec("138"), SodiumMg: dec("2"),
		},
		{
			ID: 18, Name: "Greek Yogurt", Category: "dairy",
			CostPerUnit: dec("4.49"), Unit: "g", DefaultQuantity: dec("500"),
			Calories: dec("59"), ProteinG: dec("10"), CarbsG: dec("3.6"), FatG: dec("0.7"), FiberG: dec("0"),
			VitaminAMcg: dec("7"), VitaminCMg: dec("0"), VitaminDMcg: dec("0"), VitaminKMcg: dec("0"),
			CalciumMg: dec("110"), IronMg: dec("0.1"), PotassiumMg: dec("141"), SodiumMg: dec("36"),
		},
		{
			ID: 19, Name: "Rolled Oats", Category: "grain",
			CostPerUnit: dec("3.49"), Unit: "g", DefaultQuantity: dec("500"),
			Calories: dec("389"), ProteinG: dec("17"), CarbsG: dec("66"), FatG: dec("6.9"), FiberG: dec("10.6"),
			VitaminAMcg: dec("0"), VitaminCMg: dec("0"), VitaminDMcg: dec("0"), VitaminKMcg: dec("0"),
			CalciumMg: dec("54"), IronMg: dec("4.7"), PotassiumMg: dec("429"), SodiumMg: dec("2"),
		},
	}
}

func seedRecipes() []gormModels.RecipeModel {
	return []gormModels.RecipeModel{
		// Breakfasts
		{
			ID: 1, Name: "Greek Yogurt Bowl with Honey and Walnuts", MealType: "breakfast",
			PrepTimeMinutes: 5, CookTimeMinutes: 0, BaseServings: 1, DishTags: "bowl,cold",
			Instructions: "1. Scoop Greek yogurt into a bowl.\n2. Drizzle with olive oil or honey.\n3. Top with fresh fruit or a squeeze of lemon.\n4. Add a handful of rolled oats for crunch if desired.",
		},
		{
			ID: 2, Name: "Mediterranean Veggie Omelet", MealType: "breakfast",
			PrepTimeMinutes: 5, CookTimeMinutes: 10, BaseServings: 1, DishTags: "eggs,skillet",
			Instructions: "1. Whisk eggs in a bowl with a pinch of salt.\n2. Heat olive oil in a non-stick skillet over medium heat.\n3. Sauté diced bell peppers, tomatoes, and spinach for 2-3 minutes.\n4. Pour eggs over the vegetables.\n5. Cook until edges set, then fold the omelet.\n6. Top with crumbled feta cheese.\n7. Serve immediately.",
		},
		{
			ID: 3, Name: "Overnight Oats with Lemon and Spinach", MealType: "breakfast",
			PrepTimeMinutes: 10, CookTimeMinutes: 0, BaseServings: 1, DishTags: "bowl,cold,make-ahead",
			Instructions: "1. Combine rolled oats with Greek yogurt in a jar.\n2. Add a squeeze of lemon juice and a drizzle of olive oil.\n3. Stir in a handful of finely chopped spinach.\n4. Cover and refrigerate overnight.\n5. In the morning, stir and enjoy cold.",
		},

		// Dinners
		{
			ID: 4, Name: "Lemon Herb Chicken with Brown Rice", MealType: "dinner",
			PrepTimeMinutes: 15, CookTimeMinutes: 30, BaseServings: 2, DishTags: "roasted,plated",
			Instructions: "1. Preheat oven to 400°F (200°C).\n2. Season chicken breasts with olive oil, lemon juice, garlic, salt, and pepper.\n3. Place chicken on a baking sheet and roast for 25-30 minutes.\n4. Meanwhile, cook brown rice according to package directions.\n5. Sauté zucchini and bell peppers in olive oil until tender.\n6. Serve chicken over rice with sautéed vegetables on the side.",
		},
		{
			ID: 5, Name: "Mediterranean Lentil Soup", MealType: "dinner",
			PrepTimeMinutes: 10, CookTimeMinutes: 35, BaseServings: 4, DishTags: "soup,stew",
			Instructions: "1. Heat olive oil in a large pot over medium heat.\n2. Sauté diced onions and garlic until softened, about 3 minutes.\n3. Add diced tomatoes and cook for 2 minutes.\n4. Add rinsed lentils and 4 cups of water or vegetable broth.\n5. Bring to a boil, then reduce to a simmer.\n6. Cook for 25-30 minutes until lentils are tender.\n7. Stir in spinach during the last 5 minutes.\n8. Season with lemon juice, salt, and pepper.\n9. Serve hot with a drizzle of olive oil.",
		},
		{
			ID: 6, Name: "Grilled Salmon with Roasted Vegetables", MealType: "dinner",
			PrepTimeMinutes: 15, CookTimeMinutes: 25, BaseServings: 2, DishTags: "grilled,plated",
			Instructions: "1. Preheat oven to 425°F (220°C).\n2. Toss zucchini, bell peppers, and tomatoes with olive oil, salt, and pepper.\n3. Spread vegetables on a baking sheet and roast for 20 minutes.\n4. Season salmon fillets with olive oil, lemon juice, garlic, salt, and pepper.\n5. Grill or pan-sear salmon for 4-5 minutes per side.\n6. Serve salmon over roasted vegetables.\n7. Garnish with fresh lemon wedges.",
		},
		{
			ID: 7, Name: "Chickpea and Vegetable Stir-Fry", MealType: "dinner",
			PrepTimeMinutes: 10, CookTimeMinutes: 15, BaseServings: 2, DishTags: "stir-fry,skillet",
			Instructions: "1. Heat olive oil in a large skillet or wok over medium-high heat.\n2. Sauté diced onions and garlic for 2 minutes.\n3. Add sliced bell peppers and zucchini, cook for 5 minutes.\n4. Add drained chickpeas and diced tomatoes.\n5. Season with cumin, paprika, salt, and pepper.\n6. Cook for 5 more minutes, stirring frequently.\n7. Serve over brown rice or whole wheat pasta.\n8. Top with crumbled feta cheese if desired.",
		},

		// Snack
		{
			ID: 8, Name: "Hummus with Fresh Vegetables", MealType: "snack",
			PrepTimeMinutes: 15, CookTimeMinutes: 0, BaseServings: 4, DishTags: "dip,cold",
			Instructions: "1. Drain and rinse chickpeas.\n2. In a food processor, combine chickpeas, olive oil, lemon juice, garlic, and a pinch of salt.\n3. Blend until smooth, adding water as needed for desired consistency.\n4. Transfer to a bowl and drizzle with olive oil.\n5. Serve with sliced bell peppers, zucchini sticks, and tomato wedges.",
		},
	}
}

func seedRecipeIngredients() []gormModels.RecipeIngredientModel {
	return []gormModels.RecipeIngredientModel{
		// Greek Yogurt Bowl
		{ID: 1, RecipeID: 1, IngredientID: 18, Quantity: dec("200"), Unit: "g", Flexibility: "base"},
		{ID: 2, RecipeID: 1, IngredientID: 15, Quantity: dec("10"), Unit: "ml", Flexibility: "base"},
		{ID: 3, RecipeID: 1, IngredientID: 19, Quantity: dec("30"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("20"), MaxQuantity: decPtr("50")},
		{ID: 4, RecipeID: 1, IngredientID: 17, Quantity: dec("0.5"), Unit: "each", Flexibility: "base"},

		// Mediterranean Veggie Omelet
		{ID: 5, RecipeID: 2, IngredientID: 5, Quantity: dec("3"), Unit: "each", Flexibility: "base"},
		{ID: 6, RecipeID: 2, IngredientID: 15, Quantity: dec("15"), Unit: "ml", Flexibility: "base"},
		{ID: 7, RecipeID: 2, IngredientID: 8, Quantity: dec("50"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("30"), MaxQuantity: decPtr("80")},
		{ID: 8, RecipeID: 2, IngredientID: 7, Quantity: dec("50"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("30"), MaxQuantity: decPtr("80")},
		{ID: 9, RecipeID: 2, IngredientID: 6, Quantity: dec("30"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("20"), MaxQuantity: decPtr("60")},
		{ID: 10, RecipeID: 2, IngredientID: 16, Quantity: dec("20"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("10"), MaxQuantity: decPtr("40")},

		// Overnight Oats
		{ID: 11, RecipeID: 3, IngredientID: 19, Quantity: dec("60"), Unit: "g", Flexibility: "base"},
		{ID: 12, RecipeID: 3, IngredientID: 18, Quantity: dec("100"), Unit: "g", Flexibility: "base"},
		{ID: 13, RecipeID: 3, IngredientID: 17, Quantity: dec("0.5"), Unit: "each", Flexibility: "base"},
		{ID: 14, RecipeID: 3, IngredientID: 15, Quantity: dec("5"), Unit: "ml", Flexibility: "base"},
		{ID: 15, RecipeID: 3, IngredientID: 6, Quantity: dec("20"), Unit: "g", Flexibility: "addition"},

		// Lemon Herb Chicken with Brown Rice
		{ID: 16, RecipeID: 4, IngredientID: 1, Quantity: dec("400"), Unit: "g", Flexibility: "base"},
		{ID: 17, RecipeID: 4, IngredientID: 13, Quantity: dec("200"), Unit: "g", Flexibility: "base"},
		{ID: 18, RecipeID: 4, IngredientID: 15, Quantity: dec("30"), Unit: "ml", Flexibility: "base"},
		{ID: 19, RecipeID: 4, IngredientID: 17, Quantity: dec("1"), Unit: "each", Flexibility: "base"},
		{ID: 20, RecipeID: 4, IngredientID: 12, Quantity: dec("10"), Unit: "g", Flexibility: "base"},
		{ID: 21, RecipeID: 4, IngredientID: 9, Quantity: dec("150"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("100"), MaxQuantity: decPtr("250")},
		{ID: 22, RecipeID: 4, IngredientID: 8, Quantity: dec("100"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("80"), MaxQuantity: decPtr("200")},
		{ID: 23, RecipeID: 4, IngredientID: 6, Quantity: dec("50"), Unit: "g", Flexibility: "addition"},

		// Mediterranean Lentil Soup
		{ID: 24, RecipeID: 5, IngredientID: 3, Quantity: dec("300"), Unit: "g", Flexibility: "base"},
		{ID: 25, RecipeID: 5, IngredientID: 15, Quantity: dec("30"), Unit: "ml", Flexibility: "base"},
		{ID: 26, RecipeID: 5, IngredientID: 11, Quantity: dec("100"), Unit: "g", Flexibility: "base"},
		{ID: 27, RecipeID: 5, IngredientID: 12, Quantity: dec("10"), Unit: "g", Flexibility: "base"},
		{ID: 28, RecipeID: 5, IngredientID: 7, Quantity: dec("200"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("150"), MaxQuantity: decPtr("300")},
		{ID: 29, RecipeID: 5, IngredientID: 17, Quantity: dec("1"), Unit: "each", Flexibility: "base"},
		{ID: 30, RecipeID: 5, IngredientID: 6, Quantity: dec("80"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("50"), MaxQuantity: decPtr("150")},
		{ID: 31, RecipeID: 5, IngredientID: 10, Quantity: dec("60"), Unit: "g", Flexibility: "addition"},

		// Grilled Salmon with Roasted Vegetables
		{ID: 32, RecipeID: 6, IngredientID: 2, Quantity: dec("400"), Unit: "g", Flexibility: "base"},
		{ID: 33, RecipeID: 6, IngredientID: 15, Quantity: dec("30"), Unit: "ml", Flexibility: "base"},
		{ID: 34, RecipeID: 6, IngredientID: 17, Quantity: dec("1"), Unit: "each", Flexibility: "base"},
		{ID: 35, RecipeID: 6, IngredientID: 12, Quantity: dec("10"), Unit: "g", Flexibility: "base"},
		{ID: 36, RecipeID: 6, IngredientID: 9, Quantity: dec("200"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("150"), MaxQuantity: decPtr("300")},
		{ID: 37, RecipeID: 6, IngredientID: 8, Quantity: dec("150"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("100"), MaxQuantity: decPtr("250")},
		{ID: 38, RecipeID: 6, IngredientID: 7, Quantity: dec("100"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("80"), MaxQuantity: decPtr("200")},
		{ID: 39, RecipeID: 6, IngredientID: 10, Quantity: dec("50"), Unit: "g", Flexibility: "addition"},

		// Chickpea and Vegetable Stir-Fry
		{ID: 40, RecipeID: 7, IngredientID: 4, Quantity: dec("300"), Unit: "g", Flexibility: "base"},
		{ID: 41, RecipeID: 7, IngredientID: 15, Quantity: dec("20"), Unit: "ml", Flexibility: "base"},
		{ID: 42, RecipeID: 7, IngredientID: 11, Quantity: dec("80"), Unit: "g", Flexibility: "base"},
		{ID: 43, RecipeID: 7, IngredientID: 12, Quantity: dec("10"), Unit: "g", Flexibility: "base"},
		{ID: 44, RecipeID: 7, IngredientID: 8, Quantity: dec("150"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("100"), MaxQuantity: decPtr("250")},
		{ID: 45, RecipeID: 7, IngredientID: 9, Quantity: dec("150"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("100"), MaxQuantity: decPtr("250")},
		{ID: 46, RecipeID: 7, IngredientID: 7, Quantity: dec("100"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("80"), MaxQuantity: decPtr("200")},
		{ID: 47, RecipeID: 7, IngredientID: 13, Quantity: dec("150"), Unit: "g", Flexibility: "base"},
		{ID: 48, RecipeID: 7, IngredientID: 16, Quantity: dec("30"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("15"), MaxQuantity: decPtr("50")},
		{ID: 49, RecipeID: 7, IngredientID: 6, Quantity: dec("40"), Unit: "g", Flexibility: "addition"},
		{ID: 50, RecipeID: 7, IngredientID: 10, Quantity: dec("40"), Unit: "g", Flexibility: "addition"},

		// Hummus with Fresh Vegetables
		{ID: 51, RecipeID: 8, IngredientID: 4, Quantity: dec("250"), Unit: "g", Flexibility: "base"},
		{ID: 52, RecipeID: 8, IngredientID: 15, Quantity: dec("30"), Unit: "ml", Flexibility: "base"},
		{ID: 53, RecipeID: 8, IngredientID: 17, Quantity: dec("1"), Unit: "each", Flexibility: "base"},
		{ID: 54, RecipeID: 8, IngredientID: 12, Quantity: dec("5"), Unit: "g", Flexibility: "base"},
		{ID: 55, RecipeID: 8, IngredientID: 8, Quantity: dec("100"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("80"), MaxQuantity: decPtr("200")},
		{ID: 56, RecipeID: 8, IngredientID: 9, Quantity: dec("80"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("60"), MaxQuantity: decPtr("150")},
		{ID: 57, RecipeID: 8, IngredientID: 7, Quantity: dec("80"), Unit: "g", Flexibility: "flexible", MinQuantity: decPtr("60"), MaxQuantity: decPtr("150")},
	}
}
