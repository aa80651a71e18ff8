package catalog

import "github.com/shopspring/decimal"

// Value Objects - Immutable objects that describe aspects of the domain

// MealType classifies a recipe into one of the three plan pools
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// IsValid reports whether the meal type is one of the known pools
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// Flexibility controls how a recipe-ingredient quantity scales
type Flexibility string

const (
	// FlexibilityBase is a fixed ingredient, always included at the
	// scaled quantity.
	FlexibilityBase Flexibility = "base"
	// FlexibilityFlexible is bounded by MinQuantity/MaxQuantity; both
	// bounds are required.
	FlexibilityFlexible Flexibility = "flexible"
	// FlexibilityAddition is an optional garnish-like ingredient,
	// included at the scaled base quantity.
	FlexibilityAddition Flexibility = "addition"
)

// IsValid reports whether the flexibility classification is known
func (f Flexibility) IsValid() bool {
	switch f {
	case FlexibilityBase, FlexibilityFlexible, FlexibilityAddition:
		return true
	}
	return false
}

// NutrientProfile holds macro and micronutrient amounts. On an Ingredient
// the values are per 100 units; elsewhere they are running totals.
type NutrientProfile struct {
	Calories    decimal.Decimal
	ProteinG    decimal.Decimal
	CarbsG      decimal.Decimal
	FatG        decimal.Decimal
	FiberG      decimal.Decimal
	VitaminAMcg decimal.Decimal
	VitaminCMg  decimal.Decimal
	VitaminDMcg decimal.Decimal
	VitaminKMcg decimal.Decimal
	CalciumMg   decimal.Decimal
	IronMg      decimal.Decimal
	PotassiumMg decimal.Decimal
	SodiumMg    decimal.Decimal
}

// Scale returns the profile multiplied by factor
func (n NutrientProfile) Scale(factor decimal.Decimal) NutrientProfile {
	return n.apply(func(d decimal.Decimal) decimal.Decimal { return d.Mul(factor) })
}

// Add returns the field-wise sum of two profiles
func (n NutrientProfile) Add(other NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories:    n.Calories.Add(other.Calories),
		ProteinG:    n.ProteinG.Add(other.ProteinG),
		CarbsG:      n.CarbsG.Add(other.CarbsG),
		FatG:        n.FatG.Add(other.FatG),
		FiberG:      n.FiberG.Add(other.FiberG),
		VitaminAMcg: n.VitaminAMcg.Add(other.VitaminAMcg),
		VitaminCMg:  n.VitaminCMg.Add(other.VitaminCMg),
		VitaminDMcg: n.VitaminDMcg.Add(other.VitaminDMcg),
		VitaminKMcg: n.VitaminKMcg.Add(other.VitaminKMcg),
		CalciumMg:   n.CalciumMg.Add(other.CalciumMg),
		IronMg:      n.IronMg.Add(other.IronMg),
		PotassiumMg: n.PotassiumMg.Add(other.PotassiumMg),
		SodiumMg:    n.SodiumMg.Add(other.SodiumMg),
	}
}

// PerServing divides every field by servings and rounds to one decimal
// place. Servings of zero or below leave the profile unchanged.
func (n NutrientProfile) PerServing(servings int) NutrientProfile {
	if servings <= 0 {
		return n
	}
	div := decimal.NewFromInt(int64(servings))
	return n.apply(func(d decimal.Decimal) decimal.Decimal { return d.Div(div).Round(1) })
}

func (n NutrientProfile) apply(f func(decimal.Decimal) decimal.Decimal) NutrientProfile {
	return NutrientProfile{
		Calories:    f(n.Calories),
		ProteinG:    f(n.ProteinG),
		CarbsG:      f(n.CarbsG),
		FatG:        f(n.FatG),
		FiberG:      f(n.FiberG),
		VitaminAMcg: f(n.VitaminAMcg),
		VitaminCMg:  f(n.VitaminCMg),
		VitaminDMcg: f(n.VitaminDMcg),
		VitaminKMcg: f(n.VitaminKMcg),
		CalciumMg:   f(n.CalciumMg),
		IronMg:      f(n.IronMg),
		PotassiumMg: f(n.PotassiumMg),
		SodiumMg:    f(n.SodiumMg),
	}
}

func (n NutrientProfile) hasNegative() bool {
	neg := false
	n.apply(func(d decimal.Decimal) decimal.Decimal {
		if d.IsNegative() {
			neg = true
		}
		return d
	})
	return neg
}
