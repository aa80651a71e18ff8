package planner

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Mifflin-St Jeor coefficients.
var (
	bmrWeightFactor = decimal.NewFromInt(10)
	bmrHeightFactor = decimal.RequireFromString("6.25")
	bmrAgeFactor    = decimal.NewFromInt(5)
	bmrMaleOffset   = decimal.NewFromInt(5)
	bmrFemaleOffset = decimal.NewFromInt(-161)
)

// Activity multipliers applied to BMR. Unrecognized levels fall back to
// the moderate multiplier.
var activityMultipliers = map[string]decimal.Decimal{
	"sedentary": decimal.RequireFromString("1.2"),
	"light":     decimal.RequireFromString("1.375"),
	"moderate":  decimal.RequireFromString("1.55"),
	"active":    decimal.RequireFromString("1.725"),
}

var defaultActivityMultiplier = activityMultipliers["moderate"]

// Macro split: 30% protein, 40% carbs, 30% fat at 4/4/9 kcal per gram.
var (
	proteinCalorieShare = decimal.RequireFromString("0.30")
	carbCalorieShare    = decimal.RequireFromString("0.40")
	fatCalorieShare     = decimal.RequireFromString("0.30")
	caloriesPerGramPC   = decimal.NewFromInt(4)
	caloriesPerGramFat  = decimal.NewFromInt(9)
)

// CalculateHouseholdTargets sums daily calorie and macro targets across
// all members using Mifflin-St Jeor. Any sex value other than "male"
// (case-insensitive) uses the female offset. There are no error cases;
// zeroed members simply contribute near-zero targets.
func CalculateHouseholdTargets(members []HouseholdMember) NutrientTargets {
	var targets NutrientTargets

	for _, member := range members {
		bmr := bmrWeightFactor.Mul(member.WeightKg).
			Add(bmrHeightFactor.Mul(member.HeightCm)).
			Sub(bmrAgeFactor.Mul(decimal.NewFromInt(int64(member.Age))))
		if strings.EqualFold(member.Sex, "male") {
			bmr = bmr.Add(bmrMaleOffset)
		} else {
			bmr = bmr.Add(bmrFemaleOffset)
		}

		multiplier, ok := activityMultipliers[strings.ToLower(member.ActivityLevel)]
		if !ok {
			multiplier = defaultActivityMultiplier
		}
		dailyCalories := bmr.Mul(multiplier)

		targets.TotalDailyCalories = targets.TotalDailyCalories.Add(dailyCalories)
		targets.TotalDailyProteinG = targets.TotalDailyProteinG.Add(dailyCalories.Mul(proteinCalorieShare).Div(caloriesPerGramPC))
		targets.TotalDailyCarbsG = targets.TotalDailyCarbsG.Add(dailyCalories.Mul(carbCalorieShare).Div(caloriesPerGramPC))
		targets.TotalDailyFatG = targets.TotalDailyFatG.Add(dailyCalories.Mul(fatCalorieShare).Div(caloriesPerGramFat))
	}

	return targets
}
