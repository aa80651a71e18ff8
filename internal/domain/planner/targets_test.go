package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHouseholdTargets(t *testing.T) {
	t.Run("MaleModerateActivity", func(t *testing.T) {
		// BMR = 10*80 + 6.25*184 - 5*30 + 5 = 1805
		member := HouseholdMember{
			Age: 30, Sex: "male",
			HeightCm: dec("184"), WeightKg: dec("80"),
			ActivityLevel: "moderate",
		}

		targets := CalculateHouseholdTargets([]HouseholdMember{member})

		require.True(t, targets.TotalDailyCalories.Equal(dec("2797.75")),
			"calories = %s", targets.TotalDailyCalories)
		assert.True(t, targets.TotalDailyProteinG.Equal(dec("209.83125")),
			"protein = %s", targets.TotalDailyProteinG)
		assert.True(t, targets.TotalDailyCarbsG.Equal(dec("279.775")),
			"carbs = %s", targets.TotalDailyCarbsG)
		assert.True(t, targets.TotalDailyFatG.Round(4).Equal(dec("93.2583")),
			"fat = %s", targets.TotalDailyFatG)
	})

	t.Run("NonMaleSexUsesFemaleOffset", func(t *testing.T) {
		base := HouseholdMember{
			Age: 30, HeightCm: dec("184"), WeightKg: dec("80"),
			ActivityLevel: "moderate",
		}
		female := base
		female.Sex = "female"
		unspecified := base
		unspecified.Sex = "other"

		ft := CalculateHouseholdTargets([]HouseholdMember{female})
		ut := CalculateHouseholdTargets([]HouseholdMember{unspecified})

		// BMR = 1800 - 161 = 1639, * 1.55
		require.True(t, ft.TotalDailyCalories.Equal(dec("2540.45")),
			"calories = %s", ft.TotalDailyCalories)
		assert.True(t, ut.TotalDailyCalories.Equal(ft.TotalDailyCalories))
	})

	t.Run("SexComparisonIsCaseInsensitive", func(t *testing.T) {
		lower := testMember()
		upper := testMember()
		upper.Sex = "MALE"

		lt := CalculateHouseholdTargets([]HouseholdMember{lower})
		ut := CalculateHouseholdTargets([]HouseholdMember{upper})
		assert.True(t, lt.TotalDailyCalories.Equal(ut.TotalDailyCalories))
	})

	t.Run("UnknownActivityLevelFallsBackToModerate", func(t *testing.T) {
		moderate := testMember()
		unknown := testMember()
		unknown.ActivityLevel = "extreme"

		mt := CalculateHouseholdTargets([]HouseholdMember{moderate})
		ut := CalculateHouseholdTargets([]HouseholdMember{unknown})
		assert.True(t, mt.TotalDailyCalories.Equal(ut.TotalDailyCalories))
	})

	t.Run("ActivityMultipliersOrdered", func(t *testing.T) {
		levels := []string{"sedentary", "light", "moderate", "active"}
		var prev NutrientTargets
		for i, level := range levels {
			m := testMember()
			m.ActivityLevel = level
			targets := CalculateHouseholdTargets([]HouseholdMember{m})
			if i > 0 {
				assert.True(t, targets.TotalDailyCalories.GreaterThan(prev.TotalDailyCalories),
					"%s should exceed %s", level, levels[i-1])
			}
			prev = targets
		}
	})

	t.Run("MultipleMembersSum", func(t *testing.T) {
		one := CalculateHouseholdTargets([]HouseholdMember{testMember()})
		two := CalculateHouseholdTargets([]HouseholdMember{testMember(), testMember()})

		assert.True(t, two.TotalDailyCalories.Equal(one.TotalDailyCalories.Mul(dec("2"))))
		assert.True(t, two.TotalDailyProteinG.Equal(one.TotalDailyProteinG.Mul(dec("2"))))
	})

	t.Run("NoMembersYieldsZeroTargets", func(t *testing.T) {
		targets := CalculateHouseholdTargets(nil)
		assert.True(t, targets.TotalDailyCalories.IsZero())
		assert.True(t, targets.TotalDailyFatG.IsZero())
	})
}
