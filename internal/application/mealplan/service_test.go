package mealplan

import (
	"context"
	"errors"
	"testing"

	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/kalehq/kale/internal/ports/inbound"
	apperrors "github.com/kalehq/kale/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) ListRecipesWithIngredients(ctx context.Context) ([]catalog.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Recipe), args.Error(1)
}

func (m *mockCatalogRepository) ListIngredients(ctx context.Context) ([]catalog.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Ingredient), args.Error(1)
}

func fixtureRecipes() []catalog.Recipe {
	dec := decimal.RequireFromString
	oats := catalog.Ingredient{
		ID: 1, Name: "Rolled oats", Unit: "g",
		CostPerUnit: dec("2.50"), DefaultQuantity: dec("500"),
		Nutrients: catalog.NutrientProfile{Calories: dec("389"), ProteinG: dec("16.9")},
	}
	chicken := catalog.Ingredient{
		ID: 2, Name: "Chicken breast", Unit: "g",
		CostPerUnit: dec("8.00"), DefaultQuantity: dec("1000"),
		Nutrients: catalog.NutrientProfile{Calories: dec("165"), ProteinG: dec("31")},
	}
	return []catalog.Recipe{
		{
			ID: 1, Name: "Porridge", MealType: catalog.MealTypeBreakfast, BaseServings: 2,
			Ingredients: []catalog.RecipeIngredient{
				{Ingredient: oats, Quantity: dec("90"), Unit: "g", Flexibility: catalog.FlexibilityBase},
			},
		},
		{
			ID: 2, Name: "Roast chicken", MealType: catalog.MealTypeDinner, BaseServings: 4,
			Ingredients: []catalog.RecipeIngredient{
				{Ingredient: chicken, Quantity: dec("600"), Unit: "g", Flexibility: catalog.FlexibilityBase},
			},
		},
		{
			ID: 3, Name: "Chicken stir fry", MealType: catalog.MealTypeDinner, BaseServings: 4,
			Ingredients: []catalog.RecipeIngredient{
				{Ingredient: chicken, Quantity: dec("500"), Unit: "g", Flexibility: catalog.FlexibilityBase},
			},
		},
	}
}

func memberCommand() inbound.HouseholdMemberCommand {
	return inbound.HouseholdMemberCommand{
		Name: "Alex", Age: 30, Sex: "male",
		HeightCm:      decimal.RequireFromString("184"),
		WeightKg:      decimal.RequireFromString("80"),
		ActivityLevel: "moderate",
	}
}

func TestGenerateMealPlan(t *testing.T) {
	t.Run("EmptyHouseholdFailsValidation", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewMealPlanService(repo, zap.NewNop())

		_, err := svc.GenerateMealPlan(context.Background(), inbound.GenerateMealPlanCommand{})

		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
		repo.AssertNotCalled(t, "ListRecipesWithIngredients")
	})

	t.Run("RepositoryFailureWrapsAsDatabaseError", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		repo.On("ListRecipesWithIngredients", mock.Anything).Return(nil, errors.New("connection refused"))
		svc := NewMealPlanService(repo, zap.NewNop())

		_, err := svc.GenerateMealPlan(context.Background(), inbound.GenerateMealPlanCommand{
			Members: []inbound.HouseholdMemberCommand{memberCommand()},
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeDatabaseError))
	})

	t.Run("ReturnsFullWeekPlan", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		repo.On("ListRecipesWithIngredients", mock.Anything).Return(fixtureRecipes(), nil)
		svc := NewMealPlanService(repo, zap.NewNop())

		plan, err := svc.GenerateMealPlan(context.Background(), inbound.GenerateMealPlanCommand{
			Members: []inbound.HouseholdMemberCommand{memberCommand(), memberCommand()},
		})

		require.NoError(t, err)
		require.Len(t, plan.Days, 7)
		assert.Equal(t, "Monday", plan.Days[0].DayOfWeek)
		assert.Equal(t, "Porridge", plan.Days[0].Breakfast.RecipeName)
		assert.Equal(t, 2, plan.Days[0].Breakfast.Servings)
		assert.Equal(t, 4, plan.Days[0].Dinner.Servings)
		assert.NotEmpty(t, plan.ShoppingList)
		assert.True(t, plan.Targets.TotalDailyCalories.IsPositive())
		repo.AssertExpectations(t)
	})
}

func TestRegenerateMealPlan(t *testing.T) {
	t.Run("VetoedRecipeLeavesVetoedSlot", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		repo.On("ListRecipesWithIngredients", mock.Anything).Return(fixtureRecipes(), nil)
		svc := NewMealPlanService(repo, zap.NewNop())

		plan, err := svc.RegenerateMealPlan(context.Background(), inbound.RegenerateMealPlanCommand{
			Members: []inbound.HouseholdMemberCommand{memberCommand()},
			Vetoes: []inbound.VetoCommand{
				{DayIndex: 0, MealType: "dinner", RecipeID: 2},
			},
		})

		require.NoError(t, err)
		// Monday swaps to the alternative; other days keep rotating.
		assert.Equal(t, uint(3), plan.Days[0].Dinner.RecipeID)
		assert.Equal(t, uint(2), plan.Days[1].Dinner.RecipeID)
	})

	t.Run("EmptyHouseholdFailsValidation", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewMealPlanService(repo, zap.NewNop())

		_, err := svc.RegenerateMealPlan(context.Background(), inbound.RegenerateMealPlanCommand{})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
	})
}
