package catalogsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/kalehq/kale/internal/domain/catalog"
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

func TestListRecipes(t *testing.T) {
	dec := decimal.RequireFromString
	minQty := dec("20")
	maxQty := dec("50")

	t.Run("MapsDomainToDTO", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		repo.On("ListRecipesWithIngredients", mock.Anything).Return([]catalog.Recipe{
			{
				ID: 1, Name: "Greek Yogurt Bowl", MealType: catalog.MealTypeBreakfast,
				PrepTimeMinutes: 5, BaseServings: 1, Tags: []string{"bowl", "cold"},
				Ingredients: []catalog.RecipeIngredient{
					{
						Ingredient:  catalog.Ingredient{ID: 19, Name: "Rolled Oats"},
						Quantity:    dec("30"),
						Unit:        "g",
						Flexibility: catalog.FlexibilityFlexible,
						MinQuantity: &minQty,
						MaxQuantity: &maxQty,
					},
				},
			},
		}, nil)
		svc := NewCatalogService(repo, zap.NewNop())

		recipes, err := svc.ListRecipes(context.Background())
		require.NoError(t, err)
		require.Len(t, recipes, 1)

		got := recipes[0]
		assert.Equal(t, "Greek Yogurt Bowl", got.Name)
		assert.Equal(t, "breakfast", got.MealType)
		assert.Equal(t, []string{"bowl", "cold"}, got.Tags)

		require.Len(t, got.Ingredients, 1)
		usage := got.Ingredients[0]
		assert.Equal(t, uint(19), usage.IngredientID)
		assert.Equal(t, "Rolled Oats", usage.IngredientName)
		assert.Equal(t, "flexible", usage.Flexibility)
		require.NotNil(t, usage.MinQuantity)
		assert.True(t, usage.MinQuantity.Equal(minQty))
	})

	t.Run("RepositoryFailureWrapsAsDatabaseError", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		repo.On("ListRecipesWithIngredients", mock.Anything).Return(nil, errors.New("connection refused"))
		svc := NewCatalogService(repo, zap.NewNop())

		_, err := svc.ListRecipes(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeDatabaseError))
	})
}

func TestListIngredients(t *testing.T) {
	dec := decimal.RequireFromString

	t.Run("MapsNutrients", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		repo.On("ListIngredients", mock.Anything).Return([]catalog.Ingredient{
			{
				ID: 1, Name: "Chicken Breast", Category: "protein",
				CostPerUnit: dec("3.99"), Unit: "g", DefaultQuantity: dec("500"),
				Nutrients: catalog.NutrientProfile{Calories: dec("165"), ProteinG: dec("31")},
			},
		}, nil)
		svc := NewCatalogService(repo, zap.NewNop())

		ingredients, err := svc.ListIngredients(context.Background())
		require.NoError(t, err)
		require.Len(t, ingredients, 1)

		got := ingredients[0]
		assert.Equal(t, "Chicken Breast", got.Name)
		assert.True(t, got.CostPerUnit.Equal(dec("3.99")))
		assert.True(t, got.Nutrients.Calories.Equal(dec("165")))
		assert.True(t, got.Nutrients.ProteinG.Equal(dec("31")))
	})

	t.Run("RepositoryFailureWrapsAsDatabaseError", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		repo.On("ListIngredients", mock.Anything).Return(nil, errors.New("disk I/O error"))
		svc := NewCatalogService(repo, zap.NewNop())

		_, err := svc.ListIngredients(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeDatabaseError))
	})
}
