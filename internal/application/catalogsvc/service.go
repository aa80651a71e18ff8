// Package catalogsvc provides the application layer for catalog reads.
package catalogsvc

import (
	"context"

	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/kalehq/kale/internal/ports/inbound"
	"github.com/kalehq/kale/internal/ports/outbound"
	"github.com/kalehq/kale/pkg/errors"
	"go.uber.org/zap"
)

// CatalogService implements the catalog read use cases
type CatalogService struct {
	catalogRepo outbound.CatalogRepository
	logger      *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo outbound.CatalogRepository, logger *zap.Logger) inbound.CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger.Named("catalog-service"),
	}
}

// ListRecipes returns the full recipe catalog with ingredient usages
func (s *CatalogService) ListRecipes(ctx context.Context) ([]inbound.RecipeDTO, error) {
	recipes, err := s.catalogRepo.ListRecipesWithIngredients(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes with ingredients", err)
	}

	dtos := make([]inbound.RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		dtos = append(dtos, recipeToDTO(r))
	}
	return dtos, nil
}

// ListIngredients returns the full ingredient catalog
func (s *CatalogService) ListIngredients(ctx context.Context) ([]inbound.IngredientDTO, error) {
	ingredients, err := s.catalogRepo.ListIngredients(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredients", err)
	}

	dtos := make([]inbound.IngredientDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		dtos = append(dtos, ingredientToDTO(ing))
	}
	return dtos, nil
}

func recipeToDTO(r catalog.Recipe) inbound.RecipeDTO {
	usages := make([]inbound.RecipeIngredientDTO, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		usages = append(usages, inbound.RecipeIngredientDTO{
			IngredientID:   ri.Ingredient.ID,
			IngredientName: ri.Ingredient.Name,
			Quantity:       ri.Quantity,
			Unit:           ri.Unit,
			Flexibility:    string(ri.Flexibility),
			MinQuantity:    ri.MinQuantity,
			MaxQuantity:    ri.MaxQuantity,
		})
	}
	return inbound.RecipeDTO{
		ID:              r.ID,
		Name:            r.Name,
		MealType:        string(r.MealType),
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		BaseServings:    r.BaseServings,
		Instructions:    r.Instructions,
		Tags:            r.Tags,
		Ingredients:     usages,
	}
}

func ingredientToDTO(ing catalog.Ingredient) inbound.IngredientDTO {
	return inbound.IngredientDTO{
		ID:              ing.ID,
		Name:            ing.Name,
		Category:        ing.Category,
		CostPerUnit:     ing.CostPerUnit,
		Unit:            ing.Unit,
		DefaultQuantity: ing.DefaultQuantity,
		Nutrients: inbound.NutrientInfoDTO{
			Calories:    ing.Nutrients.Calories,
			ProteinG:    ing.Nutrients.ProteinG,
			CarbsG:      ing.Nutrients.CarbsG,
			FatG:        ing.Nutrients.FatG,
			FiberG:      ing.Nutrients.FiberG,
			VitaminAMcg: ing.Nutrients.VitaminAMcg,
			VitaminCMg:  ing.Nutrients.VitaminCMg,
			VitaminDMcg: ing.Nutrients.VitaminDMcg,
			VitaminKMcg: ing.Nutrients.VitaminKMcg,
			CalciumMg:   ing.Nutrients.CalciumMg,
			IronMg:      ing.Nutrients.IronMg,
			PotassiumMg: ing.Nutrients.PotassiumMg,
			SodiumMg:    ing.Nutrients.SodiumMg,
		},
	}
}
