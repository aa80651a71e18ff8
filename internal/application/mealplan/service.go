// Package mealplan provides the application layer for weekly plan
// generation. It implements the use cases defined in the inbound ports.
package mealplan

import (
	"context"

	"github.com/kalehq/kale/internal/domain/catalog"
	"github.com/kalehq/kale/internal/domain/planner"
	"github.com/kalehq/kale/internal/ports/inbound"
	"github.com/kalehq/kale/internal/ports/outbound"
	"github.com/kalehq/kale/pkg/errors"
	"go.uber.org/zap"
)

// MealPlanService implements the meal planning use cases
type MealPlanService struct {
	catalogRepo outbound.CatalogRepository
	logger      *zap.Logger
}

// NewMealPlanService creates a new meal plan service
func NewMealPlanService(catalogRepo outbound.CatalogRepository, logger *zap.Logger) inbound.MealPlanService {
	return &MealPlanService{
		catalogRepo: catalogRepo,
		logger:      logger.Named("mealplan-service"),
	}
}

// GenerateMealPlan builds a fresh weekly plan for the household
func (s *MealPlanService) GenerateMealPlan(ctx context.Context, cmd inbound.GenerateMealPlanCommand) (*inbound.MealPlanDTO, error) {
	return s.generate(ctx, cmd.Members, nil)
}

// RegenerateMealPlan reruns generation with the accumulated veto list
func (s *MealPlanService) RegenerateMealPlan(ctx context.Context, cmd inbound.RegenerateMealPlanCommand) (*inbound.MealPlanDTO, error) {
	vetoes := make([]planner.Veto, 0, len(cmd.Vetoes))
	for _, v := range cmd.Vetoes {
		vetoes = append(vetoes, planner.Veto{
			DayIndex: v.DayIndex,
			MealType: catalog.MealType(v.MealType),
			RecipeID: v.RecipeID,
		})
	}
	return s.generate(ctx, cmd.Members, vetoes)
}

func (s *MealPlanService) generate(ctx context.Context, memberCmds []inbound.HouseholdMemberCommand, vetoes []planner.Veto) (*inbound.MealPlanDTO, error) {
	if len(memberCmds) == 0 {
		return nil, errors.NewValidationError("at least one household member is required")
	}

	recipes, err := s.catalogRepo.ListRecipesWithIngredients(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes with ingredients", err)
	}

	members := make([]planner.HouseholdMember, 0, len(memberCmds))
	for _, m := range memberCmds {
		members = append(members, planner.HouseholdMember{
			Name:          m.Name,
			Age:           m.Age,
			Sex:           m.Sex,
			HeightCm:      m.HeightCm,
			WeightKg:      m.WeightKg,
			ActivityLevel: m.ActivityLevel,
			Allergies:     m.Allergies,
			Likes:         m.Likes,
			Dislikes:      m.Dislikes,
		})
	}

	plan := planner.GeneratePlan(recipes, members, vetoes)

	s.logger.Info("Generated meal plan",
		zap.String("plan_id", plan.ID.String()),
		zap.Int("household_size", len(members)),
		zap.Int("vetoes", len(vetoes)),
		zap.Int("snacks", len(plan.Snacks)),
		zap.String("estimated_total_cost", plan.EstimatedTotalCost.String()),
	)

	dto := planToDTO(plan)
	return &dto, nil
}
