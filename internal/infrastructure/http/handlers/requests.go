package handlers

import (
	"github.com/kalehq/kale/internal/ports/inbound"
	"github.com/shopspring/decimal"
)

// Request payloads. Member-list emptiness is deliberately left to the
// application layer so the core validation error surfaces uniformly.

type generateMealPlanRequest struct {
	Members []householdMemberPayload `json:"members" validate:"dive"`
}

type regenerateMealPlanRequest struct {
	Members []householdMemberPayload `json:"members" validate:"dive"`
	Vetoes  []vetoPayload            `json:"vetoes" validate:"dive"`
}

type householdMemberPayload struct {
	Name          string          `json:"name"`
	Age           int             `json:"age" validate:"gte=0,lte=130"`
	Sex           string          `json:"sex"`
	HeightCm      decimal.Decimal `json:"heightCm"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	ActivityLevel string          `json:"activityLevel"`
	Allergies     []string        `json:"allergies"`
	Likes         []string        `json:"likes"`
	Dislikes      []string        `json:"dislikes"`
}

type vetoPayload struct {
	DayIndex int    `json:"dayIndex" validate:"gte=0,lte=6"`
	MealType string `json:"mealType"`
	RecipeID uint   `json:"recipeId"`
}

func membersToCommands(payloads []householdMemberPayload) []inbound.HouseholdMemberCommand {
	members := make([]inbound.HouseholdMemberCommand, 0, len(payloads))
	for _, p := range payloads {
		members = append(members, inbound.HouseholdMemberCommand{
			Name:          p.Name,
			Age:           p.Age,
			Sex:           p.Sex,
			HeightCm:      p.HeightCm,
			WeightKg:      p.WeightKg,
			ActivityLevel: p.ActivityLevel,
			Allergies:     p.Allergies,
			Likes:         p.Likes,
			Dislikes:      p.Dislikes,
		})
	}
	return members
}
