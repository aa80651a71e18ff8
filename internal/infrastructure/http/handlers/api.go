// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kalehq/kale/internal/ports/inbound"
	"github.com/kalehq/kale/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() {
	// Quantities, costs and nutrients are serialized as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// APIHandlers handles REST API requests
type APIHandlers struct {
	mealPlanService inbound.MealPlanService
	catalogService  inbound.CatalogService
	logger          *zap.Logger
	validate        *validator.Validate
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(
	mealPlanService inbound.MealPlanService,
	catalogService inbound.CatalogService,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		mealPlanService: mealPlanService,
		catalogService:  catalogService,
		logger:          logger.Named("api"),
		validate:        validator.New(),
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GenerateMealPlan handles POST /api/v1/mealplan/generate
func (h *APIHandlers) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	var req generateMealPlanRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := h.mealPlanService.GenerateMealPlan(r.Context(), inbound.GenerateMealPlanCommand{
		Members: membersToCommands(req.Members),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: plan})
}

// RegenerateMealPlan handles POST /api/v1/mealplan/regenerate
func (h *APIHandlers) RegenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	var req regenerateMealPlanRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	vetoes := make([]inbound.VetoCommand, 0, len(req.Vetoes))
	for _, v := range req.Vetoes {
		vetoes = append(vetoes, inbound.VetoCommand{
			DayIndex: v.DayIndex,
			MealType: v.MealType,
			RecipeID: v.RecipeID,
		})
	}

	plan, err := h.mealPlanService.RegenerateMealPlan(r.Context(), inbound.RegenerateMealPlanCommand{
		Members: membersToCommands(req.Members),
		Vetoes:  vetoes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: plan})
}

// ListRecipes handles GET /api/v1/recipes
func (h *APIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.catalogService.ListRecipes(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: recipes})
}

// ListIngredients handles GET /api/v1/ingredients
func (h *APIHandlers) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.catalogService.ListIngredients(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: ingredients})
}

// HealthCheck handles GET /health
func (h *APIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *APIHandlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, errors.NewBadRequestError("invalid request body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}

func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *APIHandlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := err.(*errors.AppError); ok {
		status = appErr.StatusCode()
		message = appErr.Error()
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.Error(err))
	} else {
		h.logger.Warn("Request rejected", zap.Error(err))
	}

	h.writeJSON(w, status, APIResponse{Success: false, Error: message})
}
