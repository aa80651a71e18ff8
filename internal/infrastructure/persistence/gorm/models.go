// Package gorm provides GORM model definitions and repository
// implementations for the recipe/ingredient catalog.
package gorm

import (
	"github.com/shopspring/decimal"
)

// IngredientModel represents the GORM model for catalog ingredients.
// Nutrient columns are per 100 units of Unit.
type IngredientModel struct {
	ID              uint            `gorm:"primaryKey"`
	Name            string          `gorm:"type:varchar(200);not null;index"`
	Category        string          `gorm:"type:varchar(50);not null"`
	CostPerUnit     decimal.Decimal `gorm:"type:decimal(10,2)"`
	Unit            string          `gorm:"type:varchar(20);not null"`
	DefaultQuantity decimal.Decimal `gorm:"type:decimal(10,2)"`

	// Macronutrients per 100 units
	Calories decimal.Decimal `gorm:"type:decimal(10,2)"`
	ProteinG decimal.Decimal `gorm:"type:decimal(10,2)"`
	CarbsG   decimal.Decimal `gorm:"type:decimal(10,2)"`
	FatG     decimal.Decimal `gorm:"type:decimal(10,2)"`
	FiberG   decimal.Decimal `gorm:"type:decimal(10,2)"`

	// Micronutrients per 100 units
	VitaminAMcg decimal.Decimal `gorm:"type:decimal(10,2)"`
	VitaminCMg  decimal.Decimal `gorm:"type:decimal(10,2)"`
	VitaminDMcg decimal.Decimal `gorm:"type:decimal(10,2)"`
	VitaminKMcg decimal.Decimal `gorm:"type:decimal(10,2)"`
	CalciumMg   decimal.Decimal `gorm:"type:decimal(10,2)"`
	IronMg      decimal.Decimal `gorm:"type:decimal(10,2)"`
	PotassiumMg decimal.Decimal `gorm:"type:decimal(10,2)"`
	SodiumMg    decimal.Decimal `gorm:"type:decimal(10,2)"`
}

// TableName overrides the table name
func (IngredientModel) TableName() string { return "ingredients" }

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"type:varchar(200);not null;index"`
	MealType        string `gorm:"type:varchar(20);not null;index"`
	PrepTimeMinutes int    `gorm:"default:0"`
	CookTimeMinutes int    `gorm:"default:0"`
	BaseServings    int    `gorm:"default:1"`
	Instructions    string `gorm:"type:text;not null"`
	DishTags        string `gorm:"type:varchar(500)"`

	// Relationships
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID"`
}

// TableName overrides the table name
func (RecipeModel) TableName() string { return "recipes" }

// RecipeIngredientModel links one recipe to one ingredient with a
// quantity and flexibility classification
type RecipeIngredientModel struct {
	ID           uint             `gorm:"primaryKey"`
	RecipeID     uint             `gorm:"not null;index"`
	IngredientID uint             `gorm:"not null;index"`
	Quantity     decimal.Decimal  `gorm:"type:decimal(10,2)"`
	Unit         string           `gorm:"type:varchar(20);not null"`
	Flexibility  string           `gorm:"column:flexibility_type;type:varchar(20);not null"`
	MinQuantity  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	MaxQuantity  *decimal.Decimal `gorm:"type:decimal(10,2)"`

	// Relationships
	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName overrides the table name
func (RecipeIngredientModel) TableName() string { return "recipe_ingredients" }
