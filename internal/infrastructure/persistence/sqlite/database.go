// Package sqlite provides SQLite database setup and catalog seeding
package sqlite

import (
	"fmt"

	gormModels "github.com/kalehq/kale/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs auto-migration for the catalog schema
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&gormModels.IngredientModel{},
		&gormModels.RecipeModel{},
		&gormModels.RecipeIngredientModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedDatabase populates the catalog with the standard ingredient and
// recipe set. Seeding is idempotent: an already populated catalog is
// left untouched.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	db.Model(&gormModels.IngredientModel{}).Count(&count)
	if count > 0 {
		return nil
	}

	if err := db.Create(seedIngredients()).Error; err != nil {
		return fmt.Errorf("failed to seed ingredients: %w", err)
	}
	if err := db.Create(seedRecipes()).Error; err != nil {
		return fmt.Errorf("failed to seed recipes: %w", err)
	}
	if err := db.Create(seedRecipeIngredients()).Error; err != nil {
		return fmt.Errorf("failed to seed recipe ingredients: %w", err)
	}
	return nil
}
